package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// mockPaymentStoreForRecording implements PaymentStoreForRecording.
type mockPaymentStoreForRecording struct {
	saved []payment.Payment
}

func (m *mockPaymentStoreForRecording) Save(_ context.Context, p payment.Payment) error {
	m.saved = append(m.saved, p)
	return nil
}

func paymentDeps(memberStatus string) (*mockMemberStoreForStatus, *mockPaymentStoreForRecording, RecordPaymentDeps) {
	members := &mockMemberStoreForStatus{members: map[string]member.Member{
		"m-1": {ID: "m-1", FirstName: "Jane", LastName: "Doe", MembershipID: "mt-1", Status: memberStatus},
		"m-2": {ID: "m-2", FirstName: "No", LastName: "Plan", Status: member.StatusActive},
	}}
	payments := &mockPaymentStoreForRecording{}
	deps := RecordPaymentDeps{
		MemberStore:   members,
		PaymentStore:  payments,
		ActivityStore: &captureActivityStore{},
		GenerateID:    func() string { return "pay-1" },
		Now:           func() time.Time { return time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC) },
	}
	return members, payments, deps
}

// TestExecuteRecordPayment_DueDateAfterGracePeriod verifies the due date is
// the payment date plus the 30-day grace period.
func TestExecuteRecordPayment_DueDateAfterGracePeriod(t *testing.T) {
	_, payments, deps := paymentDeps(member.StatusActive)

	result, err := ExecuteRecordPayment(context.Background(), RecordPaymentInput{
		MemberID: "m-1",
		Amount:   30,
		Method:   payment.MethodCash,
		Actor:    adminActor,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DueDate != "2026-03-12" {
		t.Errorf("due date=%q want 2026-03-12", result.DueDate)
	}
	if len(payments.saved) != 1 {
		t.Fatalf("saved=%d want 1", len(payments.saved))
	}
	p := payments.saved[0]
	if p.Status != payment.StatusPaid {
		t.Errorf("status=%q want default paid", p.Status)
	}
	if p.PaymentDate != "2026-02-10" {
		t.Errorf("payment date=%q want today", p.PaymentDate)
	}
	if p.MembershipID != "mt-1" {
		t.Errorf("membership=%q want the member's plan", p.MembershipID)
	}
}

// TestExecuteRecordPayment_ReactivatesInactiveMember verifies a settled
// payment brings an inactive member back to active.
func TestExecuteRecordPayment_ReactivatesInactiveMember(t *testing.T) {
	members, _, deps := paymentDeps(member.StatusInactive)

	result, err := ExecuteRecordPayment(context.Background(), RecordPaymentInput{
		MemberID: "m-1",
		Amount:   30,
		Method:   payment.MethodCard,
		Actor:    adminActor,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Reactivated {
		t.Error("result does not report reactivation")
	}
	if got := members.members["m-1"].Status; got != member.StatusActive {
		t.Errorf("status=%q want active", got)
	}
}

// TestExecuteRecordPayment_PendingDoesNotReactivate verifies only settled
// payments reactivate.
func TestExecuteRecordPayment_PendingDoesNotReactivate(t *testing.T) {
	members, _, deps := paymentDeps(member.StatusInactive)

	result, err := ExecuteRecordPayment(context.Background(), RecordPaymentInput{
		MemberID: "m-1",
		Amount:   30,
		Method:   payment.MethodCash,
		Status:   payment.StatusPending,
		Actor:    adminActor,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reactivated {
		t.Error("pending payment reactivated the member")
	}
	if got := members.members["m-1"].Status; got != member.StatusInactive {
		t.Errorf("status=%q want inactive", got)
	}
}

// TestExecuteRecordPayment_RequiresMembership verifies members without a
// plan cannot be billed.
func TestExecuteRecordPayment_RequiresMembership(t *testing.T) {
	_, _, deps := paymentDeps(member.StatusActive)
	_, err := ExecuteRecordPayment(context.Background(), RecordPaymentInput{
		MemberID: "m-2",
		Amount:   30,
		Method:   payment.MethodCash,
		Actor:    adminActor,
	}, deps)
	if !errors.Is(err, ErrNoMembershipForPayment) {
		t.Fatalf("err=%v want ErrNoMembershipForPayment", err)
	}
}

// TestExecuteRecordPayment_MemberNotFound verifies a missing member fails.
func TestExecuteRecordPayment_MemberNotFound(t *testing.T) {
	_, _, deps := paymentDeps(member.StatusActive)
	_, err := ExecuteRecordPayment(context.Background(), RecordPaymentInput{
		MemberID: "ghost",
		Amount:   30,
		Actor:    adminActor,
	}, deps)
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("err=%v want ErrMemberNotFound", err)
	}
}
