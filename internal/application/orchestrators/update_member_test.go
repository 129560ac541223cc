package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/membership"
)

// mockMemberStoreForUpdate implements MemberStoreForUpdate.
type mockMemberStoreForUpdate struct {
	members map[string]member.Member
}

// GetByID implements MemberStoreForUpdate.
// PRE: id is non-empty
// POST: returns member or wrapped sql.ErrNoRows if not found
func (m *mockMemberStoreForUpdate) GetByID(_ context.Context, id string) (member.Member, error) {
	mem, ok := m.members[id]
	if !ok {
		return member.Member{}, fmt.Errorf("member not found: %w", sql.ErrNoRows)
	}
	return mem, nil
}

// GetByEmail implements MemberStoreForUpdate.
// PRE: email is non-empty
// POST: returns member or wrapped sql.ErrNoRows if not found
func (m *mockMemberStoreForUpdate) GetByEmail(_ context.Context, email string) (member.Member, error) {
	for _, mem := range m.members {
		if mem.Email == email {
			return mem, nil
		}
	}
	return member.Member{}, fmt.Errorf("member not found: %w", sql.ErrNoRows)
}

// Save implements MemberStoreForUpdate.
// PRE: member is valid
// POST: member replaces the stored record
func (m *mockMemberStoreForUpdate) Save(_ context.Context, mem member.Member) error {
	m.members[mem.ID] = mem
	return nil
}

func updateDeps(visits, outstanding int) (*mockMemberStoreForUpdate, UpdateMemberDeps) {
	store := &mockMemberStoreForUpdate{members: map[string]member.Member{
		"m-1": {
			ID: "m-1", FirstName: "Jane", LastName: "Doe",
			Email: "jane.doe@test.com", BirthDate: "1990-05-01",
			Status: member.StatusActive, RegisteredAt: "2026-01-10",
		},
		"m-2": {
			ID: "m-2", FirstName: "Bob", LastName: "Other",
			Email: "bob@test.com", BirthDate: "1985-01-01",
			Status: member.StatusActive, RegisteredAt: "2026-01-10",
		},
	}}
	deps := UpdateMemberDeps{
		MemberStore: store,
		MembershipStore: &mockMembershipStoreForValidation{types: map[string]membership.Type{
			"mt-1": {ID: "mt-1", Name: "Basic", Price: 30, MaxVisitsPerMonth: membership.CapOf(8)},
		}},
		AttendanceStore: &mockAttendanceCounter{count: visits},
		PaymentStore:    &mockPaymentCounter{count: outstanding},
		ActivityStore:   &captureActivityStore{},
		Now:             func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) },
	}
	return store, deps
}

func updateInput() UpdateMemberInput {
	return UpdateMemberInput{
		MemberID:     "m-1",
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane.doe@test.com",
		BirthDate:    "1990-05-01",
		MembershipID: "mt-1",
		Actor:        adminActor,
	}
}

// TestExecuteUpdateMember_AssignsCappedPlanUnderCap verifies an existing
// member below the monthly cap can take a capped plan.
func TestExecuteUpdateMember_AssignsCappedPlanUnderCap(t *testing.T) {
	store, deps := updateDeps(3, 0)
	if err := ExecuteUpdateMember(context.Background(), updateInput(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.members["m-1"].MembershipID; got != "mt-1" {
		t.Errorf("membership=%q want mt-1", got)
	}
}

// TestExecuteUpdateMember_RejectsCappedPlanAtCap verifies the validator runs
// against the member's actual history during an update.
func TestExecuteUpdateMember_RejectsCappedPlanAtCap(t *testing.T) {
	store, deps := updateDeps(8, 0)
	err := ExecuteUpdateMember(context.Background(), updateInput(), deps)

	var notAllowed *MembershipNotAllowedError
	if !errors.As(err, &notAllowed) {
		t.Fatalf("err=%v want *MembershipNotAllowedError", err)
	}
	if got := store.members["m-1"].MembershipID; got != "" {
		t.Errorf("membership=%q want unchanged empty", got)
	}
}

// TestExecuteUpdateMember_RejectsOutstandingPayments verifies outstanding
// payments block a capped plan on update.
func TestExecuteUpdateMember_RejectsOutstandingPayments(t *testing.T) {
	_, deps := updateDeps(3, 2)
	err := ExecuteUpdateMember(context.Background(), updateInput(), deps)
	var notAllowed *MembershipNotAllowedError
	if !errors.As(err, &notAllowed) {
		t.Fatalf("err=%v want *MembershipNotAllowedError", err)
	}
}

// TestExecuteUpdateMember_KeepsOwnEmail verifies the uniqueness check does
// not trip over the member's own record.
func TestExecuteUpdateMember_KeepsOwnEmail(t *testing.T) {
	_, deps := updateDeps(0, 0)
	input := updateInput()
	input.MembershipID = ""
	if err := ExecuteUpdateMember(context.Background(), input, deps); err != nil {
		t.Fatalf("own email rejected: %v", err)
	}
}

// TestExecuteUpdateMember_RejectsTakenEmail verifies another member's email
// cannot be claimed.
func TestExecuteUpdateMember_RejectsTakenEmail(t *testing.T) {
	_, deps := updateDeps(0, 0)
	input := updateInput()
	input.Email = "bob@test.com"
	if err := ExecuteUpdateMember(context.Background(), input, deps); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err=%v want ErrEmailTaken", err)
	}
}

// TestExecuteUpdateMember_NotFound verifies a missing member fails cleanly.
func TestExecuteUpdateMember_NotFound(t *testing.T) {
	_, deps := updateDeps(0, 0)
	input := updateInput()
	input.MemberID = "ghost"
	if err := ExecuteUpdateMember(context.Background(), input, deps); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("err=%v want ErrMemberNotFound", err)
	}
}
