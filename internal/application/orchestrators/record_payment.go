package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gymdesk/internal/domain/activity"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/user"
)

// ErrNoMembershipForPayment is returned when the member has no membership
// type to bill against.
var ErrNoMembershipForPayment = errors.New("member has no membership to bill against")

// MemberStoreForPayment defines the member store interface needed by RecordPayment.
type MemberStoreForPayment interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	SetStatus(ctx context.Context, id, status string) error
}

// PaymentStoreForRecording persists payments.
type PaymentStoreForRecording interface {
	Save(ctx context.Context, p payment.Payment) error
}

// RecordPaymentInput carries the front-desk payment form fields.
type RecordPaymentInput struct {
	MemberID    string
	Amount      float64
	Method      string
	Status      string // empty defaults to paid
	PaymentDate string // empty defaults to today
	Actor       user.Actor
	SourceAddr  string
}

// RecordPaymentDeps holds dependencies for RecordPayment.
type RecordPaymentDeps struct {
	MemberStore   MemberStoreForPayment
	PaymentStore  PaymentStoreForRecording
	ActivityStore ActivityStoreForDeletion
	GenerateID    func() string
	Now           func() time.Time
}

// RecordPaymentResult reports the created payment.
type RecordPaymentResult struct {
	PaymentID   string
	DueDate     string
	Reactivated bool
}

// ExecuteRecordPayment records a payment against a member's membership. The
// due date for the next payment is the payment date plus the grace period.
// A paid payment for an inactive member reactivates them.
// PRE: MemberID references an existing member with a membership
// POST: Payment persisted; member active if the payment settled
func ExecuteRecordPayment(ctx context.Context, input RecordPaymentInput, deps RecordPaymentDeps) (RecordPaymentResult, error) {
	if input.MemberID == "" {
		return RecordPaymentResult{}, errors.New("member ID is required")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if errors.Is(err, sql.ErrNoRows) {
		return RecordPaymentResult{}, ErrMemberNotFound
	}
	if err != nil {
		return RecordPaymentResult{}, err
	}
	if !m.HasMembership() {
		return RecordPaymentResult{}, ErrNoMembershipForPayment
	}

	paymentDate := input.PaymentDate
	if paymentDate == "" {
		paymentDate = deps.Now().Format("2006-01-02")
	}
	dueDate, err := payment.DueDateFor(paymentDate)
	if err != nil {
		return RecordPaymentResult{}, err
	}

	status := input.Status
	if status == "" {
		status = payment.StatusPaid
	}

	p := payment.Payment{
		ID:           deps.GenerateID(),
		MemberID:     m.ID,
		MembershipID: m.MembershipID,
		Amount:       input.Amount,
		Method:       input.Method,
		PaymentDate:  paymentDate,
		DueDate:      dueDate,
		Status:       status,
	}
	if err := p.Validate(); err != nil {
		return RecordPaymentResult{}, err
	}

	if err := deps.PaymentStore.Save(ctx, p); err != nil {
		return RecordPaymentResult{}, fmt.Errorf("failed to save payment: %w", err)
	}

	// A settled payment brings an inactive member back.
	reactivated := false
	if p.Status == payment.StatusPaid && m.Status == member.StatusInactive {
		if err := deps.MemberStore.SetStatus(ctx, m.ID, member.StatusActive); err != nil {
			slog.Warn("payment_event", "event", "reactivation_failed",
				"member_id", m.ID, "error", err)
		} else {
			reactivated = true
		}
	}

	logActivity(ctx, deps.ActivityStore, input.Actor, activity.ActionRecordPayment,
		fmt.Sprintf("Recorded %s payment of %.2f for member %s (ID: %s)",
			p.Status, p.Amount, m.FullName(), m.ID), input.SourceAddr)

	slog.Info("payment_event", "event", "payment_recorded",
		"payment_id", p.ID, "member_id", m.ID,
		"amount", p.Amount, "status", p.Status, "due_date", p.DueDate)
	return RecordPaymentResult{PaymentID: p.ID, DueDate: dueDate, Reactivated: reactivated}, nil
}
