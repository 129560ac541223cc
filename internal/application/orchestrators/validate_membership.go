package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gymdesk/internal/domain/membership"
)

// MembershipStoreForValidation defines the store interface needed by ValidateMembership.
type MembershipStoreForValidation interface {
	GetByID(ctx context.Context, id string) (membership.Type, error)
}

// AttendanceCounterForValidation counts a member's check-ins in a calendar month.
type AttendanceCounterForValidation interface {
	CountForMonth(ctx context.Context, memberID string, year int, month time.Month) (int, error)
}

// PaymentCounterForValidation counts a member's outstanding payments.
type PaymentCounterForValidation interface {
	CountOutstanding(ctx context.Context, memberID, today string) (int, error)
}

// ValidateMembershipInput carries input for the membership validator.
// MemberID is empty when the membership is being assigned to a brand-new
// member with no history.
type ValidateMembershipInput struct {
	MembershipID string
	MemberID     string
}

// ValidateMembershipDeps holds dependencies for ValidateMembership.
type ValidateMembershipDeps struct {
	MembershipStore MembershipStoreForValidation
	AttendanceStore AttendanceCounterForValidation
	PaymentStore    PaymentCounterForValidation
	Now             func() time.Time
}

// ValidationResult is the outcome of a membership validation. Reason is a
// user-facing explanation, set only when Allowed is false.
type ValidationResult struct {
	Allowed bool
	Reason  string
}

func allowed() ValidationResult {
	return ValidationResult{Allowed: true}
}

func rejected(reason string) ValidationResult {
	return ValidationResult{Allowed: false, Reason: reason}
}

// ExecuteValidateMembership decides whether assigning a membership type to a
// member is permitted. It never mutates anything.
//
// A missing membership reference is trivially allowed: having no membership is
// always valid. An unlimited plan is allowed without further checks. A capped
// plan is checked against the member's visit count for the current calendar
// month, then against outstanding payments. New members (no MemberID) have no
// history and pass both checks.
//
// PRE: deps.Now returns the server clock
// POST: Returns allowed, or rejected with a user-facing reason
// INVARIANT: Lookup failures reject rather than allow (fail closed)
func ExecuteValidateMembership(ctx context.Context, input ValidateMembershipInput, deps ValidateMembershipDeps) ValidationResult {
	if input.MembershipID == "" {
		return allowed()
	}

	plan, err := deps.MembershipStore.GetByID(ctx, input.MembershipID)
	if errors.Is(err, sql.ErrNoRows) {
		return allowed()
	}
	if err != nil {
		slog.Error("validation_event", "event", "membership_lookup_failed",
			"membership_id", input.MembershipID, "error", err)
		return rejected("could not validate membership")
	}

	if !plan.HasVisitCap() {
		return allowed()
	}

	// New member: no attendance or payment history can exist yet.
	if input.MemberID == "" {
		return allowed()
	}

	now := deps.Now()

	visits, err := deps.AttendanceStore.CountForMonth(ctx, input.MemberID, now.Year(), now.Month())
	if err != nil {
		slog.Error("validation_event", "event", "visit_count_failed",
			"member_id", input.MemberID, "error", err)
		return rejected("could not validate membership")
	}
	if visits >= plan.VisitCap() {
		return rejected(fmt.Sprintf("member has exceeded the %d-visit monthly limit", plan.VisitCap()))
	}

	outstanding, err := deps.PaymentStore.CountOutstanding(ctx, input.MemberID, now.Format("2006-01-02"))
	if err != nil {
		slog.Error("validation_event", "event", "payment_count_failed",
			"member_id", input.MemberID, "error", err)
		return rejected("could not validate membership")
	}
	if outstanding > 0 {
		return rejected(fmt.Sprintf("member has %d pending/overdue payments", outstanding))
	}

	return allowed()
}
