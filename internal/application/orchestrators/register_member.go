package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gymdesk/internal/domain/activity"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/user"
)

// ErrEmailTaken is returned when another member already uses the email.
var ErrEmailTaken = errors.New("email already registered")

// MembershipNotAllowedError reports a membership assignment the validator
// rejected. Reason is the user-facing explanation.
type MembershipNotAllowedError struct {
	Reason string
}

func (e *MembershipNotAllowedError) Error() string {
	return "membership not allowed: " + e.Reason
}

// MemberStoreForRegistration defines the store interface needed by RegisterMember.
type MemberStoreForRegistration interface {
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	Save(ctx context.Context, m member.Member) error
}

// RegisterMemberInput carries the registration form fields.
type RegisterMemberInput struct {
	FirstName             string
	LastName              string
	Email                 string
	Phone                 string
	Address               string
	BirthDate             string // YYYY-MM-DD
	Gender                string
	MembershipID          string // empty = no membership
	EmergencyContactName  string
	EmergencyContactPhone string
	MedicalConditions     string
	Actor                 user.Actor
	SourceAddr            string
}

// RegisterMemberDeps holds dependencies for RegisterMember.
type RegisterMemberDeps struct {
	MemberStore     MemberStoreForRegistration
	MembershipStore MembershipStoreForValidation
	AttendanceStore AttendanceCounterForValidation
	PaymentStore    PaymentCounterForValidation
	ActivityStore   ActivityStoreForDeletion
	GenerateID      func() string
	Now             func() time.Time
}

// RegisterMemberResult reports the created member.
type RegisterMemberResult struct {
	MemberID string
}

// ExecuteRegisterMember creates a new active member.
// PRE: Input fields come straight from the registration form
// POST: Member persisted with status active, or nothing persisted
// INVARIANT: Email is unique across members; members are at least MinMemberAge
func ExecuteRegisterMember(ctx context.Context, input RegisterMemberInput, deps RegisterMemberDeps) (RegisterMemberResult, error) {
	now := deps.Now()

	m := member.Member{
		ID:                    deps.GenerateID(),
		FirstName:             strings.TrimSpace(input.FirstName),
		LastName:              strings.TrimSpace(input.LastName),
		Email:                 strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:                 strings.TrimSpace(input.Phone),
		Address:               strings.TrimSpace(input.Address),
		BirthDate:             strings.TrimSpace(input.BirthDate),
		Gender:                input.Gender,
		MembershipID:          input.MembershipID,
		EmergencyContactName:  strings.TrimSpace(input.EmergencyContactName),
		EmergencyContactPhone: strings.TrimSpace(input.EmergencyContactPhone),
		MedicalConditions:     strings.TrimSpace(input.MedicalConditions),
		Status:                member.StatusActive,
		RegisteredAt:          now.Format("2006-01-02"),
	}

	if err := m.Validate(); err != nil {
		return RegisterMemberResult{}, err
	}
	if err := member.ValidateMinAge(m.BirthDate, member.MinMemberAge, now); err != nil {
		return RegisterMemberResult{}, err
	}

	_, err := deps.MemberStore.GetByEmail(ctx, m.Email)
	if err == nil {
		return RegisterMemberResult{}, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return RegisterMemberResult{}, fmt.Errorf("email lookup failed: %w", err)
	}

	// New member: the validator sees no member ID, so only the membership
	// reference itself is checked.
	result := ExecuteValidateMembership(ctx, ValidateMembershipInput{
		MembershipID: m.MembershipID,
	}, ValidateMembershipDeps{
		MembershipStore: deps.MembershipStore,
		AttendanceStore: deps.AttendanceStore,
		PaymentStore:    deps.PaymentStore,
		Now:             deps.Now,
	})
	if !result.Allowed {
		return RegisterMemberResult{}, &MembershipNotAllowedError{Reason: result.Reason}
	}

	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return RegisterMemberResult{}, fmt.Errorf("failed to save member: %w", err)
	}

	logActivity(ctx, deps.ActivityStore, input.Actor, activity.ActionCreateMember,
		fmt.Sprintf("Registered member: %s (ID: %s)", m.FullName(), m.ID), input.SourceAddr)

	slog.Info("member_event", "event", "member_registered",
		"member_id", m.ID, "membership_id", m.MembershipID)
	return RegisterMemberResult{MemberID: m.ID}, nil
}

// logActivity appends a best-effort activity entry. Failures are warned about
// and swallowed so they never affect the outcome of the operation itself.
func logActivity(ctx context.Context, store ActivityStoreForDeletion, actor user.Actor, action, description, sourceAddr string) {
	if store == nil {
		return
	}
	entry := activity.NewEntry(actor.ID, action).
		WithDescription(description).
		WithSource(sourceAddr)
	if err := store.Append(ctx, entry); err != nil {
		slog.Warn("activity_event", "event", "activity_log_failed",
			"action", action, "error", err)
	}
}
