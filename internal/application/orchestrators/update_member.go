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

// MemberStoreForUpdate defines the store interface needed by UpdateMember.
type MemberStoreForUpdate interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	Save(ctx context.Context, m member.Member) error
}

// UpdateMemberInput carries the edit form fields. All fields replace the
// stored values; callers pre-fill unchanged fields from the current record.
type UpdateMemberInput struct {
	MemberID              string
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

// UpdateMemberDeps holds dependencies for UpdateMember.
type UpdateMemberDeps struct {
	MemberStore     MemberStoreForUpdate
	MembershipStore MembershipStoreForValidation
	AttendanceStore AttendanceCounterForValidation
	PaymentStore    PaymentCounterForValidation
	ActivityStore   ActivityStoreForDeletion
	Now             func() time.Time
}

// ExecuteUpdateMember replaces an existing member's editable fields.
//
// Assigning a capped membership to an existing member is where the validator
// earns its keep: the member's current-month visits and outstanding payments
// decide whether the plan fits.
//
// PRE: MemberID references an existing member
// POST: Member persisted with the new fields, or nothing persisted
func ExecuteUpdateMember(ctx context.Context, input UpdateMemberInput, deps UpdateMemberDeps) error {
	if input.MemberID == "" {
		return errors.New("member ID is required")
	}
	now := deps.Now()

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMemberNotFound
	}
	if err != nil {
		return err
	}

	m.FirstName = strings.TrimSpace(input.FirstName)
	m.LastName = strings.TrimSpace(input.LastName)
	m.Email = strings.ToLower(strings.TrimSpace(input.Email))
	m.Phone = strings.TrimSpace(input.Phone)
	m.Address = strings.TrimSpace(input.Address)
	m.BirthDate = strings.TrimSpace(input.BirthDate)
	m.Gender = input.Gender
	m.MembershipID = input.MembershipID
	m.EmergencyContactName = strings.TrimSpace(input.EmergencyContactName)
	m.EmergencyContactPhone = strings.TrimSpace(input.EmergencyContactPhone)
	m.MedicalConditions = strings.TrimSpace(input.MedicalConditions)

	if err := m.Validate(); err != nil {
		return err
	}
	if err := member.ValidateMinAge(m.BirthDate, member.MinMemberAge, now); err != nil {
		return err
	}

	// Email uniqueness, excluding the member being edited.
	existing, err := deps.MemberStore.GetByEmail(ctx, m.Email)
	if err == nil && existing.ID != m.ID {
		return ErrEmailTaken
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("email lookup failed: %w", err)
	}

	result := ExecuteValidateMembership(ctx, ValidateMembershipInput{
		MembershipID: m.MembershipID,
		MemberID:     m.ID,
	}, ValidateMembershipDeps{
		MembershipStore: deps.MembershipStore,
		AttendanceStore: deps.AttendanceStore,
		PaymentStore:    deps.PaymentStore,
		Now:             deps.Now,
	})
	if !result.Allowed {
		return &MembershipNotAllowedError{Reason: result.Reason}
	}

	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	logActivity(ctx, deps.ActivityStore, input.Actor, activity.ActionUpdateMember,
		fmt.Sprintf("Updated member: %s (ID: %s)", m.FullName(), m.ID), input.SourceAddr)

	slog.Info("member_event", "event", "member_updated",
		"member_id", m.ID, "membership_id", m.MembershipID)
	return nil
}
