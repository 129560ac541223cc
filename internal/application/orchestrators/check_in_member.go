package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"gymdesk/internal/domain/attendance"
	"gymdesk/internal/domain/member"
)

// ErrMemberNotActive is returned when a non-active member tries to check in.
var ErrMemberNotActive = errors.New("only active members can check in")

// AttendanceStoreForCheckIn persists attendance records.
type AttendanceStoreForCheckIn interface {
	Save(ctx context.Context, a attendance.Attendance) error
}

// CheckInSearchStore defines the member store interface needed for name search.
type CheckInSearchStore interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	SearchByName(ctx context.Context, query string, limit int) ([]member.Member, error)
}

// SearchMembersInput carries input for name-based member search.
type SearchMembersInput struct {
	Query string
	Limit int
}

// SearchMembersResult carries the shortlist of matching members.
type SearchMembersResult struct {
	Members []member.Member
}

// SearchMembersDeps holds dependencies for SearchMembers.
type SearchMembersDeps struct {
	MemberStore CheckInSearchStore
}

// ExecuteSearchMembers performs a fuzzy name search and returns a shortlist
// of matching members for the check-in autocomplete.
// PRE: Query must be non-empty
// POST: Returns up to Limit matching members
func ExecuteSearchMembers(ctx context.Context, input SearchMembersInput, deps SearchMembersDeps) (SearchMembersResult, error) {
	if input.Query == "" {
		return SearchMembersResult{Members: []member.Member{}}, nil
	}
	if input.Limit <= 0 {
		input.Limit = 10
	}

	members, err := deps.MemberStore.SearchByName(ctx, input.Query, input.Limit)
	if err != nil {
		return SearchMembersResult{}, err
	}
	if members == nil {
		members = []member.Member{}
	}

	return SearchMembersResult{Members: members}, nil
}

// CheckInMemberInput carries input for the check-in orchestrator.
// MemberID is obtained by the caller after the user selects from the
// name-search shortlist, never typed directly.
type CheckInMemberInput struct {
	MemberID string
}

// CheckInMemberDeps holds dependencies for CheckInMember.
type CheckInMemberDeps struct {
	MemberStore     CheckInSearchStore
	AttendanceStore AttendanceStoreForCheckIn
	MembershipStore MembershipStoreForValidation
	VisitCounter    AttendanceCounterForValidation
	PaymentStore    PaymentCounterForValidation
	GenerateID      func() string
	Now             func() time.Time
}

// ExecuteCheckInMember records a member check-in. A member on a capped plan
// is refused once the monthly limit is reached or payments are outstanding,
// using the same validation that gates membership assignment.
// PRE: MemberID is a valid member selected from the name-search shortlist
// POST: Attendance record created with CheckInTime=now, or nothing persisted
func ExecuteCheckInMember(ctx context.Context, input CheckInMemberInput, deps CheckInMemberDeps) error {
	if input.MemberID == "" {
		return errors.New("member must be selected from the search results")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMemberNotFound
	}
	if err != nil {
		return err
	}
	if !m.IsActive() {
		return ErrMemberNotActive
	}

	result := ExecuteValidateMembership(ctx, ValidateMembershipInput{
		MembershipID: m.MembershipID,
		MemberID:     m.ID,
	}, ValidateMembershipDeps{
		MembershipStore: deps.MembershipStore,
		AttendanceStore: deps.VisitCounter,
		PaymentStore:    deps.PaymentStore,
		Now:             deps.Now,
	})
	if !result.Allowed {
		return &MembershipNotAllowedError{Reason: result.Reason}
	}

	a := attendance.Attendance{
		ID:          deps.GenerateID(),
		MemberID:    m.ID,
		CheckInTime: deps.Now(),
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := deps.AttendanceStore.Save(ctx, a); err != nil {
		return err
	}

	slog.Info("checkin_event", "event", "member_checked_in",
		"member_id", m.ID, "name", m.FullName())
	return nil
}
