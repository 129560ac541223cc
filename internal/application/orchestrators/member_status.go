package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/member"
)

// MemberStoreForStatus defines the store interface needed by the status
// transitions.
type MemberStoreForStatus interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	SetStatus(ctx context.Context, id, status string) error
}

// MemberStatusInput carries input for a status transition.
type MemberStatusInput struct {
	MemberID string
}

// MemberStatusDeps holds dependencies for the status transitions.
type MemberStatusDeps struct {
	MemberStore MemberStoreForStatus
}

// ExecuteDeactivateMember sets a member to inactive. This is the recommended
// alternative to deletion when historical records must survive.
// PRE: MemberID must be non-empty; member must exist and not be inactive
// POST: Member status set to inactive
func ExecuteDeactivateMember(ctx context.Context, input MemberStatusInput, deps MemberStatusDeps) error {
	return transitionStatus(ctx, input, deps, "member_deactivated", (*member.Member).Deactivate)
}

// ExecuteSuspendMember sets a member to suspended.
// PRE: MemberID must be non-empty; member must exist and not be suspended
// POST: Member status set to suspended
func ExecuteSuspendMember(ctx context.Context, input MemberStatusInput, deps MemberStatusDeps) error {
	return transitionStatus(ctx, input, deps, "member_suspended", (*member.Member).Suspend)
}

// ExecuteActivateMember restores a member to active status.
// PRE: MemberID must be non-empty; member must exist and not be active
// POST: Member status set to active
func ExecuteActivateMember(ctx context.Context, input MemberStatusInput, deps MemberStatusDeps) error {
	return transitionStatus(ctx, input, deps, "member_activated", (*member.Member).Activate)
}

func transitionStatus(ctx context.Context, input MemberStatusInput, deps MemberStatusDeps, event string, apply func(*member.Member) error) error {
	if input.MemberID == "" {
		return errors.New("member ID is required")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMemberNotFound
	}
	if err != nil {
		return err
	}

	if err := apply(&m); err != nil {
		return err
	}

	if err := deps.MemberStore.SetStatus(ctx, m.ID, m.Status); err != nil {
		return err
	}

	slog.Info("member_event", "event", event, "member_id", input.MemberID)
	return nil
}
