package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	deletionStore "gymdesk/internal/adapters/storage/deletion"
	"gymdesk/internal/domain/activity"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/user"
)

// Deletion error taxonomy. ErrDeletionFailed is the umbrella for
// transactional failures; callers can match it with errors.Is even when the
// concrete error is a *DeletionError carrying the cause.
var (
	ErrNotAuthorized  = errors.New("not authorized to delete members")
	ErrMemberNotFound = errors.New("member not found")
	ErrAlreadyDeleted = errors.New("member already deleted")
	ErrDeletionFailed = errors.New("member deletion failed")
)

// DeletionError wraps a database error that aborted the deletion transaction.
// Constraint is set when the failure looks like a referential-integrity
// violation from a table outside the cascade, in which case deactivating the
// member instead of deleting is the right suggestion for the user.
type DeletionError struct {
	Constraint bool
	Err        error
}

func (e *DeletionError) Error() string {
	if e.Constraint {
		return fmt.Sprintf("member deletion failed (constraint violation): %v", e.Err)
	}
	return fmt.Sprintf("member deletion failed: %v", e.Err)
}

func (e *DeletionError) Unwrap() error { return e.Err }

// Is reports a match for the umbrella sentinel.
func (e *DeletionError) Is(target error) bool { return target == ErrDeletionFailed }

// isConstraintViolation detects referential-integrity failures by message.
// SQLite reports these as "FOREIGN KEY constraint failed".
func isConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key") || strings.Contains(msg, "constraint")
}

// MemberStoreForDeletion defines the store interface needed by DeleteMember.
type MemberStoreForDeletion interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
}

// ActivityStoreForDeletion appends the best-effort deletion log entry.
type ActivityStoreForDeletion interface {
	Append(ctx context.Context, e activity.Entry) error
}

// DeleteMemberInput carries input for the deletion workflow.
type DeleteMemberInput struct {
	MemberID   string
	Actor      user.Actor
	SourceAddr string
}

// DeleteMemberDeps holds dependencies for DeleteMember.
type DeleteMemberDeps struct {
	MemberStore   MemberStoreForDeletion
	DeletionStore deletionStore.Store
	ActivityStore ActivityStoreForDeletion
}

// DeleteMemberResult reports what the deletion removed. The counts are
// captured before the deletes run, so they reflect the best-known state at
// count time.
type DeleteMemberResult struct {
	MemberName        string
	PaymentsDeleted   int
	AttendanceDeleted int
}

// ExecuteDeleteMember removes a member and all dependent payment and
// attendance rows in a single transaction.
//
// PRE: Actor has role admin or receptionist and is not anonymous
// POST: Member and all dependents deleted, or the database is unchanged
// INVARIANT: Two concurrent deletions of the same member yield exactly one
// success; the loser observes zero rows affected and gets ErrAlreadyDeleted
func ExecuteDeleteMember(ctx context.Context, input DeleteMemberInput, deps DeleteMemberDeps) (DeleteMemberResult, error) {
	if input.Actor.IsAnonymous() || !input.Actor.CanDeleteMembers() {
		return DeleteMemberResult{}, ErrNotAuthorized
	}
	if input.MemberID == "" {
		return DeleteMemberResult{}, errors.New("member ID is required")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if errors.Is(err, sql.ErrNoRows) {
		return DeleteMemberResult{}, ErrMemberNotFound
	}
	if err != nil {
		return DeleteMemberResult{}, &DeletionError{Err: err}
	}

	tx, err := deps.DeletionStore.Begin(ctx)
	if err != nil {
		return DeleteMemberResult{}, &DeletionError{Err: err}
	}
	defer tx.Rollback()

	payments, err := tx.CountPayments(ctx, input.MemberID)
	if err != nil {
		return DeleteMemberResult{}, classify(err)
	}
	attendance, err := tx.CountAttendance(ctx, input.MemberID)
	if err != nil {
		return DeleteMemberResult{}, classify(err)
	}

	if err := tx.DeleteAttendance(ctx, input.MemberID); err != nil {
		return DeleteMemberResult{}, classify(err)
	}
	if err := tx.DeletePayments(ctx, input.MemberID); err != nil {
		return DeleteMemberResult{}, classify(err)
	}

	rows, err := tx.DeleteMember(ctx, input.MemberID)
	if err != nil {
		return DeleteMemberResult{}, classify(err)
	}
	if rows == 0 {
		// Concurrent deletion won the race.
		return DeleteMemberResult{}, ErrAlreadyDeleted
	}

	if err := tx.Commit(); err != nil {
		return DeleteMemberResult{}, classify(err)
	}

	result := DeleteMemberResult{
		MemberName:        m.FullName(),
		PaymentsDeleted:   payments,
		AttendanceDeleted: attendance,
	}

	// Best-effort activity log: the deletion has committed, so a failure here
	// is warned about and swallowed, never surfaced to the caller.
	logActivity(ctx, deps.ActivityStore, input.Actor, activity.ActionDeleteMember,
		fmt.Sprintf("Deleted member: %s (ID: %s) along with %d payments and %d attendance records",
			result.MemberName, input.MemberID, payments, attendance), input.SourceAddr)

	slog.Info("member_event", "event", "member_deleted",
		"member_id", input.MemberID,
		"actor_id", input.Actor.ID,
		"payments_deleted", payments,
		"attendance_deleted", attendance)
	return result, nil
}

func classify(err error) error {
	return &DeletionError{Constraint: isConstraintViolation(err), Err: err}
}
