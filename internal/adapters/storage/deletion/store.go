package deletion

import "context"

// Store opens member-deletion transactions. All destructive work for a
// member removal happens inside a single Tx so a failure at any step
// leaves the database untouched.
type Store interface {
	// Begin opens a deletion transaction.
	// PRE: none
	// POST: Returns a Tx that must be Committed or Rolled back
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a member-deletion transaction. Operations run in order: count the
// dependent rows, delete them child-first, then delete the member itself.
type Tx interface {
	// CountPayments returns the number of payment rows for the member.
	CountPayments(ctx context.Context, memberID string) (int, error)

	// CountAttendance returns the number of attendance rows for the member.
	CountAttendance(ctx context.Context, memberID string) (int, error)

	// DeleteAttendance removes all attendance rows for the member.
	DeleteAttendance(ctx context.Context, memberID string) error

	// DeletePayments removes all payment rows for the member.
	DeletePayments(ctx context.Context, memberID string) error

	// DeleteMember removes the member row and reports rows affected.
	// POST: Returns 0 when the member no longer exists
	DeleteMember(ctx context.Context, memberID string) (int64, error)

	// Commit makes the deletion permanent.
	Commit() error

	// Rollback abandons the deletion. Safe to call after Commit.
	Rollback() error
}

// Ensure SQLiteStore implements Store interface.
var _ Store = (*SQLiteStore)(nil)
