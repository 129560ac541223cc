package attendance

import (
	"context"
	"time"

	domain "gymdesk/internal/domain/attendance"
)

// Store defines the interface for attendance persistence.
type Store interface {
	// Save persists an attendance record to the database.
	// PRE: entity has been validated
	// POST: Entity is persisted (insert or update)
	Save(ctx context.Context, a domain.Attendance) error

	// ListByMember returns all check-ins for a member, newest first.
	// PRE: memberID is non-empty
	// POST: Returns matching records ordered by check_in_time desc
	ListByMember(ctx context.Context, memberID string) ([]domain.Attendance, error)

	// CountForMember returns the total number of check-ins for a member.
	// PRE: memberID is non-empty
	// POST: Returns count >= 0
	CountForMember(ctx context.Context, memberID string) (int, error)

	// CountForMonth counts a member's check-ins within a calendar month.
	// PRE: memberID is non-empty, month is valid
	// POST: Returns count >= 0
	CountForMonth(ctx context.Context, memberID string, year int, month time.Month) (int, error)
}

// Ensure SQLiteStore implements Store interface.
var _ Store = (*SQLiteStore)(nil)
