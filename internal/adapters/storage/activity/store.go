package activity

import (
	"context"

	domain "gymdesk/internal/domain/activity"
)

// Store defines the interface for activity log persistence. Appends are
// best-effort from the caller's point of view: orchestrators log and swallow
// append failures rather than propagating them.
type Store interface {
	// Append persists an activity entry.
	// PRE: entry has actor and action set
	// POST: Entry is persisted
	Append(ctx context.Context, e domain.Entry) error

	// List returns the most recent activity entries.
	// PRE: limit > 0
	// POST: Returns up to limit entries ordered by created_at desc
	List(ctx context.Context, limit int) ([]domain.Entry, error)
}

// Ensure SQLiteStore implements Store interface.
var _ Store = (*SQLiteStore)(nil)
