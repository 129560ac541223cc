package member

import (
	"context"

	domain "gymdesk/internal/domain/member"
)

// ListFilter controls List and Count queries.
type ListFilter struct {
	Status string // empty = all statuses
	Search string // matches first name, last name, or email
	Sort   string // allowed: first_name, last_name, email, status, registered_at
	Dir    string // "asc" (default) or "desc"
	Limit  int
	Offset int
}

// Store defines the interface for member persistence.
type Store interface {
	// GetByID retrieves a Member by its ID.
	// PRE: id is non-empty
	// POST: Returns the entity or an error if not found
	GetByID(ctx context.Context, id string) (domain.Member, error)

	// GetByEmail retrieves a Member by email.
	// PRE: email is non-empty
	// POST: Returns the entity or an error if not found
	GetByEmail(ctx context.Context, email string) (domain.Member, error)

	// Save persists a Member to the database.
	// PRE: entity has been validated
	// POST: Entity is persisted (insert or update)
	Save(ctx context.Context, m domain.Member) error

	// SetStatus updates only the status column of a member.
	// PRE: id is non-empty, status is a valid member status
	// POST: Status column updated for the given id
	SetStatus(ctx context.Context, id, status string) error

	// SearchByName finds members whose name matches the query.
	// PRE: query is non-empty, limit > 0
	// POST: Returns matching members ordered by name
	SearchByName(ctx context.Context, query string, limit int) ([]domain.Member, error)

	// List retrieves members matching the filter.
	// PRE: filter has valid parameters
	// POST: Returns matching entities
	List(ctx context.Context, filter ListFilter) ([]domain.Member, error)

	// Count returns the total number of members matching the filter.
	// PRE: filter has valid parameters
	// POST: Returns count >= 0
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// Ensure SQLiteStore implements Store interface.
var _ Store = (*SQLiteStore)(nil)
