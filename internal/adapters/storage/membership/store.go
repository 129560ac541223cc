package membership

import (
	"context"

	domain "gymdesk/internal/domain/membership"
)

// Store defines the interface for membership type persistence.
type Store interface {
	// GetByID retrieves a membership type by its ID.
	// PRE: id is non-empty
	// POST: Returns the entity or an error if not found
	GetByID(ctx context.Context, id string) (domain.Type, error)

	// Save persists a membership type to the database.
	// PRE: entity has been validated
	// POST: Entity is persisted (insert or update)
	Save(ctx context.Context, t domain.Type) error

	// List returns all membership types ordered by name.
	// PRE: none
	// POST: Returns all plan definitions
	List(ctx context.Context) ([]domain.Type, error)
}

// Ensure SQLiteStore implements Store interface.
var _ Store = (*SQLiteStore)(nil)
