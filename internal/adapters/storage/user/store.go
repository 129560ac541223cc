package user

import (
	"context"

	domain "gymdesk/internal/domain/user"
)

// Store defines the interface for user persistence.
type Store interface {
	// GetByID retrieves a user by its ID.
	// PRE: id is non-empty
	// POST: Returns the entity or an error if not found
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByUsername retrieves a user by username.
	// PRE: username is non-empty
	// POST: Returns the entity or an error if not found
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// GetByEmail retrieves a user by email.
	// PRE: email is non-empty
	// POST: Returns the entity or an error if not found
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Save persists a user to the database.
	// PRE: entity has been validated
	// POST: Entity is persisted (insert or update)
	Save(ctx context.Context, u domain.User) error

	// Count returns the total number of users.
	// PRE: none
	// POST: Returns count >= 0
	Count(ctx context.Context) (int, error)

	// List returns all users ordered by creation time, newest first.
	// PRE: none
	// POST: Returns all users
	List(ctx context.Context) ([]domain.User, error)
}

// Ensure SQLiteStore implements Store interface.
var _ Store = (*SQLiteStore)(nil)
