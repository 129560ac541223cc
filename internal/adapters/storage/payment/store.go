package payment

import (
	"context"

	domain "gymdesk/internal/domain/payment"
)

// Store defines the interface for payment persistence.
type Store interface {
	// GetByID retrieves a payment by its ID.
	// PRE: id is non-empty
	// POST: Returns the entity or an error if not found
	GetByID(ctx context.Context, id string) (domain.Payment, error)

	// Save persists a payment to the database.
	// PRE: entity has been validated
	// POST: Entity is persisted (insert or update)
	Save(ctx context.Context, p domain.Payment) error

	// ListByMember returns all payments for a member, newest first.
	// PRE: memberID is non-empty
	// POST: Returns matching payments ordered by payment_date desc
	ListByMember(ctx context.Context, memberID string) ([]domain.Payment, error)

	// CountForMember returns the total number of payments for a member.
	// PRE: memberID is non-empty
	// POST: Returns count >= 0
	CountForMember(ctx context.Context, memberID string) (int, error)

	// CountOutstanding counts pending/overdue payments whose due date is
	// strictly before the given day (YYYY-MM-DD).
	// PRE: memberID is non-empty, today is a valid date string
	// POST: Returns count >= 0
	CountOutstanding(ctx context.Context, memberID, today string) (int, error)
}

// Ensure SQLiteStore implements Store interface.
var _ Store = (*SQLiteStore)(nil)
