package payment

import (
	"context"
	"database/sql"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/payment"
)

const paymentColumns = "id, member_id, membership_id, amount, method, payment_date, due_date, status"

// SQLiteStore implements the payment Store interface using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new PaymentStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a payment by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE id = ?", id)
	return scanPayment(row.Scan)
}

// Save persists a payment to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Payment) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (`+paymentColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   amount=excluded.amount,
		   method=excluded.method,
		   payment_date=excluded.payment_date,
		   due_date=excluded.due_date,
		   status=excluded.status`,
		entity.ID, entity.MemberID, entity.MembershipID, entity.Amount,
		entity.Method, entity.PaymentDate, entity.DueDate, entity.Status)
	return err
}

// ListByMember returns all payments for a member, newest first.
// PRE: memberID is non-empty
// POST: Returns matching payments ordered by payment_date desc
func (s *SQLiteStore) ListByMember(ctx context.Context, memberID string) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE member_id = ? ORDER BY payment_date DESC", memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Payment
	for rows.Next() {
		entity, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// CountForMember returns the total number of payments for a member.
// PRE: memberID is non-empty
// POST: Returns count >= 0
func (s *SQLiteStore) CountForMember(ctx context.Context, memberID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM payments WHERE member_id = ?", memberID).Scan(&count)
	return count, err
}

// CountOutstanding counts pending/overdue payments whose due date is strictly
// before the given day.
// PRE: memberID is non-empty, today is a valid YYYY-MM-DD string
// POST: Returns count >= 0
func (s *SQLiteStore) CountOutstanding(ctx context.Context, memberID, today string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payments
		 WHERE member_id = ? AND status IN ('pending', 'overdue') AND due_date < ?`,
		memberID, today).Scan(&count)
	return count, err
}

// scanPayment scans a single row into a Payment using the given scan function.
func scanPayment(scan func(...any) error) (domain.Payment, error) {
	var entity domain.Payment
	err := scan(
		&entity.ID,
		&entity.MemberID,
		&entity.MembershipID,
		&entity.Amount,
		&entity.Method,
		&entity.PaymentDate,
		&entity.DueDate,
		&entity.Status,
	)
	if err == sql.ErrNoRows {
		return domain.Payment{}, fmt.Errorf("payment not found: %w", err)
	}
	if err != nil {
		return domain.Payment{}, err
	}
	return entity, nil
}
