package deletion

import (
	"context"
	"database/sql"

	"gymdesk/internal/adapters/storage"
)

// SQLiteStore implements the deletion Store interface using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new deletion store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Begin opens a deletion transaction.
// PRE: none
// POST: Returns a Tx that must be Committed or Rolled back
func (s *SQLiteStore) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx}, nil
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) CountPayments(ctx context.Context, memberID string) (int, error) {
	var count int
	err := t.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM payments WHERE member_id = ?", memberID).Scan(&count)
	return count, err
}

func (t *sqliteTx) CountAttendance(ctx context.Context, memberID string) (int, error) {
	var count int
	err := t.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM attendance WHERE member_id = ?", memberID).Scan(&count)
	return count, err
}

func (t *sqliteTx) DeleteAttendance(ctx context.Context, memberID string) error {
	_, err := t.tx.ExecContext(ctx,
		"DELETE FROM attendance WHERE member_id = ?", memberID)
	return err
}

func (t *sqliteTx) DeletePayments(ctx context.Context, memberID string) error {
	_, err := t.tx.ExecContext(ctx,
		"DELETE FROM payments WHERE member_id = ?", memberID)
	return err
}

func (t *sqliteTx) DeleteMember(ctx context.Context, memberID string) (int64, error) {
	res, err := t.tx.ExecContext(ctx,
		"DELETE FROM members WHERE id = ?", memberID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *sqliteTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback() error {
	return t.tx.Rollback()
}
