package activity

import (
	"context"
	"time"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/activity"
)

const dateLayout = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements the activity Store interface using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new activity log store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append persists an activity entry.
// PRE: entry has actor and action set
// POST: Entry is persisted
func (s *SQLiteStore) Append(ctx context.Context, e domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, actor_id, action, description, source_addr, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.ActorID, e.Action, e.Description, e.SourceAddr, e.Timestamp.Format(dateLayout))
	return err
}

// List returns the most recent activity entries.
// PRE: limit > 0
// POST: Returns up to limit entries ordered by created_at desc
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, actor_id, action, description, source_addr, created_at
		 FROM activity_log ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.Description, &e.SourceAddr, &createdAt); err != nil {
			return nil, err
		}
		e.Timestamp, _ = time.Parse(dateLayout, createdAt)
		results = append(results, e)
	}
	return results, rows.Err()
}
