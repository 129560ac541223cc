package membership

import (
	"context"
	"database/sql"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/membership"
)

// SQLiteStore implements the membership Store interface using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new membership type store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a membership type by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Type, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, price, max_visits_per_month FROM membership_types WHERE id = ?", id)
	return scanType(row.Scan)
}

// Save persists a membership type to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Type) error {
	// NULL cap means unlimited; zero is a real cap
	var visits any
	if entity.MaxVisitsPerMonth != nil {
		visits = *entity.MaxVisitsPerMonth
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO membership_types (id, name, price, max_visits_per_month)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name,
		   price=excluded.price,
		   max_visits_per_month=excluded.max_visits_per_month`,
		entity.ID, entity.Name, entity.Price, visits)
	return err
}

// List returns all membership types ordered by name.
// PRE: none
// POST: Returns all plan definitions
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Type, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, max_visits_per_month FROM membership_types ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Type
	for rows.Next() {
		entity, err := scanType(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// scanType scans a single row into a Type using the given scan function.
func scanType(scan func(...any) error) (domain.Type, error) {
	var entity domain.Type
	var visits sql.NullInt64
	err := scan(&entity.ID, &entity.Name, &entity.Price, &visits)
	if err == sql.ErrNoRows {
		return domain.Type{}, fmt.Errorf("membership type not found: %w", err)
	}
	if err != nil {
		return domain.Type{}, err
	}
	if visits.Valid {
		v := int(visits.Int64)
		entity.MaxVisitsPerMonth = &v
	}
	return entity, nil
}
