package member

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/member"
)

const memberColumns = "id, first_name, last_name, email, phone, address, birth_date, gender, membership_id, emergency_contact_name, emergency_contact_phone, medical_conditions, status, registered_at"

// SQLiteStore implements the member Store interface using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new MemberStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Member by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id = ?", id)
	return scanMember(row.Scan)
}

// GetByEmail retrieves a Member by email.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE email = ?", email)
	return scanMember(row.Scan)
}

// Save persists a Member to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Upsert implementation
	fields := strings.Split(memberColumns, ", ")
	placeholders := make([]string, len(fields))
	updates := make([]string, 0, len(fields)-1)
	for i, f := range fields {
		placeholders[i] = "?"
		if f != "id" {
			updates = append(updates, f+"=excluded."+f)
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO members (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		memberColumns,
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	// Empty membership means NULL, not an empty foreign key
	var membershipID any
	if entity.MembershipID != "" {
		membershipID = entity.MembershipID
	}

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.FirstName,
		entity.LastName,
		entity.Email,
		entity.Phone,
		entity.Address,
		entity.BirthDate,
		entity.Gender,
		membershipID,
		entity.EmergencyContactName,
		entity.EmergencyContactPhone,
		entity.MedicalConditions,
		entity.Status,
		entity.RegisteredAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// SetStatus updates only the status column of a member.
// PRE: id is non-empty, status is a valid member status
// POST: Status column updated for the given id
func (s *SQLiteStore) SetStatus(ctx context.Context, id, status string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE members SET status = ? WHERE id = ?", status, id)
	return err
}

// SearchByName finds members whose name matches the query (case-insensitive LIKE).
// PRE: query is non-empty, limit > 0
// POST: Returns matching members ordered by name
func (s *SQLiteStore) SearchByName(ctx context.Context, query string, limit int) ([]domain.Member, error) {
	q := "SELECT " + memberColumns + " FROM members WHERE (first_name LIKE ? OR last_name LIKE ?) ORDER BY first_name, last_name LIMIT ?"
	term := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, q, term, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

// listWhereClause builds the WHERE clause and args for List/Count queries.
func listWhereClause(filter ListFilter) (string, []any) {
	where := " WHERE 1=1"
	var args []any

	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		where += " AND (first_name LIKE ? OR last_name LIKE ? OR email LIKE ?)"
		term := "%" + filter.Search + "%"
		args = append(args, term, term, term)
	}
	return where, args
}

// sortClause returns a safe ORDER BY clause. Only allowed columns are accepted.
func sortClause(filter ListFilter) string {
	allowed := map[string]string{
		"first_name": "first_name", "last_name": "last_name",
		"email": "email", "status": "status", "registered_at": "registered_at",
	}
	col, ok := allowed[filter.Sort]
	if !ok {
		return " ORDER BY registered_at DESC"
	}
	dir := "ASC"
	if filter.Dir == "desc" {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir
}

// Count returns the total number of members matching the filter.
// PRE: filter has valid parameters
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := listWhereClause(filter)
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM members"+where, args...).Scan(&count)
	return count, err
}

// List retrieves members matching the filter.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Member, error) {
	where, args := listWhereClause(filter)
	query := "SELECT " + memberColumns + " FROM members" + where
	query += sortClause(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

// scanMember scans a single row into a Member using the given scan function.
func scanMember(scan func(...any) error) (domain.Member, error) {
	var entity domain.Member
	var membershipID sql.NullString
	err := scan(
		&entity.ID,
		&entity.FirstName,
		&entity.LastName,
		&entity.Email,
		&entity.Phone,
		&entity.Address,
		&entity.BirthDate,
		&entity.Gender,
		&membershipID,
		&entity.EmergencyContactName,
		&entity.EmergencyContactPhone,
		&entity.MedicalConditions,
		&entity.Status,
		&entity.RegisteredAt,
	)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	if err != nil {
		return domain.Member{}, err
	}
	if membershipID.Valid {
		entity.MembershipID = membershipID.String
	}
	return entity, nil
}

// scanMembers scans multiple rows into a slice of Members.
func scanMembers(rows *sql.Rows) ([]domain.Member, error) {
	var results []domain.Member
	for rows.Next() {
		entity, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
