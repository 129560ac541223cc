package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/attendance"
)

// SQLiteStore implements the attendance Store interface using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new AttendanceStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists an attendance record to the database.
// Check-in times are normalized to UTC so that month attribution is
// deterministic regardless of server timezone.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Attendance) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attendance (id, member_id, check_in_time)
		 VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   member_id=excluded.member_id,
		   check_in_time=excluded.check_in_time`,
		entity.ID, entity.MemberID, entity.CheckInTime.UTC().Format(time.RFC3339Nano))
	return err
}

// ListByMember returns all check-ins for a member, newest first.
// PRE: memberID is non-empty
// POST: Returns matching records ordered by check_in_time desc
func (s *SQLiteStore) ListByMember(ctx context.Context, memberID string) ([]domain.Attendance, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, member_id, check_in_time FROM attendance WHERE member_id = ? ORDER BY check_in_time DESC", memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Attendance
	for rows.Next() {
		entity, err := scanAttendance(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// CountForMember returns the total number of check-ins for a member.
// PRE: memberID is non-empty
// POST: Returns count >= 0
func (s *SQLiteStore) CountForMember(ctx context.Context, memberID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM attendance WHERE member_id = ?", memberID).Scan(&count)
	return count, err
}

// CountForMonth counts a member's check-ins within a calendar month.
// PRE: memberID is non-empty, month is valid
// POST: Returns count >= 0
func (s *SQLiteStore) CountForMonth(ctx context.Context, memberID string, year int, month time.Month) (int, error) {
	monthKey := fmt.Sprintf("%04d-%02d", year, int(month))
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM attendance WHERE member_id = ? AND strftime('%Y-%m', check_in_time) = ?",
		memberID, monthKey).Scan(&count)
	return count, err
}

// scanAttendance scans a single row into an Attendance using the given scan function.
func scanAttendance(scan func(...any) error) (domain.Attendance, error) {
	var entity domain.Attendance
	var checkIn string
	err := scan(&entity.ID, &entity.MemberID, &checkIn)
	if err == sql.ErrNoRows {
		return domain.Attendance{}, fmt.Errorf("attendance not found: %w", err)
	}
	if err != nil {
		return domain.Attendance{}, err
	}
	entity.CheckInTime, err = time.Parse(time.RFC3339Nano, checkIn)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("failed to parse check_in_time: %w", err)
	}
	return entity, nil
}
