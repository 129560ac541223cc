package attendance

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyMemberID = errors.New("attendance member_id is required")
	ErrZeroCheckIn   = errors.New("attendance check_in time must be set")
	ErrFutureCheckIn = errors.New("attendance check_in time cannot be in the future")
)

// Attendance is a single check-in event tied to a member.
type Attendance struct {
	ID          string
	MemberID    string
	CheckInTime time.Time
}

// Validate checks if the Attendance has valid data.
// PRE: Attendance struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: MemberID non-empty, CheckInTime set and not in the future
func (a *Attendance) Validate() error {
	if a.MemberID == "" {
		return ErrEmptyMemberID
	}
	if a.CheckInTime.IsZero() {
		return ErrZeroCheckIn
	}
	// Small tolerance for clock skew between app and DB hosts
	if a.CheckInTime.After(time.Now().Add(time.Minute)) {
		return ErrFutureCheckIn
	}
	return nil
}

// InMonth returns true if the check-in falls within the given calendar
// month and year.
// INVARIANT: CheckInTime is not mutated
func (a *Attendance) InMonth(year int, month time.Month) bool {
	return a.CheckInTime.Year() == year && a.CheckInTime.Month() == month
}
