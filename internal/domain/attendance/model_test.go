package attendance

import (
	"errors"
	"testing"
	"time"
)

// TestValidate_Valid tests a well-formed check-in.
func TestValidate_Valid(t *testing.T) {
	a := Attendance{ID: "att-001", MemberID: "member-001", CheckInTime: time.Now()}
	if err := a.Validate(); err != nil {
		t.Errorf("expected valid attendance, got %v", err)
	}
}

// TestValidate_MissingMember tests rejection without a member reference.
func TestValidate_MissingMember(t *testing.T) {
	a := Attendance{ID: "att-002", CheckInTime: time.Now()}
	if err := a.Validate(); !errors.Is(err, ErrEmptyMemberID) {
		t.Errorf("expected ErrEmptyMemberID, got %v", err)
	}
}

// TestValidate_ZeroTime tests rejection of an unset check-in time.
func TestValidate_ZeroTime(t *testing.T) {
	a := Attendance{ID: "att-003", MemberID: "member-001"}
	if err := a.Validate(); !errors.Is(err, ErrZeroCheckIn) {
		t.Errorf("expected ErrZeroCheckIn, got %v", err)
	}
}

// TestValidate_FutureTime tests rejection of a future check-in time.
func TestValidate_FutureTime(t *testing.T) {
	a := Attendance{ID: "att-004", MemberID: "member-001", CheckInTime: time.Now().Add(2 * time.Hour)}
	if err := a.Validate(); !errors.Is(err, ErrFutureCheckIn) {
		t.Errorf("expected ErrFutureCheckIn, got %v", err)
	}
}

// TestInMonth tests calendar month/year matching.
func TestInMonth(t *testing.T) {
	a := Attendance{
		ID:          "att-005",
		MemberID:    "member-001",
		CheckInTime: time.Date(2026, time.March, 31, 23, 50, 0, 0, time.UTC),
	}
	if !a.InMonth(2026, time.March) {
		t.Error("expected check-in to match March 2026")
	}
	if a.InMonth(2026, time.April) {
		t.Error("expected check-in not to match April 2026")
	}
	if a.InMonth(2025, time.March) {
		t.Error("expected check-in not to match March 2025")
	}
}
