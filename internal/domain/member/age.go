package member

import (
	"errors"
	"fmt"
	"time"
)

// birthDateLayout is the expected format for birth dates.
const birthDateLayout = "2006-01-02"

// Age validation errors. ErrBirthDateRequired and ErrBirthDateInvalid are
// distinct from the below-minimum rejection so callers can show the right
// message.
var (
	ErrBirthDateRequired = errors.New("birth date is required")
	ErrBirthDateInvalid  = errors.New("birth date format is invalid")
)

// BelowMinAgeError reports that a member's computed age is under the required
// minimum. It carries both values for a user-facing message.
type BelowMinAgeError struct {
	Age    int
	MinAge int
}

func (e *BelowMinAgeError) Error() string {
	return fmt.Sprintf("member does not meet the minimum age: is %d, requires %d", e.Age, e.MinAge)
}

// AgeAt computes the age in full calendar years at the given instant.
// A fixed 365-day divisor would miscount around birthdays, so this compares
// year/month/day directly.
// PRE: birthDate is not after now
// POST: Returns whole years elapsed between birthDate and now
func AgeAt(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	// Birthday not yet reached this year
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	return years
}

// ValidateMinAge checks that a birth date meets a minimum age requirement.
// PRE: minAge >= 0, now is the evaluation instant
// POST: Returns nil if the computed age >= minAge; otherwise a typed error:
// ErrBirthDateRequired, ErrBirthDateInvalid, or *BelowMinAgeError
func ValidateMinAge(birthDate string, minAge int, now time.Time) error {
	if birthDate == "" {
		return ErrBirthDateRequired
	}
	born, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return ErrBirthDateInvalid
	}
	age := AgeAt(born, now)
	if age < minAge {
		return &BelowMinAgeError{Age: age, MinAge: minAge}
	}
	return nil
}
