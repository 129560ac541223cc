package member

import (
	"errors"
	"fmt"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 100
	MaxAddressLength = 500
)

// Business rule constants
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"

	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "Other"
)

// MinMemberAge is the minimum age in whole years for gym membership.
const MinMemberAge = 16

// Domain errors
var (
	ErrAlreadyActive    = errors.New("member is already active")
	ErrAlreadyInactive  = errors.New("member is already inactive")
	ErrAlreadySuspended = errors.New("member is already suspended")
)

// Member holds state for a gym patron record.
type Member struct {
	ID                    string
	FirstName             string
	LastName              string
	Email                 string
	Phone                 string
	Address               string
	BirthDate             string // YYYY-MM-DD
	Gender                string
	MembershipID          string // empty = no membership assigned
	EmergencyContactName  string
	EmergencyContactPhone string
	MedicalConditions     string
	Status                string
	RegisteredAt          string // YYYY-MM-DD
}

// FullName returns the display name for the member.
// INVARIANT: Name fields are not mutated
func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Email must contain '@', first and last name must not be empty
func (m *Member) Validate() error {
	if strings.TrimSpace(m.FirstName) == "" {
		return errors.New("first name cannot be empty")
	}
	if strings.TrimSpace(m.LastName) == "" {
		return errors.New("last name cannot be empty")
	}
	if len(m.FirstName) > MaxNameLength || len(m.LastName) > MaxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", MaxNameLength)
	}
	if !strings.Contains(m.Email, "@") {
		return errors.New("member email must be valid")
	}
	if len(m.Address) > MaxAddressLength {
		return fmt.Errorf("address cannot exceed %d characters", MaxAddressLength)
	}
	if m.Gender != "" && m.Gender != GenderMale && m.Gender != GenderFemale && m.Gender != GenderOther {
		return errors.New("gender must be 'M', 'F', or 'Other'")
	}
	if m.Status != StatusActive && m.Status != StatusInactive && m.Status != StatusSuspended {
		return errors.New("status must be 'active', 'inactive', or 'suspended'")
	}
	return nil
}

// IsActive returns true if the member is currently active.
// INVARIANT: Status field is not mutated
func (m *Member) IsActive() bool {
	return m.Status == StatusActive
}

// HasMembership returns true if a membership type is assigned.
// INVARIANT: MembershipID field is not mutated
func (m *Member) HasMembership() bool {
	return m.MembershipID != ""
}

// Activate sets the member status to active.
// PRE: Member is not already active
// POST: Status is set to active
func (m *Member) Activate() error {
	if m.Status == StatusActive {
		return ErrAlreadyActive
	}
	m.Status = StatusActive
	return nil
}

// Deactivate sets the member status to inactive. This is the recommended
// alternative to permanent deletion when historical records must survive.
// PRE: Member is not already inactive
// POST: Status is set to inactive
func (m *Member) Deactivate() error {
	if m.Status == StatusInactive {
		return ErrAlreadyInactive
	}
	m.Status = StatusInactive
	return nil
}

// Suspend sets the member status to suspended.
// PRE: Member is not already suspended
// POST: Status is set to suspended
func (m *Member) Suspend() error {
	if m.Status == StatusSuspended {
		return ErrAlreadySuspended
	}
	m.Status = StatusSuspended
	return nil
}
