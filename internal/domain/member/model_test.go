package member

import (
	"errors"
	"strings"
	"testing"
)

func validMember() Member {
	return Member{
		ID:           "member-001",
		FirstName:    "Ana",
		LastName:     "Torres",
		Email:        "ana@example.com",
		BirthDate:    "1990-05-20",
		Gender:       GenderFemale,
		Status:       StatusActive,
		RegisteredAt: "2026-01-15",
	}
}

// TestValidate_Valid tests that a fully populated member passes validation.
func TestValidate_Valid(t *testing.T) {
	m := validMember()
	if err := m.Validate(); err != nil {
		t.Errorf("expected valid member, got error: %v", err)
	}
}

// TestValidate_EmptyFirstName tests rejection of a blank first name.
func TestValidate_EmptyFirstName(t *testing.T) {
	m := validMember()
	m.FirstName = "   "
	if err := m.Validate(); err == nil {
		t.Error("expected error for empty first name")
	}
}

// TestValidate_EmptyLastName tests rejection of a blank last name.
func TestValidate_EmptyLastName(t *testing.T) {
	m := validMember()
	m.LastName = ""
	if err := m.Validate(); err == nil {
		t.Error("expected error for empty last name")
	}
}

// TestValidate_InvalidEmail tests rejection of an email without '@'.
func TestValidate_InvalidEmail(t *testing.T) {
	m := validMember()
	m.Email = "not-an-email"
	if err := m.Validate(); err == nil {
		t.Error("expected error for invalid email")
	}
}

// TestValidate_NameTooLong tests the name length cap.
func TestValidate_NameTooLong(t *testing.T) {
	m := validMember()
	m.FirstName = strings.Repeat("a", MaxNameLength+1)
	if err := m.Validate(); err == nil {
		t.Error("expected error for over-long name")
	}
}

// TestValidate_InvalidGender tests rejection of an unknown gender value.
func TestValidate_InvalidGender(t *testing.T) {
	m := validMember()
	m.Gender = "X"
	if err := m.Validate(); err == nil {
		t.Error("expected error for invalid gender")
	}
}

// TestValidate_EmptyGenderAllowed tests that gender is optional.
func TestValidate_EmptyGenderAllowed(t *testing.T) {
	m := validMember()
	m.Gender = ""
	if err := m.Validate(); err != nil {
		t.Errorf("expected empty gender to be allowed, got %v", err)
	}
}

// TestValidate_InvalidStatus tests rejection of an unknown status.
func TestValidate_InvalidStatus(t *testing.T) {
	m := validMember()
	m.Status = "archived"
	if err := m.Validate(); err == nil {
		t.Error("expected error for invalid status")
	}
}

// TestFullName tests name concatenation.
func TestFullName(t *testing.T) {
	m := validMember()
	if got := m.FullName(); got != "Ana Torres" {
		t.Errorf("expected 'Ana Torres', got %q", got)
	}
}

// TestStatusTransitions tests the free-form status transition helpers.
func TestStatusTransitions(t *testing.T) {
	m := validMember()

	if err := m.Activate(); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("expected ErrAlreadyActive, got %v", err)
	}

	if err := m.Deactivate(); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if m.Status != StatusInactive {
		t.Errorf("expected status=inactive, got %s", m.Status)
	}
	if err := m.Deactivate(); !errors.Is(err, ErrAlreadyInactive) {
		t.Errorf("expected ErrAlreadyInactive, got %v", err)
	}

	if err := m.Suspend(); err != nil {
		t.Fatalf("Suspend: %v", err)
	}
	if m.Status != StatusSuspended {
		t.Errorf("expected status=suspended, got %s", m.Status)
	}
	if err := m.Suspend(); !errors.Is(err, ErrAlreadySuspended) {
		t.Errorf("expected ErrAlreadySuspended, got %v", err)
	}

	if err := m.Activate(); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if !m.IsActive() {
		t.Error("expected member to be active after Activate")
	}
}

// TestHasMembership tests the membership assignment check.
func TestHasMembership(t *testing.T) {
	m := validMember()
	if m.HasMembership() {
		t.Error("expected no membership for empty MembershipID")
	}
	m.MembershipID = "type-001"
	if !m.HasMembership() {
		t.Error("expected HasMembership=true")
	}
}
