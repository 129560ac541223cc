package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Max length constants for user-editable fields.
const (
	MaxUsernameLength = 50
	MaxEmailLength    = 254
)

// Role constants
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleTrainer      = "trainer"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleReceptionist, RoleTrainer}

// Domain errors
var (
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("email must contain '@'")
	ErrInvalidRole      = errors.New("role must be one of: admin, receptionist, trainer")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// User holds state for a staff login of the gym system.
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > MaxUsernameLength {
		return errors.New("username cannot exceed 50 characters")
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if len(u.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty and >= 8 characters
// POST: PasswordHash is set to bcrypt hash
func (u *User) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < 8 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: User fields are not mutated
func (u *User) CheckPassword(plaintext string) error {
	if u.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsAdmin returns true if the user has admin role.
// INVARIANT: User fields are not mutated
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor returns the identity this user carries into operations.
// INVARIANT: User fields are not mutated
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Actor is the authenticated identity performing an operation. It is passed
// explicitly into orchestrators rather than read from ambient session state.
type Actor struct {
	ID       string
	Username string
	Role     string
}

// IsAnonymous returns true if no authenticated identity is present.
// INVARIANT: Actor fields are not mutated
func (a Actor) IsAnonymous() bool {
	return a.ID == ""
}

// CanDeleteMembers returns true for roles allowed to permanently remove
// members: admin and receptionist.
// INVARIANT: Actor fields are not mutated
func (a Actor) CanDeleteMembers() bool {
	return a.Role == RoleAdmin || a.Role == RoleReceptionist
}

// CanManageUsers returns true for roles allowed to create or modify staff
// logins: admin only.
// INVARIANT: Actor fields are not mutated
func (a Actor) CanManageUsers() bool {
	return a.Role == RoleAdmin
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
