package membership

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("membership name cannot be empty")
	ErrNegativePrice = errors.New("membership price cannot be negative")
	ErrNegativeCap   = errors.New("visit cap cannot be negative")
)

// Type is a membership plan definition: a price plus an optional monthly
// visit cap. It is a shared lookup record, never owned by a member.
type Type struct {
	ID    string
	Name  string
	Price float64
	// MaxVisitsPerMonth is the monthly check-in cap. nil means unlimited;
	// zero is a valid cap (no visits allowed).
	MaxVisitsPerMonth *int
}

// HasVisitCap returns true if a monthly visit limit is configured.
// INVARIANT: MaxVisitsPerMonth is not mutated
func (t *Type) HasVisitCap() bool {
	return t.MaxVisitsPerMonth != nil
}

// VisitCap returns the configured cap. Only meaningful when HasVisitCap.
// PRE: HasVisitCap() is true
// POST: Returns the cap value
func (t *Type) VisitCap() int {
	if t.MaxVisitsPerMonth == nil {
		return 0
	}
	return *t.MaxVisitsPerMonth
}

// Validate checks if the membership type has valid data.
// PRE: Type struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name non-empty, price >= 0, cap nil or >= 0
func (t *Type) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.Price < 0 {
		return ErrNegativePrice
	}
	if t.MaxVisitsPerMonth != nil && *t.MaxVisitsPerMonth < 0 {
		return ErrNegativeCap
	}
	return nil
}

// CapOf is a convenience for building capped membership types.
func CapOf(n int) *int {
	return &n
}
