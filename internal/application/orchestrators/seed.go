package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/membership"
	"gymdesk/internal/domain/user"

	"github.com/google/uuid"
)

// MembershipStoreForSeed defines the store interface needed by SeedMembershipTypes.
type MembershipStoreForSeed interface {
	Save(ctx context.Context, t membership.Type) error
	List(ctx context.Context) ([]membership.Type, error)
}

// SeedMembershipTypesDeps holds dependencies for SeedMembershipTypes.
type SeedMembershipTypesDeps struct {
	MembershipStore MembershipStoreForSeed
}

// ExecuteSeedMembershipTypes creates the default plans if none exist.
func ExecuteSeedMembershipTypes(ctx context.Context, deps SeedMembershipTypesDeps) error {
	existing, err := deps.MembershipStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // Already seeded
	}

	plans := []membership.Type{
		{ID: uuid.New().String(), Name: "Basic", Price: 30, MaxVisitsPerMonth: membership.CapOf(8)},
		{ID: uuid.New().String(), Name: "Standard", Price: 50, MaxVisitsPerMonth: membership.CapOf(12)},
		{ID: uuid.New().String(), Name: "Premium", Price: 80, MaxVisitsPerMonth: nil},
	}
	for _, p := range plans {
		if err := deps.MembershipStore.Save(ctx, p); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "membership_types_seeded", "plans", len(plans))
	return nil
}

// UserStoreForSeed defines the store interface needed by SeedAdmin.
type UserStoreForSeed interface {
	Save(ctx context.Context, u user.User) error
	Count(ctx context.Context) (int, error)
}

// SeedAdminInput carries the bootstrap admin credentials.
type SeedAdminInput struct {
	Username string
	Email    string
	Password string
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	UserStore UserStoreForSeed
	Now       func() time.Time
}

// ExecuteSeedAdmin creates the bootstrap admin login if no users exist yet.
// PRE: Input credentials come from deployment configuration
// POST: Exactly one admin exists on a fresh database; no-op otherwise
func ExecuteSeedAdmin(ctx context.Context, input SeedAdminInput, deps SeedAdminDeps) error {
	count, err := deps.UserStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}

	u := user.User{
		ID:        uuid.New().String(),
		Username:  input.Username,
		Email:     input.Email,
		FullName:  "Administrator",
		Role:      user.RoleAdmin,
		CreatedAt: deps.Now(),
	}
	if err := u.Validate(); err != nil {
		return err
	}
	if err := u.SetPassword(input.Password); err != nil {
		return err
	}
	if err := deps.UserStore.Save(ctx, u); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "admin_seeded", "username", u.Username)
	return nil
}
