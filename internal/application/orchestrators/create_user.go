package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gymdesk/internal/domain/activity"
	"gymdesk/internal/domain/user"
)

// Typed failures for staff-login management.
var (
	ErrNotAuthorizedForUsers = errors.New("not authorized to manage users")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrUserEmailTaken        = errors.New("email already used by another user")
)

// UserStoreForManagement defines the store interface needed by CreateUser.
type UserStoreForManagement interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Save(ctx context.Context, u user.User) error
}

// CreateUserInput carries the new-staff-login form fields.
type CreateUserInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Role       string
	Actor      user.Actor
	SourceAddr string
}

// CreateUserDeps holds dependencies for CreateUser.
type CreateUserDeps struct {
	UserStore     UserStoreForManagement
	ActivityStore ActivityStoreForDeletion
	GenerateID    func() string
	Now           func() time.Time
}

// CreateUserResult reports the created user.
type CreateUserResult struct {
	UserID string
}

// ExecuteCreateUser creates a staff login. Only admins may do this.
// PRE: Actor has the admin role
// POST: User persisted with a bcrypt password hash, or nothing persisted
func ExecuteCreateUser(ctx context.Context, input CreateUserInput, deps CreateUserDeps) (CreateUserResult, error) {
	if input.Actor.IsAnonymous() || !input.Actor.CanManageUsers() {
		return CreateUserResult{}, ErrNotAuthorizedForUsers
	}

	u := user.User{
		ID:        deps.GenerateID(),
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		FullName:  strings.TrimSpace(input.FullName),
		Role:      input.Role,
		CreatedAt: deps.Now(),
	}
	if err := u.Validate(); err != nil {
		return CreateUserResult{}, err
	}
	if err := u.SetPassword(input.Password); err != nil {
		return CreateUserResult{}, err
	}

	if _, err := deps.UserStore.GetByUsername(ctx, u.Username); err == nil {
		return CreateUserResult{}, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return CreateUserResult{}, fmt.Errorf("username lookup failed: %w", err)
	}
	if _, err := deps.UserStore.GetByEmail(ctx, u.Email); err == nil {
		return CreateUserResult{}, ErrUserEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return CreateUserResult{}, fmt.Errorf("email lookup failed: %w", err)
	}

	if err := deps.UserStore.Save(ctx, u); err != nil {
		return CreateUserResult{}, fmt.Errorf("failed to save user: %w", err)
	}

	logActivity(ctx, deps.ActivityStore, input.Actor, activity.ActionCreateUser,
		fmt.Sprintf("Created user: %s (role: %s)", u.Username, u.Role), input.SourceAddr)

	slog.Info("user_event", "event", "user_created",
		"user_id", u.ID, "username", u.Username, "role", u.Role)
	return CreateUserResult{UserID: u.ID}, nil
}
