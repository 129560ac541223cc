package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/activity"
	"gymdesk/internal/domain/user"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong passwords
// alike, so login failures do not reveal which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStoreForLogin defines the store interface needed by Login.
type UserStoreForLogin interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username   string
	Password   string
	SourceAddr string
}

// LoginResult carries the authenticated identity for session creation.
type LoginResult struct {
	Actor    user.Actor
	FullName string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	UserStore     UserStoreForLogin
	ActivityStore ActivityStoreForDeletion
}

// ExecuteLogin validates credentials and returns the actor for session creation.
// PRE: Username and password provided
// POST: Returns actor on success; failures all map to ErrInvalidCredentials
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	u, err := deps.UserStore.GetByUsername(ctx, input.Username)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := u.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "wrong_password")
		return LoginResult{}, ErrInvalidCredentials
	}

	actor := u.Actor()
	logActivity(ctx, deps.ActivityStore, actor, activity.ActionLogin,
		"User logged in: "+u.Username, input.SourceAddr)

	slog.Info("auth_event", "event", "login_success", "username", u.Username, "role", u.Role)
	return LoginResult{Actor: actor, FullName: u.FullName}, nil
}
