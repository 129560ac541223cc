package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/user"
)

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

// UserStoreForChangePassword defines the store interface needed by ChangePassword.
type UserStoreForChangePassword interface {
	GetByID(ctx context.Context, id string) (user.User, error)
	Save(ctx context.Context, u user.User) error
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	UserStore UserStoreForChangePassword
}

var (
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrNewPasswordSame      = errors.New("new password must be different from current password")
)

// ExecuteChangePassword validates the current password and updates to the new one.
// PRE: UserID is valid, both passwords are non-empty
// POST: Password hash is replaced
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	if input.UserID == "" || input.CurrentPassword == "" || input.NewPassword == "" {
		return errors.New("all fields are required")
	}

	u, err := deps.UserStore.GetByID(ctx, input.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.New("user not found")
	}
	if err != nil {
		return err
	}

	if err := u.CheckPassword(input.CurrentPassword); err != nil {
		return ErrCurrentPasswordWrong
	}
	if input.NewPassword == input.CurrentPassword {
		return ErrNewPasswordSame
	}

	if err := u.SetPassword(input.NewPassword); err != nil {
		return err
	}
	if err := deps.UserStore.Save(ctx, u); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "password_changed", "user_id", u.ID)
	return nil
}
