package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"gymdesk/internal/domain/user"
)

// mockUserStore implements UserStoreForLogin, UserStoreForManagement, and
// UserStoreForSeed.
type mockUserStore struct {
	byUsername map[string]user.User
	byEmail    map[string]user.User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		byUsername: make(map[string]user.User),
		byEmail:    make(map[string]user.User),
	}
}

// GetByUsername implements UserStoreForLogin.
// PRE: username is non-empty
// POST: returns user or wrapped sql.ErrNoRows if not found
func (m *mockUserStore) GetByUsername(_ context.Context, username string) (user.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return user.User{}, fmt.Errorf("user not found: %w", sql.ErrNoRows)
	}
	return u, nil
}

// GetByEmail implements UserStoreForManagement.
// PRE: email is non-empty
// POST: returns user or wrapped sql.ErrNoRows if not found
func (m *mockUserStore) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, fmt.Errorf("user not found: %w", sql.ErrNoRows)
	}
	return u, nil
}

// Save implements UserStoreForManagement.
// PRE: user is valid
// POST: user stored by username and email
func (m *mockUserStore) Save(_ context.Context, u user.User) error {
	m.byUsername[u.Username] = u
	m.byEmail[u.Email] = u
	return nil
}

// Count implements UserStoreForSeed.
// POST: returns the number of stored users
func (m *mockUserStore) Count(_ context.Context) (int, error) {
	return len(m.byUsername), nil
}

func seedReceptionist(t *testing.T, store *mockUserStore) {
	t.Helper()
	u := user.User{
		ID:       "u-9",
		Username: "frontdesk",
		Email:    "frontdesk@test.com",
		Role:     user.RoleReceptionist,
	}
	if err := u.SetPassword("letmein-123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := store.Save(context.Background(), u); err != nil {
		t.Fatalf("save user: %v", err)
	}
}

// TestExecuteLogin_Success verifies valid credentials return the actor.
func TestExecuteLogin_Success(t *testing.T) {
	store := newMockUserStore()
	seedReceptionist(t, store)
	log := &captureActivityStore{}

	result, err := ExecuteLogin(context.Background(), LoginInput{
		Username: "frontdesk", Password: "letmein-123", SourceAddr: "10.0.0.5",
	}, LoginDeps{UserStore: store, ActivityStore: log})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Actor.ID != "u-9" || result.Actor.Role != user.RoleReceptionist {
		t.Errorf("actor=%+v want u-9/receptionist", result.Actor)
	}
	if len(log.entries) != 1 {
		t.Errorf("activity entries=%d want 1", len(log.entries))
	}
}

// TestExecuteLogin_Failures verifies unknown users and wrong passwords both
// map to the same error.
func TestExecuteLogin_Failures(t *testing.T) {
	store := newMockUserStore()
	seedReceptionist(t, store)
	deps := LoginDeps{UserStore: store, ActivityStore: &captureActivityStore{}}

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"unknown user", LoginInput{Username: "nobody", Password: "letmein-123"}},
		{"wrong password", LoginInput{Username: "frontdesk", Password: "wrong-pass"}},
		{"empty password", LoginInput{Username: "frontdesk"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExecuteLogin(context.Background(), tt.input, deps); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err=%v want ErrInvalidCredentials", err)
			}
		})
	}
}

func userDeps(store *mockUserStore) CreateUserDeps {
	return CreateUserDeps{
		UserStore:     store,
		ActivityStore: &captureActivityStore{},
		GenerateID:    func() string { return "u-new" },
		Now:           func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) },
	}
}

// TestExecuteCreateUser_AdminOnly verifies only admins can create logins.
func TestExecuteCreateUser_AdminOnly(t *testing.T) {
	store := newMockUserStore()
	for _, actor := range []user.Actor{{}, trainerActor, {ID: "u-9", Role: user.RoleReceptionist}} {
		_, err := ExecuteCreateUser(context.Background(), CreateUserInput{
			Username: "newbie", Email: "new@test.com", Password: "changeme-1",
			Role: user.RoleTrainer, Actor: actor,
		}, userDeps(store))
		if !errors.Is(err, ErrNotAuthorizedForUsers) {
			t.Errorf("actor %+v: err=%v want ErrNotAuthorizedForUsers", actor, err)
		}
	}
}

// TestExecuteCreateUser_HashesPassword verifies the stored hash matches the
// plaintext and the plaintext is never stored.
func TestExecuteCreateUser_HashesPassword(t *testing.T) {
	store := newMockUserStore()
	result, err := ExecuteCreateUser(context.Background(), CreateUserInput{
		Username: "newbie", Email: "New@Test.com", FullName: "New Person",
		Password: "changeme-1", Role: user.RoleTrainer, Actor: adminActor,
	}, userDeps(store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u := store.byUsername["newbie"]
	if u.ID != result.UserID {
		t.Errorf("stored id=%q want %q", u.ID, result.UserID)
	}
	if u.Email != "new@test.com" {
		t.Errorf("email=%q want lowercased", u.Email)
	}
	if u.PasswordHash == "changeme-1" || u.PasswordHash == "" {
		t.Fatal("password stored in plaintext or missing")
	}
	if err := u.CheckPassword("changeme-1"); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
}

// TestExecuteCreateUser_DuplicateUsername verifies username uniqueness.
func TestExecuteCreateUser_DuplicateUsername(t *testing.T) {
	store := newMockUserStore()
	seedReceptionist(t, store)
	_, err := ExecuteCreateUser(context.Background(), CreateUserInput{
		Username: "frontdesk", Email: "other@test.com", Password: "changeme-1",
		Role: user.RoleTrainer, Actor: adminActor,
	}, userDeps(store))
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err=%v want ErrUsernameTaken", err)
	}
}

// TestExecuteSeedAdmin_OnlyOnEmptyDatabase verifies the bootstrap admin is
// created once and never again.
func TestExecuteSeedAdmin_OnlyOnEmptyDatabase(t *testing.T) {
	store := newMockUserStore()
	deps := SeedAdminDeps{
		UserStore: store,
		Now:       func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
	input := SeedAdminInput{Username: "admin", Email: "admin@test.com", Password: "bootstrap-1"}

	if err := ExecuteSeedAdmin(context.Background(), input, deps); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	u, ok := store.byUsername["admin"]
	if !ok || u.Role != user.RoleAdmin {
		t.Fatalf("admin not seeded: %+v", u)
	}

	input.Username = "admin2"
	if err := ExecuteSeedAdmin(context.Background(), input, deps); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if _, ok := store.byUsername["admin2"]; ok {
		t.Error("seed ran on a non-empty database")
	}
}
