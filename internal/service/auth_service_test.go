package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/api/internal/config"
	"shopfront/api/internal/models"
	"shopfront/api/internal/repository"
	"shopfront/api/internal/security"
)

type fakeUserStore struct {
	byUsername map[string]models.User
	byID       map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byUsername: make(map[string]models.User),
		byID:       make(map[string]models.User),
	}
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) error {
	if _, ok := f.byUsername[user.Username]; ok {
		return repository.ErrUsernameTaken
	}
	f.byUsername[user.Username] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, id string, role models.Role) error {
	user, ok := f.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Role = role
	f.byID[id] = user
	f.byUsername[user.Username] = user
	return nil
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Security: config.SecurityConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
	}
}

func TestRegisterThenLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	user, err := svc.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, string(user.PasswordHash), "pw1")

	result, err := svc.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, models.RoleUser, result.Role)

	claims, err := security.ParseToken(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	_, err := svc.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "pw2")
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
	assert.Len(t, store.byUsername, 1)
}

func TestRegisterEmptyFields(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testConfig(), zerolog.Nop())

	_, err := svc.Register(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	_, err := svc.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testConfig(), zerolog.Nop())

	_, err := svc.Login(context.Background(), "nobody", "pw")
	// Unknown user and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserWithRole(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), "bob", "pw", "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = svc.CreateUser(context.Background(), "carol", "pw", "owner")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetRole(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	user, err := svc.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	role, err := svc.SetRole(context.Background(), user.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	_, err = svc.SetRole(context.Background(), "missing", "admin")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = svc.SetRole(context.Background(), user.ID, "root")
	assert.ErrorIs(t, err, ErrValidation)
}
