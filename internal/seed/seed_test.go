package seed

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/api/internal/config"
	"shopfront/api/internal/models"
	"shopfront/api/internal/repository"
	"shopfront/api/internal/security"
)

type fakeUserStore struct {
	users   map[string]models.User
	creates int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) error {
	f.creates++
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrUsernameTaken
	}
	f.users[user.Username] = user
	return nil
}

func seedConfig() config.SeedConfig {
	return config.SeedConfig{
		AdminUsername: "superadmin",
		AdminPassword: "Password123!",
	}
}

func TestEnsureAdminCreatesOnce(t *testing.T) {
	store := newFakeUserStore()

	require.NoError(t, EnsureAdmin(context.Background(), store, seedConfig(), zerolog.Nop()))

	admin, ok := store.users["superadmin"]
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, security.VerifyPassword("Password123!", admin.PasswordHash))
	assert.Equal(t, 1, store.creates)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	store := newFakeUserStore()

	require.NoError(t, EnsureAdmin(context.Background(), store, seedConfig(), zerolog.Nop()))
	hashBefore := store.users["superadmin"].PasswordHash

	require.NoError(t, EnsureAdmin(context.Background(), store, seedConfig(), zerolog.Nop()))

	// Second run neither creates a second admin nor rehashes the password.
	assert.Equal(t, 1, store.creates)
	assert.True(t, bytes.Equal(hashBefore, store.users["superadmin"].PasswordHash))
	assert.Len(t, store.users, 1)
}

func TestEnsureAdminLosesRaceGracefully(t *testing.T) {
	store := newFakeUserStore()
	// Another process created the admin between lookup and insert.
	store.users["superadmin"] = models.User{Username: "superadmin", Role: models.RoleAdmin}

	racing := &racingStore{fakeUserStore: store}
	require.NoError(t, EnsureAdmin(context.Background(), racing, seedConfig(), zerolog.Nop()))
	assert.Len(t, store.users, 1)
}

// racingStore reports the admin missing on lookup but present on insert,
// simulating a concurrent seeder winning the unique index.
type racingStore struct {
	*fakeUserStore
}

func (r *racingStore) FindByUsername(_ context.Context, _ string) (models.User, error) {
	return models.User{}, repository.ErrUserNotFound
}
