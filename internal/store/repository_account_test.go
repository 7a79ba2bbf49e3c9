package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

func newTestAccountRepo(t *testing.T) (AccountRepository, KeyValueStorage) {
	t.Helper()

	storage, err := NewFileStorage(":memory:")
	require.NoError(t, err)

	return NewAccountRepository(storage, logger.Nop()), storage
}

func TestAccountRepository_Initialized(t *testing.T) {
	repo, _ := newTestAccountRepo(t)
	ctx := context.Background()

	initialized, err := repo.Initialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)

	require.NoError(t, repo.SaveAccounts(ctx, models.AccountTable{}))

	initialized, err = repo.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized, "an empty table still counts as initialized")
}

func TestAccountRepository_Accounts_MissingKeyIsEmptyTable(t *testing.T) {
	repo, _ := newTestAccountRepo(t)

	accounts, err := repo.Accounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountRepository_SaveAndFind(t *testing.T) {
	repo, _ := newTestAccountRepo(t)
	ctx := context.Background()

	registeredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	table := models.AccountTable{
		"bob@x.com": {
			Username:     "bob",
			Password:     "Abc12345",
			Name:         "bob",
			Role:         models.RoleUser,
			RegisteredAt: registeredAt,
		},
	}
	require.NoError(t, repo.SaveAccounts(ctx, table))

	account, err := repo.FindByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, "bob", account.Username)
	assert.True(t, account.RegisteredAt.Equal(registeredAt))

	email, byUsername, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", email)
	assert.Equal(t, account, byUsername)
}

func TestAccountRepository_FindByEmail_ExactMatch(t *testing.T) {
	repo, _ := newTestAccountRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAccounts(ctx, models.AccountTable{
		"Bob@x.com": {Username: "bob"},
	}))

	// Email keys are case-sensitive as stored.
	_, err := repo.FindByEmail(ctx, "bob@x.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_FindByUsername_NotFound(t *testing.T) {
	repo, _ := newTestAccountRepo(t)

	_, _, err := repo.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_CorruptTable(t *testing.T) {
	repo, storage := newTestAccountRepo(t)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "users", "{broken"))

	_, err := repo.Accounts(ctx)
	assert.ErrorIs(t, err, ErrCorruptState)

	_, err = repo.FindByEmail(ctx, "bob@x.com")
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestAccountRepository_SeededAccountHasNoRegisteredAt(t *testing.T) {
	repo, storage := newTestAccountRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAccounts(ctx, models.AccountTable{
		"student@chitkara.edu.in": {
			Username: "student",
			Password: "Student@123",
			Name:     "Student User",
			Role:     models.RoleStudent,
		},
	}))

	raw, err := storage.Get(ctx, "users")
	require.NoError(t, err)
	assert.NotContains(t, raw, "registeredAt", "zero timestamp must be omitted from storage")
}
