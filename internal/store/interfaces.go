package store

import (
	"context"

	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// KeyValueStorage is the port to the persistent local storage area. The
// whole system keeps its state under three well-known keys ("users",
// "currentSession", "rememberedEmail"); everything above this interface is
// agnostic of whether the backing store is a JSON file, an SQLite table or
// an in-memory fake.
type KeyValueStorage interface {
	// Get returns the value stored under key, or [ErrKeyNotFound] if the
	// key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key from the storage area. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// AccountRepository persists the email-keyed account table under the
// "users" storage key.
type AccountRepository interface {
	// Initialized reports whether the account table exists in storage at
	// all. An empty table counts as initialized; only a missing key does
	// not.
	Initialized(ctx context.Context) (bool, error)

	// Accounts returns the full account table. A missing "users" key is
	// treated as an empty table, not an error.
	Accounts(ctx context.Context) (models.AccountTable, error)

	// SaveAccounts replaces the whole account table in storage.
	SaveAccounts(ctx context.Context, accounts models.AccountTable) error

	// FindByEmail returns the account registered under email, or
	// [ErrAccountNotFound]. Email matching is exact, not case-folded.
	FindByEmail(ctx context.Context, email string) (models.Account, error)

	// FindByUsername scans the table for an account with the given
	// username and returns it together with its email key, or
	// [ErrAccountNotFound]. Scan order is unspecified; usernames are
	// unique by convention so any match wins.
	FindByUsername(ctx context.Context, username string) (string, models.Account, error)
}

// SessionRepository persists the single active session under the
// "currentSession" key and the remembered-email preference under
// "rememberedEmail". The two values have independent lifecycles.
type SessionRepository interface {
	// Current returns the active session, or [ErrSessionNotFound].
	Current(ctx context.Context) (models.Session, error)

	// Save persists session as the single active session.
	Save(ctx context.Context, session models.Session) error

	// Clear removes the active session. Clearing with no active session is
	// not an error.
	Clear(ctx context.Context) error

	// RememberedEmail returns the stored remember-me email, or an empty
	// string when none is set.
	RememberedEmail(ctx context.Context) (string, error)

	// SetRememberedEmail stores email as the remember-me preference.
	SetRememberedEmail(ctx context.Context, email string) error

	// ClearRememberedEmail removes the remember-me preference. Idempotent.
	ClearRememberedEmail(ctx context.Context) error
}
