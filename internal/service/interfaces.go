package service

import (
	"context"

	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// AuthService defines the contract for the account and session store: user
// registration, login, the single active session, the remember-me
// preference, and the demo reset. All failures are validation or lookup
// errors returned as wrapped sentinels; no operation panics and every
// operation is independently retryable.
type AuthService interface {
	// EnsureSeeded initialises the account table with the two fixed default
	// accounts when the table does not yet exist in storage. It never
	// overwrites an existing table and is safe to call on every startup.
	EnsureSeeded(ctx context.Context) error

	// Register validates the registration form values (first failure wins,
	// in form order), inserts the new account with role "user" and the
	// username as display name, and opens a session for it with RememberMe
	// false. On any failure nothing is persisted.
	Register(ctx context.Context, reg models.Registration) (models.Session, error)

	// Login validates the credentials, verifies them against the stored
	// account, persists a fresh session snapshot, and sets or clears the
	// remembered email according to creds.RememberMe. A failed credential
	// check returns [ErrInvalidCredentials] without distinguishing an
	// unknown email from a wrong password.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Authenticate reports whether an account exists under email (exact
	// match) with exactly the given plaintext password.
	Authenticate(ctx context.Context, email, password string) (bool, error)

	// CurrentSession returns the persisted active session, or
	// [store.ErrSessionNotFound].
	CurrentSession(ctx context.Context) (models.Session, error)

	// IsAuthenticated reports whether a session is currently active.
	IsAuthenticated(ctx context.Context) (bool, error)

	// Logout clears the active session. The remembered email survives.
	// Calling it with no active session is not an error.
	Logout(ctx context.Context) error

	// RememberedEmail returns the remember-me email, or an empty string
	// when none is stored.
	RememberedEmail(ctx context.Context) (string, error)

	// ListAccounts returns the full account table. An uninitialized table
	// reads as empty.
	ListAccounts(ctx context.Context) (models.AccountTable, error)

	// AccountSummaries returns the non-sensitive projection of every
	// account, sorted by email for stable display.
	AccountSummaries(ctx context.Context) ([]models.AccountSummary, error)

	// FindAccountByUsername returns the account with the given username,
	// or [store.ErrAccountNotFound].
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)

	// ResetAllData clears accounts, session and remembered email, then
	// re-seeds the default table. Idempotent; never merges with prior
	// state.
	ResetAllData(ctx context.Context) error
}
