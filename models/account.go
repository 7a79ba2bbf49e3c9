package models

import "time"

// Role is the authorization tag attached to every account and copied into
// the session snapshot at login time.
type Role string

// The full set of roles known to the system. Seeded accounts carry
// RoleStudent and RoleAdmin; every self-registered account gets RoleUser.
const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
)

// Account represents a registered user record as persisted in the "users"
// table of the local storage area. Accounts are keyed by email address, so
// the email itself is not part of the stored record.
//
// The password is stored in plaintext. That is part of the demo contract
// (login compares exact strings) and must not be copied into anything
// handling real credentials.
type Account struct {
	// Username is the unique human-readable account identifier.
	// Uniqueness is enforced at registration time only.
	Username string `json:"username"`

	// Password is the plaintext account password.
	Password string `json:"password"`

	// Name is the display name shown in UI. For self-registered accounts it
	// equals the username.
	Name string `json:"name"`

	// Role is the authorization tag of the account.
	Role Role `json:"role"`

	// RegisteredAt is the account creation timestamp. It is zero (and
	// omitted from storage) for the seeded default accounts.
	RegisteredAt time.Time `json:"registeredAt,omitzero"`
}

// AccountTable maps email address to the account registered under it.
// Email uniqueness follows from the map key; iteration order is unspecified.
type AccountTable map[string]Account

// Registration carries the raw form values submitted on the register page.
type Registration struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// Credentials carries the raw form values submitted on the login page.
type Credentials struct {
	Email      string
	Password   string
	RememberMe bool
}

// AccountSummary is the non-sensitive projection of an account used by the
// admin accounts view. It never includes the password.
type AccountSummary struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
