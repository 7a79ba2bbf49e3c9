package models

import "time"

// Session is the single active session record persisted under the
// "currentSession" key. It is a denormalized snapshot of the account taken
// at login or registration time, not a live reference: a later change to
// the account (or its deletion) does not propagate into an existing session.
type Session struct {
	// Email is the address of the account the session was created for.
	Email string `json:"email"`

	// Username, Name and Role are copied from the account record.
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`

	// LoginTime is the timestamp of session creation.
	LoginTime time.Time `json:"loginTime"`

	// RememberMe records whether the user asked to have their email
	// pre-filled on the next visit to the login page.
	RememberMe bool `json:"rememberMe"`
}
