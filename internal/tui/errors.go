package tui

import (
	"errors"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/service"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/store"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/validators"
)

// humanizeAuthError translates the store's failure kinds into the messages
// shown to the user. The store returns structured errors only; wording is a
// UI concern and lives here.
func humanizeAuthError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, validators.ErrEmptyUsername):
		return "Please enter a username"
	case errors.Is(err, validators.ErrUsernameTooShort):
		return "Username must be at least 3 characters long"
	case errors.Is(err, validators.ErrEmptyEmail):
		return "Please enter your email address"
	case errors.Is(err, validators.ErrInvalidEmailShape):
		return "Please enter a valid email address"
	case errors.Is(err, validators.ErrEmptyPassword):
		return "Please enter a password"
	case errors.Is(err, validators.ErrWeakPassword):
		return "Password must be at least 8 characters with uppercase, lowercase, and number"
	case errors.Is(err, validators.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, service.ErrDuplicateEmail):
		return "This email is already registered. Please login instead."
	case errors.Is(err, service.ErrDuplicateUsername):
		return "This username is already taken. Please choose another."
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, store.ErrCorruptState):
		return "Stored data is damaged; reset the demo data to continue"
	}

	return err.Error()
}
