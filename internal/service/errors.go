package service

import "errors"

var (
	// ErrDuplicateEmail is returned when registering with an email that is
	// already a key in the account table.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrDuplicateUsername is returned when registering with a username
	// some existing account already uses.
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrInvalidCredentials is returned on a failed login. It deliberately
	// covers both an unknown email and a wrong password so the result does
	// not leak whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
