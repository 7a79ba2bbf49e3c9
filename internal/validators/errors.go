package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")

	ErrUsernameTooShort  = errors.New("username must be at least 3 characters long")
	ErrInvalidEmailShape = errors.New("invalid email address")
	ErrWeakPassword      = errors.New("password must be at least 8 characters with uppercase, lowercase, and number")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)
