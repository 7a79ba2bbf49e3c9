package validators

import (
	"context"
	"regexp"

	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the username of a registration request.
	FieldUsername = "username"

	// FieldEmail targets the email address of a registration or login request.
	FieldEmail = "email"

	// FieldPassword targets the password of a registration or login request.
	FieldPassword = "password"

	// FieldConfirmPassword targets the password confirmation of a
	// registration request.
	FieldConfirmPassword = "confirm_password"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

// emailShapePattern accepts local-part + "@" + domain + "." + TLD with no
// whitespace. Deliberately loose; it checks shape, not deliverability.
var emailShapePattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	hasUpperPattern = regexp.MustCompile(`[A-Z]`)
	hasLowerPattern = regexp.MustCompile(`[a-z]`)
	hasDigitPattern = regexp.MustCompile(`[0-9]`)
)

// CredentialsValidator implements the [Validator] interface for the
// authentication input models: [models.Registration] and
// [models.Credentials]. It supports both value and pointer receivers for
// each model and allows optional field-level scoping via variadic field
// name arguments.
//
// Only field-shape rules live here. Cross-record rules (duplicate email,
// duplicate username, credential matching) belong to the service layer,
// which can consult the account table.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator and returns
// it as the [Validator] interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the model is validated. Checks run in form order and the
// first failure wins.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateRegistration(_ context.Context, reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if reg.Username == "" {
				return ErrEmptyUsername
			}
			if len(reg.Username) < minUsernameLength {
				return ErrUsernameTooShort
			}

		case FieldEmail:
			if reg.Email == "" {
				return ErrEmptyEmail
			}
			if !emailShapePattern.MatchString(reg.Email) {
				return ErrInvalidEmailShape
			}

		case FieldPassword:
			if reg.Password == "" {
				return ErrEmptyPassword
			}
			if !isStrongPassword(reg.Password) {
				return ErrWeakPassword
			}

		case FieldConfirmPassword:
			if reg.Password != reg.ConfirmPassword {
				return ErrPasswordMismatch
			}

		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if creds.Email == "" {
				return ErrEmptyEmail
			}
			if !emailShapePattern.MatchString(creds.Email) {
				return ErrInvalidEmailShape
			}

		case FieldPassword:
			// Login only requires presence; the strength policy applies at
			// registration time.
			if creds.Password == "" {
				return ErrEmptyPassword
			}

		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isStrongPassword enforces the registration password policy: at least
// 8 characters, one uppercase letter, one lowercase letter, one digit.
func isStrongPassword(password string) bool {
	return len(password) >= minPasswordLength &&
		hasUpperPattern.MatchString(password) &&
		hasLowerPattern.MatchString(password) &&
		hasDigitPattern.MatchString(password)
}
