package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

func validRegistration() models.Registration {
	return models.Registration{
		Email:           "bob@x.com",
		Username:        "bob",
		Password:        "GoodPass1",
		ConfirmPassword: "GoodPass1",
	}
}

func TestCredentialsValidator_Registration_Valid(t *testing.T) {
	v := NewCredentialsValidator()

	assert.NoError(t, v.Validate(context.Background(), validRegistration()))
}

func TestCredentialsValidator_Registration_PointerForm(t *testing.T) {
	v := NewCredentialsValidator()
	reg := validRegistration()

	assert.NoError(t, v.Validate(context.Background(), &reg))
}

func TestCredentialsValidator_Registration_Username(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	reg := validRegistration()
	reg.Username = ""
	assert.ErrorIs(t, v.Validate(ctx, reg, FieldUsername), ErrEmptyUsername)

	reg.Username = "ab"
	assert.ErrorIs(t, v.Validate(ctx, reg, FieldUsername), ErrUsernameTooShort)

	reg.Username = "abc"
	assert.NoError(t, v.Validate(ctx, reg, FieldUsername))
}

func TestCredentialsValidator_Registration_EmailShape(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "valid", email: "a@b.co", wantErr: nil},
		{name: "subdomain", email: "a@mail.b.co", wantErr: nil},
		{name: "empty", email: "", wantErr: ErrEmptyEmail},
		{name: "no at sign", email: "ab.co", wantErr: ErrInvalidEmailShape},
		{name: "no dot in domain", email: "a@bco", wantErr: ErrInvalidEmailShape},
		{name: "whitespace in local part", email: "a b@x.co", wantErr: ErrInvalidEmailShape},
		{name: "double at sign", email: "a@@x.co", wantErr: ErrInvalidEmailShape},
		{name: "missing local part", email: "@x.co", wantErr: ErrInvalidEmailShape},
		{name: "missing tld", email: "a@x.", wantErr: ErrInvalidEmailShape},
	}

	v := NewCredentialsValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			reg.Email = tt.email

			err := v.Validate(context.Background(), reg, FieldEmail)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCredentialsValidator_Registration_PasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "strong", password: "GoodPass1", wantErr: nil},
		{name: "seeded student password", password: "Student@123", wantErr: nil},
		{name: "empty", password: "", wantErr: ErrEmptyPassword},
		{name: "too short", password: "short1A", wantErr: ErrWeakPassword},
		{name: "no uppercase", password: "alllowercase1", wantErr: ErrWeakPassword},
		{name: "no lowercase", password: "ALLUPPER123", wantErr: ErrWeakPassword},
		{name: "no digit", password: "NoDigitsHere", wantErr: ErrWeakPassword},
	}

	v := NewCredentialsValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			reg.Password = tt.password
			reg.ConfirmPassword = tt.password

			err := v.Validate(context.Background(), reg, FieldPassword)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCredentialsValidator_Registration_ConfirmPassword(t *testing.T) {
	v := NewCredentialsValidator()

	reg := validRegistration()
	reg.ConfirmPassword = "Different1"

	err := v.Validate(context.Background(), reg, FieldConfirmPassword)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestCredentialsValidator_Registration_FieldScoping(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	// A weak password must not fail validation scoped to other fields.
	reg := validRegistration()
	reg.Password = "weak"
	reg.ConfirmPassword = "weak"

	assert.NoError(t, v.Validate(ctx, reg, FieldUsername))
	assert.NoError(t, v.Validate(ctx, reg, FieldEmail))
	assert.NoError(t, v.Validate(ctx, reg, FieldConfirmPassword))
	assert.ErrorIs(t, v.Validate(ctx, reg, FieldPassword), ErrWeakPassword)
}

func TestCredentialsValidator_Credentials(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	creds := models.Credentials{Email: "bob@x.com", Password: "whatever"}
	require.NoError(t, v.Validate(ctx, creds))
	require.NoError(t, v.Validate(ctx, &creds))

	creds.Email = ""
	assert.ErrorIs(t, v.Validate(ctx, creds), ErrEmptyEmail)

	creds.Email = "not-an-email"
	assert.ErrorIs(t, v.Validate(ctx, creds), ErrInvalidEmailShape)

	creds = models.Credentials{Email: "bob@x.com", Password: ""}
	assert.ErrorIs(t, v.Validate(ctx, creds), ErrEmptyPassword)
}

func TestCredentialsValidator_Credentials_NoStrengthCheckOnLogin(t *testing.T) {
	v := NewCredentialsValidator()

	// Login only checks presence; legacy weak passwords must still be able
	// to attempt a login.
	creds := models.Credentials{Email: "bob@x.com", Password: "weak"}
	assert.NoError(t, v.Validate(context.Background(), creds))
}

func TestCredentialsValidator_UnsupportedType(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), struct{ Email string }{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCredentialsValidator_UnknownField(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), validRegistration(), "middle_name")
	assert.ErrorIs(t, err, ErrUnknownField)
}
