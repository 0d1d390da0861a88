package validators

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants accepted by [CredentialsValidator].
const (
	// FieldEmail checks presence, format and length of the email.
	FieldEmail = "email"

	// FieldEmailPresent only checks that an email was supplied.
	FieldEmailPresent = "email_present"

	// FieldPassword checks that a password was supplied and fits into a
	// bcrypt hash.
	FieldPassword = "password"

	// FieldPasswordConfirmation checks that an optional confirmation equals
	// the password.
	FieldPasswordConfirmation = "password_confirmation"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// CredentialsValidator validates [models.Credentials] against the struct
// tags declared on the model.
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator returns a [Validator] for register and login input.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks credentials. Without fields all checks run.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldPasswordConfirmation}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := v.validate.StructPartialCtx(ctx, creds, "Email"); err != nil {
				return emailError(err)
			}
		case FieldEmailPresent:
			if creds.Email == "" {
				return ErrEmailRequired
			}
		case FieldPassword:
			if err := v.validate.StructPartialCtx(ctx, creds, "Password"); err != nil {
				return ErrPasswordRequired
			}
			if len(creds.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldPasswordConfirmation:
			if creds.PasswordConfirmation != nil && *creds.PasswordConfirmation != creds.Password {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func emailError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return ErrInvalidEmail
	}

	switch validationErrs[0].Tag() {
	case "required":
		return ErrEmailRequired
	case "max":
		return ErrEmailTooLong
	default:
		return ErrInvalidEmail
	}
}
