package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/medichat/go-medichat/models"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"
	FieldName     = "name"
)

const (
	maxLoginRunes    = 20
	minPasswordRunes = 6
	maxNameRunes     = 64
)

// CredentialsValidator enforces the account rules shared by registration
// and login: a non-empty bounded login and a password of a minimum length.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *CredentialsValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
			if utf8.RuneCountInString(user.Login) > maxLoginRunes {
				return ErrLoginTooLong
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(user.Password) < minPasswordRunes {
				return ErrPasswordTooShort
			}
		case FieldName:
			if utf8.RuneCountInString(user.Name) > maxNameRunes {
				return ErrNameTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
