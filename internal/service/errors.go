package service

import (
	"errors"

	"github.com/mkhalitov/shoplist/models"
)

var (
	// ErrMissingCredentials is returned when the username or the password
	// field is absent or empty.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrCredentialsTooShort is returned when the username is shorter than
	// three characters or the password is shorter than six.
	ErrCredentialsTooShort = errors.New("username must be at least 3 characters and password at least 6 characters")

	// ErrInvalidCredentials is returned on login for both an unknown
	// username and a wrong password, so that the response never reveals
	// whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenInvalid is the normalised result of every token validation
	// failure: bad signature, expiry, wrong issuer, malformed input.
	ErrTokenInvalid = errors.New("token is expired or invalid")
)

// ValidationError carries the field-keyed detail map produced by the item
// payload validator. Handlers unwrap it with [errors.As] to build the 400
// response envelope.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation error"
}
