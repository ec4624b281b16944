package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user (UUID string).
	ID string `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the client-safe projection of the user: the identifier and
// the username, nothing else.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
	}
}

// PublicUser is the projection of a [User] that may cross the trust boundary
// in API responses.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthUser is the resolved caller identity attached to the request context by
// the authentication middleware after a bearer token has been verified.
type AuthUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Credentials carries the username/password pair submitted to the register
// and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
