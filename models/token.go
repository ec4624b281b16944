package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claim set carried by every bearer token issued by the
// server. Alongside the registered claims (iss, exp, iat) it embeds the
// authenticated identity so that protected handlers never have to look the
// user up again.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the opaque identifier of the token's owner.
	UserID string `json:"user_id"`

	// Username is the owner's login name at token issuance time.
	Username string `json:"username"`
}

// AuthUser converts the claims into the identity value stored in the request
// context by the authentication middleware.
func (c Claims) AuthUser() AuthUser {
	return AuthUser{
		UserID:   c.UserID,
		Username: c.Username,
	}
}
