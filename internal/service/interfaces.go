package service

import (
	"context"

	"github.com/mkhalitov/shoplist/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification, and
// bearer-token lifecycle.
type AuthService interface {
	// Register creates a new account from the supplied credentials.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates an existing account. An unknown username and a
	// wrong password are deliberately indistinguishable: both return
	// ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (string, error)

	// ParseToken validates a raw bearer token and returns the identity it
	// encodes. Every validation failure surfaces as ErrTokenInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// ItemService orchestrates item CRUD for a resolved caller identity. Every
// operation is scoped to the caller's own item set.
type ItemService interface {
	// List returns all items owned by the caller, most recent first.
	List(ctx context.Context, userID string) ([]models.Item, error)

	// Create validates payload and persists a new item owned by the caller.
	Create(ctx context.Context, userID string, payload models.ItemPayload) (models.Item, error)

	// Get returns the caller's item or store.ErrItemNotFound.
	Get(ctx context.Context, userID, itemID string) (models.Item, error)

	// Update confirms existence and ownership, validates the fields present
	// in payload, applies them, and returns the refreshed item.
	Update(ctx context.Context, userID, itemID string, payload models.ItemPayload) (models.Item, error)

	// Delete confirms existence and ownership, then removes the item.
	Delete(ctx context.Context, userID, itemID string) error
}

// IDGenerator produces opaque unique identifiers for new entities.
type IDGenerator interface {
	Generate() string
}
