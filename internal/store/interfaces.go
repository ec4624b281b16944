package store

import (
	"context"

	"github.com/mkhalitov/shoplist/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and enforces username uniqueness.
type UserRepository interface {
	// CreateUser inserts a new user record. Returns ErrUsernameTaken when
	// the username is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up an account by its unique username.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ItemRepository persists shopping-list items. Every read and write is
// scoped by the owning user's identifier; no unscoped lookup exists, so an
// item owned by another user is indistinguishable from a missing one.
type ItemRepository interface {
	// CreateItem inserts a new item record.
	CreateItem(ctx context.Context, item models.Item) error

	// GetItemsByUser returns all items owned by userID, most recently
	// created first. An empty result is not an error.
	GetItemsByUser(ctx context.Context, userID string) ([]models.Item, error)

	// GetItem returns the item only if it exists and is owned by userID;
	// otherwise ErrItemNotFound.
	GetItem(ctx context.Context, userID, itemID string) (models.Item, error)

	// UpdateItem applies the non-nil fields of update and refreshes
	// updated_at. A write that affects zero rows (the item vanished between
	// check and write) returns ErrItemNotFound.
	UpdateItem(ctx context.Context, update models.ItemUpdate) error

	// DeleteItem removes the item scoped by owner. A delete that affects
	// zero rows returns ErrItemNotFound.
	DeleteItem(ctx context.Context, userID, itemID string) error
}

// ConstraintClassifier translates driver-specific constraint violations
// into backend-neutral answers. Each SQL backend supplies its own
// implementation.
type ConstraintClassifier interface {
	// IsUniqueViolation reports whether err is a unique-constraint
	// violation raised by the underlying driver.
	IsUniqueViolation(err error) bool
}
