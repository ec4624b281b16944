package models

import (
	"encoding/json"
	"time"
)

// Item is a single shopping-list entry. Every item belongs to exactly one
// user; the repository layer never exposes an item outside queries scoped by
// its owner's identifier.
type Item struct {
	// ID is the opaque unique identifier of the item (UUID string).
	ID string `json:"id"`

	// Name is the display name of the item. Non-empty after trimming.
	Name string `json:"name"`

	// Quantity is the optional amount descriptor. Clients may submit it as
	// either a JSON string or a JSON number.
	Quantity Quantity `json:"quantity"`

	// Purchased marks whether the item has been bought. Defaults to false
	// at creation.
	Purchased bool `json:"purchased"`

	// CreatedAt is set once when the item is persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful mutation, including an
	// empty partial update.
	UpdatedAt time.Time `json:"updated_at"`

	// UserID is the identifier of the owning user. Immutable post-creation.
	UserID string `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemPayload is the raw, untyped form of an item create or update body.
// Each field keeps the undecoded JSON so the validator can distinguish an
// absent field from a present-but-wrong-type one before any value is parsed.
type ItemPayload struct {
	Name      json.RawMessage `json:"name"`
	Quantity  json.RawMessage `json:"quantity"`
	Purchased json.RawMessage `json:"purchased"`
}

// ItemUpdate represents a validated partial update of a single item.
// Only non-nil fields are applied; the repository always refreshes
// updated_at even when every field is nil.
type ItemUpdate struct {
	// ID is the unique identifier of the item to update. Required.
	ID string `json:"id"`

	// UserID is the owner of the item. Required for data isolation.
	UserID string `json:"user_id"`

	// Name is the new item name. If nil, the field is not updated.
	Name *string `json:"name,omitempty"`

	// Quantity is the new amount descriptor. If nil, the field is not updated.
	Quantity *Quantity `json:"quantity,omitempty"`

	// Purchased is the new purchased flag. If nil, the field is not updated.
	Purchased *bool `json:"purchased,omitempty"`
}

// FieldErrors is a field-keyed description of why an input payload was
// rejected. It is returned to clients in the "details" member of the
// response envelope.
type FieldErrors map[string]string
