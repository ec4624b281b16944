package validators

import (
	"encoding/json"
	"strings"

	"github.com/mkhalitov/shoplist/models"
)

// Field name constants keying the validation error map. They match the JSON
// member names of the item payload.
const (
	// FieldBody flags a request body that is not a JSON object at all.
	FieldBody = "body"

	// FieldName targets the item display name.
	FieldName = "name"

	// FieldQuantity targets the optional string-or-number amount descriptor.
	FieldQuantity = "quantity"

	// FieldPurchased targets the optional boolean purchased flag.
	FieldPurchased = "purchased"
)

// Client-facing messages for each rejected field.
const (
	MsgBodyNotObject    = "Request body must be a JSON object"
	MsgNameInvalid      = "Name is required and must be a non-empty string"
	MsgQuantityInvalid  = "Quantity must be a string or number if provided"
	MsgPurchasedInvalid = "Purchased must be a boolean if provided"
)

// ItemValidator implements [ItemPayloadValidator] for shopping-list item
// payloads. It is stateless and safe for concurrent use.
type ItemValidator struct {
}

// NewItemValidator constructs a new ItemValidator and returns it as the
// ItemPayloadValidator interface.
func NewItemValidator() ItemPayloadValidator {
	return &ItemValidator{}
}

// ValidateItemPayload checks each supplied field of payload and collects a
// typed partial update from the ones that pass.
//
// Rules:
//   - name: when required, must be present; whenever present it must be a
//     JSON string that is non-empty after trimming whitespace. The trimmed
//     form is what ends up in the update.
//   - quantity: optional; when present it must be a JSON string or number.
//     JSON null counts as present-and-invalid, mirroring the type check.
//   - purchased: optional; when present it must be a JSON boolean.
//
// All failures are reported together in the returned map; a non-empty map
// means the update must not be applied.
func (v *ItemValidator) ValidateItemPayload(payload models.ItemPayload, nameRequired bool) (models.ItemUpdate, models.FieldErrors) {
	var update models.ItemUpdate
	fieldErrors := models.FieldErrors{}

	v.validateName(payload.Name, nameRequired, &update, fieldErrors)
	v.validateQuantity(payload.Quantity, &update, fieldErrors)
	v.validatePurchased(payload.Purchased, &update, fieldErrors)

	if len(fieldErrors) > 0 {
		return models.ItemUpdate{}, fieldErrors
	}

	return update, fieldErrors
}

func (v *ItemValidator) validateName(raw json.RawMessage, required bool, update *models.ItemUpdate, fieldErrors models.FieldErrors) {
	if raw == nil {
		if required {
			fieldErrors[FieldName] = MsgNameInvalid
		}
		return
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		fieldErrors[FieldName] = MsgNameInvalid
		return
	}

	name = strings.TrimSpace(name)
	if name == "" {
		fieldErrors[FieldName] = MsgNameInvalid
		return
	}

	update.Name = &name
}

func (v *ItemValidator) validateQuantity(raw json.RawMessage, update *models.ItemUpdate, fieldErrors models.FieldErrors) {
	if raw == nil {
		return
	}

	var quantity models.Quantity
	if err := json.Unmarshal(raw, &quantity); err != nil || !quantity.Present() {
		fieldErrors[FieldQuantity] = MsgQuantityInvalid
		return
	}

	update.Quantity = &quantity
}

func (v *ItemValidator) validatePurchased(raw json.RawMessage, update *models.ItemUpdate, fieldErrors models.FieldErrors) {
	if raw == nil {
		return
	}

	var purchased bool
	if err := json.Unmarshal(raw, &purchased); err != nil {
		fieldErrors[FieldPurchased] = MsgPurchasedInvalid
		return
	}

	update.Purchased = &purchased
}
