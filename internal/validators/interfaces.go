// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marat Khalitov

// Package validators provides input validation for item payloads.
//
// Validation operates on the raw JSON form of each field so that "absent",
// "present but null", and "present with the wrong JSON type" remain
// distinguishable — a distinction the update semantics depend on. Failures
// are reported as a field-keyed map suitable for the "details" member of
// the response envelope, not as a single opaque error.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import "github.com/mkhalitov/shoplist/models"

// ItemPayloadValidator turns a raw item payload into a validated partial
// update, reporting every rejected field at once.
type ItemPayloadValidator interface {

	// ValidateItemPayload validates payload and returns the typed partial
	// update alongside a field-keyed error map. The map is empty when the
	// payload is valid. nameRequired enforces the name field's presence
	// (creation); when false, an absent name is allowed but a present,
	// empty, or mistyped one still fails (update).
	ValidateItemPayload(payload models.ItemPayload, nameRequired bool) (models.ItemUpdate, models.FieldErrors)
}
