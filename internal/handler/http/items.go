package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/utils"
	"github.com/mkhalitov/shoplist/internal/validators"
	"github.com/mkhalitov/shoplist/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated identity missing from context")
		h.respondError(w, r, http.StatusUnauthorized, "Access token required")
		return
	}

	items, err := h.services.ItemService.List(ctx, caller.UserID)
	if err != nil {
		log.Err(err).Msg("listing items failed")
		h.respondServiceError(w, r, err)
		return
	}

	h.respondData(w, r, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated identity missing from context")
		h.respondError(w, r, http.StatusUnauthorized, "Access token required")
		return
	}

	payload, ok := h.decodeItemPayload(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.Create(ctx, caller.UserID, payload)
	if err != nil {
		log.Err(err).Msg("item creation failed")
		h.respondServiceError(w, r, err)
		return
	}

	h.respondData(w, r, item, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated identity missing from context")
		h.respondError(w, r, http.StatusUnauthorized, "Access token required")
		return
	}

	item, err := h.services.ItemService.Get(ctx, caller.UserID, chi.URLParam(r, "itemID"))
	if err != nil {
		log.Err(err).Msg("item lookup failed")
		h.respondServiceError(w, r, err)
		return
	}

	h.respondData(w, r, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated identity missing from context")
		h.respondError(w, r, http.StatusUnauthorized, "Access token required")
		return
	}

	payload, ok := h.decodeItemPayload(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.Update(ctx, caller.UserID, chi.URLParam(r, "itemID"), payload)
	if err != nil {
		log.Err(err).Msg("item update failed")
		h.respondServiceError(w, r, err)
		return
	}

	h.respondData(w, r, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated identity missing from context")
		h.respondError(w, r, http.StatusUnauthorized, "Access token required")
		return
	}

	if err := h.services.ItemService.Delete(ctx, caller.UserID, chi.URLParam(r, "itemID")); err != nil {
		log.Err(err).Msg("item deletion failed")
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeItemPayload reads an item payload from the request body. A body that
// is not a JSON object, including a top-level null, is reported through the
// same validation envelope the field validators use, keyed under "body".
// Returns ok=false after writing the error response.
func (h *Handler) decodeItemPayload(w http.ResponseWriter, r *http.Request) (models.ItemPayload, bool) {
	log := logger.FromRequest(r)

	// Decoding through a pointer makes a literal null visible: it leaves the
	// pointer nil instead of yielding an empty payload.
	var payload *models.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		log.Error().Msg("item payload is not a JSON object")
		h.respondValidationError(w, r, models.FieldErrors{
			validators.FieldBody: validators.MsgBodyNotObject,
		})
		return models.ItemPayload{}, false
	}

	return *payload, true
}
