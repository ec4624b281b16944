package http

import (
	"errors"
	"net/http"

	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/service"
	"github.com/mkhalitov/shoplist/internal/utils"
	"github.com/mkhalitov/shoplist/models"
)

// respondData writes a success envelope with the given payload.
func (h *Handler) respondData(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.Response{Success: true, Data: data}, statusCode); err != nil {
		log.Err(err).Msg("writing response body failed")
	}
}

// respondError writes a failure envelope with the given client-facing message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.Response{Success: false, Error: message}, statusCode); err != nil {
		log.Err(err).Msg("writing response body failed")
	}
}

// respondValidationError writes the 400 envelope that carries field-keyed
// validation details alongside the generic error text.
func (h *Handler) respondValidationError(w http.ResponseWriter, r *http.Request, details models.FieldErrors) {
	log := logger.FromRequest(r)

	response := models.Response{
		Success: false,
		Error:   "Validation error",
		Details: details,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusBadRequest); err != nil {
		log.Err(err).Msg("writing response body failed")
	}
}

// respondServiceError translates a service or store error into the matching
// envelope: validation failures become detailed 400s, known sentinel errors
// take their mapped status and message, and everything else collapses into
// an opaque 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		h.respondValidationError(w, r, validationErr.Fields)
		return
	}

	h.respondError(w, r, statusFromError(err), messageFromError(err))
}
