package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.respondServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondData(w, r, models.AuthResponse{Token: token, User: registeredUser.Public()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.respondServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondData(w, r, models.AuthResponse{Token: token, User: foundUser.Public()}, http.StatusOK)
}
