package http

import (
	"net/http"

	"github.com/mkhalitov/shoplist/models"
)

// apiInfo reports the service name and running version inside the standard
// response envelope.
func (h *Handler) apiInfo(w http.ResponseWriter, r *http.Request) {
	info := models.APIInfo{
		Message: "Shopping List API",
		Version: h.version,
	}
	h.respondData(w, r, info, http.StatusOK)
}
