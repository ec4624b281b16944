package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/service"
	"github.com/mkhalitov/shoplist/models"
)

func newTestRouter() http.Handler {
	h := &Handler{
		logger:   logger.Nop(),
		version:  "2.0.0",
		services: &service.Services{AuthService: &stubAuthService{}},
	}
	return h.Init()
}

func TestRoutes_RootReportsAPIInfo(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    models.APIInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Shopping List API", resp.Data.Message)
	assert.Equal(t, "2.0.0", resp.Data.Version)
	assert.JSONEq(t, `{"success":true,"data":{"message":"Shopping List API","version":"2.0.0"}}`, rr.Body.String())
}

func TestRoutes_UnknownRouteIs404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, "Route not found", resp.Error)
}

func TestRoutes_WrongMethodIs405(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/users/register", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}

func TestRoutes_ItemsRequireAuth(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/items", "/items/i-1"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
		assert.Equal(t, "Access token required", decodeEnvelope(t, rr).Error, target)
	}
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_TraceIDHeaderIsPropagated(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}
