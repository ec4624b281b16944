package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/service"
	"github.com/mkhalitov/shoplist/internal/utils"
	"github.com/mkhalitov/shoplist/models"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuth_MissingHeaderIs401(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{})

	rr := executeAuth(h, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, "Access token required", resp.Error)
}

func TestAuth_MissingTokenPartIs401(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{})

	rr := executeAuth(h, "Bearer", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Access token required", decodeEnvelope(t, rr).Error)
}

func TestAuth_InvalidTokenIs403(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Claims, error) {
			return models.Claims{}, service.ErrTokenInvalid
		},
	})

	rr := executeAuth(h, "Bearer bad-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Invalid or expired token", decodeEnvelope(t, rr).Error)
}

func TestAuth_ValidTokenInjectsIdentity(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Claims, error) {
			assert.Equal(t, "good-token", tokenString)
			return models.Claims{UserID: "u-1", Username: "john"}, nil
		},
	})

	var called bool
	rr := executeAuth(h, "Bearer good-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		caller, ok := utils.GetAuthUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, models.AuthUser{UserID: "u-1", Username: "john"}, caller)
		w.WriteHeader(http.StatusOK)
	}))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}
