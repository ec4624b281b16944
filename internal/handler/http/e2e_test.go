package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/shoplist/internal/config"
	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/service"
	"github.com/mkhalitov/shoplist/internal/store"
	"github.com/mkhalitov/shoplist/internal/utils"
	"github.com/mkhalitov/shoplist/internal/validators"
	"github.com/mkhalitov/shoplist/models"
)

// ---- in-memory repositories ----

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by username
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (r *memUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return models.User{}, store.ErrUsernameTaken
	}
	r.users[user.Username] = user
	return user, nil
}

func (r *memUserRepo) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

type memItemRepo struct {
	mu    sync.Mutex
	items map[string]models.Item // keyed by item id
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]models.Item)}
}

func (r *memItemRepo) CreateItem(_ context.Context, item models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *memItemRepo) GetItemsByUser(_ context.Context, userID string) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (r *memItemRepo) GetItem(_ context.Context, userID, itemID string) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return models.Item{}, store.ErrItemNotFound
	}
	return item, nil
}

func (r *memItemRepo) UpdateItem(_ context.Context, update models.ItemUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[update.ID]
	if !ok || item.UserID != update.UserID {
		return store.ErrItemNotFound
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Quantity != nil {
		item.Quantity = *update.Quantity
	}
	if update.Purchased != nil {
		item.Purchased = *update.Purchased
	}
	item.UpdatedAt = time.Now().UTC()

	r.items[update.ID] = item
	return nil
}

func (r *memItemRepo) DeleteItem(_ context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return store.ErrItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

// ---- server wiring ----

func newE2EServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.Nop()
	cfg := config.App{
		TokenSignKey:  "e2e-sign-key",
		TokenIssuer:   "shoplist-e2e",
		TokenDuration: time.Hour,
		Version:       "2.0.0",
	}
	idGen := utils.NewUUIDGenerator()

	services := &service.Services{
		AuthService: service.NewAuthService(newMemUserRepo(), idGen, cfg, log),
		ItemService: service.NewItemService(newMemItemRepo(), validators.NewItemValidator(), idGen, log),
	}

	ts := httptest.NewServer(NewHandler(services, cfg.Version, log).Init())
	t.Cleanup(ts.Close)
	return ts
}

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func registerE2EUser(t *testing.T, client *resty.Client, username, password string) string {
	t.Helper()

	var resp envelope
	httpResp, err := client.R().
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&resp).
		Post("/users/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, httpResp.StatusCode())

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

// ---- scenarios ----

func TestE2E_FullShoppingListFlow(t *testing.T) {
	ts := newE2EServer(t)
	client := resty.New().SetBaseURL(ts.URL)

	// registering the same username twice conflicts
	token := registerE2EUser(t, client, "john", "secret123")

	var conflict envelope
	httpResp, err := client.R().
		SetBody(map[string]string{"username": "john", "password": "secret123"}).
		SetError(&conflict).
		Post("/users/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, httpResp.StatusCode())
	assert.Equal(t, "Username already exists", conflict.Error)

	// wrong password fails without leaking which part was wrong
	var badLogin envelope
	httpResp, err = client.R().
		SetBody(map[string]string{"username": "john", "password": "wrong-pass"}).
		SetError(&badLogin).
		Post("/users/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpResp.StatusCode())
	assert.Equal(t, "Invalid credentials", badLogin.Error)

	// correct login issues a fresh token
	var login envelope
	httpResp, err = client.R().
		SetBody(map[string]string{"username": "john", "password": "secret123"}).
		SetResult(&login).
		Post("/users/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, httpResp.StatusCode())

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(login.Data, &auth))
	token = auth.Token

	authed := func() *resty.Request {
		return client.R().SetHeader("Authorization", "Bearer "+token)
	}

	// create three items
	var created []models.Item
	for i, body := range []map[string]any{
		{"name": "Milk", "quantity": "2 packs"},
		{"name": "Eggs", "quantity": 12},
		{"name": "Bread"},
	} {
		var resp envelope
		httpResp, err = authed().SetBody(body).SetResult(&resp).Post("/items")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, httpResp.StatusCode(), "item %d", i)

		var item models.Item
		require.NoError(t, json.Unmarshal(resp.Data, &item))
		assert.False(t, item.Purchased)
		created = append(created, item)
	}

	// list comes back most recent first
	var list envelope
	httpResp, err = authed().SetResult(&list).Get("/items")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, httpResp.StatusCode())

	var items []models.Item
	require.NoError(t, json.Unmarshal(list.Data, &items))
	require.Len(t, items, 3)
	assert.Equal(t, created[2].ID, items[0].ID)
	assert.Equal(t, created[1].ID, items[1].ID)
	assert.Equal(t, created[0].ID, items[2].ID)

	// partial update flips the purchased flag and refreshes updated_at
	var updated envelope
	httpResp, err = authed().
		SetBody(map[string]any{"purchased": true}).
		SetResult(&updated).
		Put(fmt.Sprintf("/items/%s", created[0].ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, httpResp.StatusCode())

	var updatedItem models.Item
	require.NoError(t, json.Unmarshal(updated.Data, &updatedItem))
	assert.True(t, updatedItem.Purchased)
	assert.Equal(t, "Milk", updatedItem.Name)
	assert.False(t, updatedItem.UpdatedAt.Before(created[0].UpdatedAt))

	// delete then fetch → 404
	httpResp, err = authed().Delete(fmt.Sprintf("/items/%s", created[0].ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, httpResp.StatusCode())

	var notFound envelope
	httpResp, err = authed().SetError(&notFound).Get(fmt.Sprintf("/items/%s", created[0].ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, httpResp.StatusCode())
	assert.Equal(t, "Item not found", notFound.Error)
}

func TestE2E_ValidationErrors(t *testing.T) {
	ts := newE2EServer(t)
	client := resty.New().SetBaseURL(ts.URL)

	token := registerE2EUser(t, client, "john", "secret123")
	authed := func() *resty.Request {
		return client.R().SetHeader("Authorization", "Bearer "+token)
	}

	var resp envelope
	httpResp, err := authed().
		SetBody(map[string]any{"quantity": true, "purchased": "yes"}).
		SetError(&resp).
		Post("/items")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpResp.StatusCode())
	assert.Equal(t, "Validation error", resp.Error)
	assert.Equal(t, map[string]string{
		"name":      validators.MsgNameInvalid,
		"quantity":  validators.MsgQuantityInvalid,
		"purchased": validators.MsgPurchasedInvalid,
	}, resp.Details)
}

func TestE2E_TenantIsolation(t *testing.T) {
	ts := newE2EServer(t)
	client := resty.New().SetBaseURL(ts.URL)

	johnToken := registerE2EUser(t, client, "john", "secret123")
	janeToken := registerE2EUser(t, client, "jane", "secret456")

	// john creates an item
	var created envelope
	httpResp, err := client.R().
		SetHeader("Authorization", "Bearer "+johnToken).
		SetBody(map[string]any{"name": "Milk"}).
		SetResult(&created).
		Post("/items")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, httpResp.StatusCode())

	var item models.Item
	require.NoError(t, json.Unmarshal(created.Data, &item))

	// jane cannot see, modify, or delete it; every probe looks like a miss
	jane := func() *resty.Request {
		return client.R().SetHeader("Authorization", "Bearer "+janeToken)
	}

	httpResp, err = jane().Get("/items/" + item.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, httpResp.StatusCode())

	httpResp, err = jane().SetBody(map[string]any{"purchased": true}).Put("/items/" + item.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, httpResp.StatusCode())

	httpResp, err = jane().Delete("/items/" + item.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, httpResp.StatusCode())

	// jane's list stays empty
	var list envelope
	httpResp, err = jane().SetResult(&list).Get("/items")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, httpResp.StatusCode())

	var items []models.Item
	require.NoError(t, json.Unmarshal(list.Data, &items))
	assert.Empty(t, items)
}

func TestE2E_AuthFailures(t *testing.T) {
	ts := newE2EServer(t)
	client := resty.New().SetBaseURL(ts.URL)

	// no token at all
	var missing envelope
	httpResp, err := client.R().SetError(&missing).Get("/items")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpResp.StatusCode())
	assert.Equal(t, "Access token required", missing.Error)

	// syntactically valid but unverifiable token
	var invalid envelope
	httpResp, err = client.R().
		SetHeader("Authorization", "Bearer not-a-real-token").
		SetError(&invalid).
		Get("/items")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, httpResp.StatusCode())
	assert.Equal(t, "Invalid or expired token", invalid.Error)
}
