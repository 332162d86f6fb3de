package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrammoRPG_Go/internal/crud"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/player"
	"github.com/osse101/GrammoRPG_Go/internal/testing/fakes"
)

// MockItemService mocks crud.Service for items
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) GetByID(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockItemService) GetAll(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *MockItemService) Add(ctx context.Context, in domain.ItemInput) (*domain.Item, error) {
	args := m.Called(ctx, in)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, id int, in domain.ItemInput) (*domain.Item, error) {
	args := m.Called(ctx, id, in)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func playerRouter() http.Handler {
	svc := player.NewService(fakes.NewPlayers())
	r := chi.NewRouter()
	r.Mount("/players", NewEntityHandlers[domain.Player, domain.PlayerInput, uuid.UUID](
		domain.EntityPlayer, svc, svc, ParseUUID).Routes())
	return r
}

func itemRouter(svc crud.Service[domain.Item, domain.ItemInput, int]) http.Handler {
	r := chi.NewRouter()
	r.Mount("/items", NewEntityHandlers[domain.Item, domain.ItemInput, int](
		domain.EntityItem, svc, nil, ParseIntID).Routes())
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Error
}

const ariaBody = `{"name":"Aria","strength":5,"hp":10,"max_hp":10,"inventory_id":1}`

func TestEntityHandlers_PlayerLifecycle(t *testing.T) {
	h := playerRouter()

	w := do(t, h, http.MethodPost, "/players", ariaBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Player
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "Aria", created.Name)

	w = do(t, h, http.MethodGet, "/players/"+created.ID.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/players/by-name?name=Aria", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, "/players", ariaBody)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ErrMsgDuplicateName, decodeError(t, w))

	w = do(t, h, http.MethodPut, "/players/"+created.ID.String(),
		`{"name":"Aria","strength":9,"hp":1,"max_hp":10,"inventory_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated domain.Player
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, 9, updated.Strength)

	w = do(t, h, http.MethodDelete, "/players/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodDelete, "/players/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "player not found", decodeError(t, w))
}

func TestEntityHandlers_NotFound(t *testing.T) {
	h := playerRouter()
	missing := uuid.New().String()

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/players/"+missing, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/players/by-name?name=Nobody", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/players/"+missing, ariaBody).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/players/"+missing, "").Code)
}

func TestEntityHandlers_ListIsNeverNull(t *testing.T) {
	w := do(t, playerRouter(), http.MethodGet, "/players", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestEntityHandlers_BadRequests(t *testing.T) {
	h := playerRouter()

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"malformed uuid", http.MethodGet, "/players/not-a-uuid", ""},
		{"malformed json", http.MethodPost, "/players", `{"name":`},
		{"unknown field", http.MethodPost, "/players", `{"name":"A","hp":1,"max_hp":1,"inventory_id":1,"level":3}`},
		{"trailing data", http.MethodPost, "/players", ariaBody + `{}`},
		{"missing name", http.MethodPost, "/players", `{"hp":1,"max_hp":1,"inventory_id":1}`},
		{"hp above max", http.MethodPost, "/players", `{"name":"A","hp":5,"max_hp":1,"inventory_id":1}`},
		{"missing name query", http.MethodGet, "/players/by-name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestEntityHandlers_ValidationFields(t *testing.T) {
	w := do(t, playerRouter(), http.MethodPost, "/players", `{"name":"","hp":1,"max_hp":1,"inventory_id":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "inventory_id")
}

func TestEntityHandlers_ByNameNotMountedWithoutLookup(t *testing.T) {
	svc := &MockItemService{}
	w := do(t, itemRouter(svc), http.MethodGet, "/items/by-name?name=x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "by-name falls through to the id route")
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestEntityHandlers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not found", fmt.Errorf("%w: item 3", domain.ErrNotFound), http.StatusNotFound, "item not found"},
		{"still referenced", domain.ErrStillReferenced, http.StatusConflict, "item is still referenced by other records"},
		{"invalid reference", domain.ErrInvalidReference, http.StatusBadRequest, ErrMsgInvalidReference},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInput},
		{"connection lost", fmt.Errorf("failed to delete item: %w", &pgconn.PgError{Code: "57P01"}), http.StatusServiceUnavailable, ErrMsgUnavailable},
		{"other storage failure", errors.New("pq: relation \"items\" does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockItemService{}
			svc.On("Delete", mock.Anything, 3).Return(false, tt.err)

			w := do(t, itemRouter(svc), http.MethodDelete, "/items/3", "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, decodeError(t, w))
			svc.AssertExpectations(t)
		})
	}
}

func TestEntityHandlers_CreateItem(t *testing.T) {
	svc := &MockItemService{}
	in := domain.ItemInput{Name: "Gem", Rarity: domain.RarityRare}
	svc.On("Add", mock.Anything, in).Return(&domain.Item{ID: 1, Name: "Gem", Rarity: domain.RarityRare}, nil)

	w := do(t, itemRouter(svc), http.MethodPost, "/items", `{"name":"Gem","rarity":"rare"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	svc.AssertExpectations(t)

	w = do(t, itemRouter(svc), http.MethodPost, "/items", `{"name":"Gem","rarity":"mythic"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseIntID(t *testing.T) {
	id, err := ParseIntID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	id, err = ParseIntID("2147483647")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxInt4, id)

	for _, bad := range []string{"0", "-1", "abc", "1.5", "", "2147483648", "3000000000"} {
		_, err := ParseIntID(bad)
		assert.Error(t, err, bad)
	}
}

func TestEntityHandlers_IDOutOfRangeIsBadRequest(t *testing.T) {
	svc := new(MockItemService)
	h := itemRouter(svc)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := do(t, h, method, "/items/3000000000", "")
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
	}
	w := do(t, h, http.MethodPut, "/items/3000000000", `{"name":"Gem"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestEntityHandlers_IntFieldsBoundedToInt4(t *testing.T) {
	h := playerRouter()

	w := do(t, h, http.MethodPost, "/players",
		`{"name":"Aria","strength":3000000000,"hp":10,"max_hp":10,"inventory_id":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"strength"`)

	w = do(t, h, http.MethodPost, "/players",
		`{"name":"Aria","strength":1,"hp":10,"max_hp":10,"inventory_id":2147483648}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"inventory_id"`)

	w = do(t, h, http.MethodPost, "/players",
		`{"name":"Aria","strength":2147483647,"hp":10,"max_hp":10,"inventory_id":2147483647}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}
