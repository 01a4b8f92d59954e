package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Bloopd3d/webs/internal/auth"
	"github.com/Bloopd3d/webs/internal/domain"
	"github.com/Bloopd3d/webs/internal/ratelimiter"
	"github.com/Bloopd3d/webs/internal/service"
	"go.uber.org/zap"
)

const testToken = "admin_la_calandria_2024"

type memMenuRepo struct {
	mu    sync.Mutex
	items []domain.MenuItem
}

func (m *memMenuRepo) Create(_ context.Context, item *domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *item)
	return nil
}

func (m *memMenuRepo) CreateMany(_ context.Context, items []domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
	return nil
}

func (m *memMenuRepo) List(_ context.Context, category string) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.MenuItem{}
	for _, item := range m.items {
		if category == "" || item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memMenuRepo) Update(_ context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}
	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		item := &m.items[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.ImageURL != nil {
			item.ImageURL = *patch.ImageURL
		}
		if patch.Featured != nil {
			item.Featured = *patch.Featured
		}
		if patch.GlutenFree != nil {
			item.GlutenFree = *patch.GlutenFree
		}
		updated := *item
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memMenuRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memMenuRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

type memReservationRepo struct {
	mu           sync.Mutex
	reservations []domain.Reservation
}

func (m *memReservationRepo) Create(_ context.Context, res *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations = append(m.reservations, *res)
	return nil
}

func (m *memReservationRepo) List(_ context.Context) ([]domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Reservation, len(m.reservations))
	copy(out, m.reservations)
	return out, nil
}

func (m *memReservationRepo) UpdateStatus(_ context.Context, id string, status string) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reservations {
		if m.reservations[i].ID == id {
			m.reservations[i].Status = status
			updated := m.reservations[i]
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memSeedState struct {
	mu      sync.Mutex
	claimed bool
}

func (m *memSeedState) Claim(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.claimed {
		return false, nil
	}
	m.claimed = true
	return true, nil
}

func newTestApplication(t *testing.T) (*application, http.Handler) {
	t.Helper()

	logger := zap.NewNop().Sugar()
	menuRepo := &memMenuRepo{}
	reservationRepo := &memReservationRepo{}
	seedState := &memSeedState{}

	app := &application{
		config: config{
			addr:        ":0",
			env:         "test",
			apiURL:      "localhost",
			corsOrigins: []string{"*"},
			rateLimiter: ratelimiter.Config{Enabled: false},
			admin: adminConfig{
				username: "admin",
				password: "calandria2024",
				token:    testToken,
			},
		},
		logger:       logger,
		rateLimiter:  ratelimiter.NewFixedWindowLimiter(1000, time.Second),
		authProvider: auth.NewStaticProvider("admin", "calandria2024", testToken),
		catalog:      service.NewCatalogService(menuRepo, logger),
		reservations: service.NewReservationService(reservationRepo, logger),
		seeder:       service.NewSeedService(menuRepo, seedState, logger),
	}

	return app, app.mount()
}

func doRequest(t *testing.T, mux http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body %q: %v", rr.Body.String(), err)
	}
	return out
}
