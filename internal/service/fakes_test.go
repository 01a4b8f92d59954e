package service

import (
	"context"
	"sync"

	"github.com/Bloopd3d/webs/internal/domain"
)

type fakeMenuRepo struct {
	mu    sync.Mutex
	items []domain.MenuItem
}

func (f *fakeMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeMenuRepo) CreateMany(ctx context.Context, items []domain.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeMenuRepo) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.MenuItem{}
	for _, item := range f.items {
		if category == "" || item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if patch.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		item := &f.items[i]
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

func (f *fakeMenuRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeMenuRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []domain.Reservation
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Reservation, len(f.reservations))
	copy(out, f.reservations)
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id string, status string) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
			updated := f.reservations[i]
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeSeedState struct {
	mu      sync.Mutex
	claimed bool
}

func (f *fakeSeedState) Claim(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claimed {
		return false, nil
	}
	f.claimed = true
	return true, nil
}
