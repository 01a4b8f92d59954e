package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/Bloopd3d/webs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalog(repo *fakeMenuRepo) *CatalogService {
	return NewCatalogService(repo, zap.NewNop().Sugar())
}

func TestCatalogCreateAssignsID(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := newCatalog(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.MenuItem{Name: "Milanesa", Category: "Parrilla", Price: 3000})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	items, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestCatalogListFilter(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := newCatalog(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.MenuItem{Name: "Bife", Category: "Parrilla"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.MenuItem{Name: "Rolls", Category: "Sushi"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"no filter", "", 2},
		{"wildcard", domain.CategoryAll, 2},
		{"exact match", "Sushi", 1},
		{"case sensitive", "sushi", 0},
		{"unknown category", "Postres", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.List(ctx, tt.category)
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestCatalogListBounded(t *testing.T) {
	repo := &fakeMenuRepo{}
	for i := 0; i < 1001; i++ {
		repo.items = append(repo.items, domain.MenuItem{
			ID:       fmt.Sprintf("item-%d", i),
			Category: "Parrilla",
		})
	}
	svc := newCatalog(repo)

	items, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, items, 1000)

	// the cap applies to filtered listings as well
	items, err = svc.List(context.Background(), "Parrilla")
	require.NoError(t, err)
	assert.Len(t, items, 1000)
}

func TestCatalogUpdateEmptyPatch(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := newCatalog(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.MenuItem{Name: "Bife", Category: "Parrilla", Price: 6200})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, domain.MenuItemPatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)

	// record unchanged
	items, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bife", items[0].Name)
	assert.Equal(t, 6200.0, items[0].Price)
}

func TestCatalogUpdatePartial(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := newCatalog(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.MenuItem{
		Name:        "Bife",
		Description: "350g",
		Category:    "Parrilla",
		Price:       6200,
		Featured:    true,
	})
	require.NoError(t, err)

	newPrice := 6800.0
	updated, err := svc.Update(ctx, created.ID, domain.MenuItemPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 6800.0, updated.Price)
	assert.Equal(t, "Bife", updated.Name)
	assert.Equal(t, "350g", updated.Description)
	assert.Equal(t, "Parrilla", updated.Category)
	assert.True(t, updated.Featured)
}

func TestCatalogUpdateNotFound(t *testing.T) {
	svc := newCatalog(&fakeMenuRepo{})

	name := "Nada"
	_, err := svc.Update(context.Background(), "missing-id", domain.MenuItemPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogDeleteTwice(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := newCatalog(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.MenuItem{Name: "Bife", Category: "Parrilla"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
}
