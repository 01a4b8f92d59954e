package service

import (
	"context"
	"testing"

	"github.com/Bloopd3d/webs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedFirstRun(t *testing.T) {
	menuRepo := &fakeMenuRepo{}
	svc := NewSeedService(menuRepo, &fakeSeedState{}, zap.NewNop().Sugar())
	ctx := context.Background()

	inserted, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, inserted)

	items, err := menuRepo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 8)

	// every seeded item carries a fresh unique id
	seen := map[string]bool{}
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}
}

func TestSeedTwiceIsIdempotent(t *testing.T) {
	menuRepo := &fakeMenuRepo{}
	svc := NewSeedService(menuRepo, &fakeSeedState{}, zap.NewNop().Sugar())
	ctx := context.Background()

	first, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.Equal(t, 8, first)

	second, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, second)

	count, err := menuRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 8, count)
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	menuRepo := &fakeMenuRepo{}
	ctx := context.Background()

	require.NoError(t, menuRepo.Create(ctx, &domain.MenuItem{ID: "existing", Name: "Bife", Category: "Parrilla"}))

	svc := NewSeedService(menuRepo, &fakeSeedState{}, zap.NewNop().Sugar())

	inserted, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := menuRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSeedMarkerClosesRace(t *testing.T) {
	// an empty catalog whose marker was already claimed must not double-insert
	menuRepo := &fakeMenuRepo{}
	state := &fakeSeedState{claimed: true}
	svc := NewSeedService(menuRepo, state, zap.NewNop().Sugar())

	inserted, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := menuRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSeedMenuAvoidsWildcardCategory(t *testing.T) {
	for _, item := range seedMenu() {
		assert.NotEqual(t, domain.CategoryAll, item.Category)
	}
}
