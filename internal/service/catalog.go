package service

import (
	"context"
	"fmt"

	"github.com/Bloopd3d/webs/internal/domain"
	"github.com/Bloopd3d/webs/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxListResults caps every listing; callers beyond the cap see a silently
// truncated result.
const maxListResults = 1000

type CatalogService struct {
	menuRepo repo.MenuRepository
	logger   *zap.SugaredLogger
}

func NewCatalogService(menuRepo repo.MenuRepository, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

// List returns the catalog, optionally filtered by exact category match. An
// empty filter or the "Todos" wildcard returns everything.
func (s *CatalogService) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	if category == domain.CategoryAll {
		category = ""
	}

	items, err := s.menuRepo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}

	if len(items) > maxListResults {
		items = items[:maxListResults]
	}

	return items, nil
}

func (s *CatalogService) Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	item.ID = uuid.NewString()

	if err := s.menuRepo.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Infow("menu item created", "id", item.ID, "name", item.Name, "category", item.Category)

	return &item, nil
}

// Update applies a sparse patch to one item. An entirely empty patch is
// rejected rather than treated as a no-op.
func (s *CatalogService) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	item, err := s.menuRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("menu item updated", "id", id)

	return item, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("menu item deleted", "id", id)

	return nil
}
