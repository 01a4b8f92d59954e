package repo

import (
	"context"

	"github.com/Bloopd3d/webs/internal/domain"
)

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	CreateMany(ctx context.Context, items []domain.MenuItem) error
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
