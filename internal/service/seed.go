package service

import (
	"context"
	"fmt"

	"github.com/Bloopd3d/webs/internal/domain"
	"github.com/Bloopd3d/webs/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeedService struct {
	menuRepo  repo.MenuRepository
	seedState repo.SeedStateRepository
	logger    *zap.SugaredLogger
}

func NewSeedService(menuRepo repo.MenuRepository, seedState repo.SeedStateRepository, logger *zap.SugaredLogger) *SeedService {
	return &SeedService{
		menuRepo:  menuRepo,
		seedState: seedState,
		logger:    logger,
	}
}

// Seed loads the built-in catalog into an empty menu collection. It returns
// the number of inserted items, or zero if the catalog was already seeded or
// already holds records. The count check alone is racy for concurrent
// first-run calls, so insertion is additionally gated on an atomic marker
// claim in the store.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	count, err := s.menuRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	claimed, err := s.seedState.Claim(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to claim seed marker: %w", err)
	}
	if !claimed {
		return 0, nil
	}

	items := seedMenu()
	if err := s.menuRepo.CreateMany(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to insert seed menu: %w", err)
	}

	s.logger.Infow("menu seeded", "items", len(items))

	return len(items), nil
}

// seedMenu builds the fixed example catalog, each item with a fresh id.
func seedMenu() []domain.MenuItem {
	items := []domain.MenuItem{
		{
			Name:        "Risotto de Calabaza",
			Description: "Cremoso risotto con calabaza asada, parmesano y aceite de trufa",
			Price:       4500,
			Category:    "Parrilla",
			ImageURL:    "https://images.pexels.com/photos/34759470/pexels-photo-34759470.jpeg",
			Featured:    true,
			GlutenFree:  true,
		},
		{
			Name:        "Sushi Rolls Especiales",
			Description: "Selección de 12 piezas con salmón, atún y aguacate",
			Price:       5200,
			Category:    "Sushi",
			ImageURL:    "https://images.pexels.com/photos/14188066/pexels-photo-14188066.jpeg",
			Featured:    true,
		},
		{
			Name:        "Brunch Gratitud",
			Description: "Tostadas artesanales, huevos pochados, aguacate y salmón ahumado",
			Price:       3800,
			Category:    "Brunch",
			ImageURL:    "https://images.pexels.com/photos/7936963/pexels-photo-7936963.jpeg",
			Featured:    true,
		},
		{
			Name:        "Roll de Canela",
			Description: "Roll casero con glaseado de queso crema y canela",
			Price:       1800,
			Category:    "Cafetería",
			ImageURL:    "https://images.pexels.com/photos/351962/pexels-photo-351962.jpeg",
			Featured:    true,
		},
		{
			Name:        "Bife de Chorizo",
			Description: "350g de carne premium con guarnición de papas rústicas",
			Price:       6200,
			Category:    "Parrilla",
			ImageURL:    "https://images.pexels.com/photos/769289/pexels-photo-769289.jpeg",
			GlutenFree:  true,
		},
		{
			Name:        "Café Especialidad",
			Description: "Café de origen con método V60",
			Price:       1200,
			Category:    "Cafetería",
			ImageURL:    "https://images.pexels.com/photos/312418/pexels-photo-312418.jpeg",
			GlutenFree:  true,
		},
		{
			Name:        "Ensalada César Sin TACC",
			Description: "Lechuga romana, pollo grillado, crotones sin gluten y aderezo césar",
			Price:       3200,
			Category:    "Sin TACC",
			ImageURL:    "https://images.pexels.com/photos/2097090/pexels-photo-2097090.jpeg",
			GlutenFree:  true,
		},
		{
			Name:        "Panqueques con Frutas",
			Description: "Stack de panqueques esponjosos con frutas frescas y miel",
			Price:       2500,
			Category:    "Brunch",
			ImageURL:    "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg",
		},
	}

	for i := range items {
		items[i].ID = uuid.NewString()
	}

	return items
}
