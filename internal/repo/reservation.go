package repo

import (
	"context"

	"github.com/Bloopd3d/webs/internal/domain"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Reservation, error)
}
