package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Bloopd3d/webs/internal/domain"
	"github.com/Bloopd3d/webs/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService struct {
	reservationRepo repo.ReservationRepository
	logger          *zap.SugaredLogger
}

func NewReservationService(reservationRepo repo.ReservationRepository, logger *zap.SugaredLogger) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Create books a table. Whatever the caller submits, the reservation starts
// as "pending" with a server-side creation timestamp. There is no conflict
// check against existing bookings for the same slot.
func (s *ReservationService) Create(ctx context.Context, res domain.Reservation) (*domain.Reservation, error) {
	res.ID = uuid.NewString()
	res.Status = domain.StatusPending
	res.CreatedAt = time.Now().UTC()

	if err := s.reservationRepo.Create(ctx, &res); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.logger.Infow("reservation created", "id", res.ID, "date", res.Date, "time", res.Time, "party_size", res.PartySize)

	return &res, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	if len(reservations) > maxListResults {
		reservations = reservations[:maxListResults]
	}

	return reservations, nil
}

// UpdateStatus overwrites the status field with an arbitrary string; no
// closed set of states is enforced server-side.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("reservation status updated", "id", id, "status", status)

	return res, nil
}
