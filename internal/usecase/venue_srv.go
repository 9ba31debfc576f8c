package usecase

import (
	"context"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VenueService interface {
	// CreateVenue creates the venue and its numbered seats in one
	// transaction. Seats persist for the venue's lifetime; they are never
	// deleted, only booked.
	CreateVenue(ctx context.Context, req *request.CreateVenueRequest) (*response.VenueResponse, error)
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) CreateVenue(ctx context.Context, req *request.CreateVenueRequest) (*response.VenueResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidRequest, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	venue := &entity.Venue{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Capacity: req.Capacity,
	}

	seats := make([]*entity.Seat, req.Capacity)
	for i := range seats {
		seats[i] = &entity.Seat{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			VenueID:    venue.ID,
			SeatNumber: i + 1,
			Status:     entity.SeatStatusAvailable,
		}
	}

	err := s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Venue.Create(txCtx, venue); err != nil {
			return err
		}
		return s.repo.Seat.CreateBatch(txCtx, seats)
	})
	if err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("name", venue.Name),
		zap.Int("capacity", venue.Capacity),
	)

	return response.VenueToResponse(venue), nil
}
