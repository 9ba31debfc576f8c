package usecase

import (
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Reservation ReservationService
	Event       EventService
	Venue       VenueService
}

func NewService(repo *repository.Repository, notifier Notifier, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Reservation: NewReservationService(repo, notifier, config, log),
		Event:       NewEventService(repo, log),
		Venue:       NewVenueService(repo, log),
	}
}
