package adaptor

import (
	"event-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Reservation *ReservationHandler
	Event       *EventHandler
	Venue       *VenueHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Reservation: NewReservationHandler(service.Reservation, log),
		Event:       NewEventHandler(service.Event, log),
		Venue:       NewVenueHandler(service.Venue, log),
	}
}
