package wire

import (
	"event-booking/internal/adaptor"
	"event-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(r chi.Router, handler *adaptor.ReservationHandler, log *zap.Logger) {
	// Booking a seat set needs an authenticated caller. Identity comes
	// from the upstream gateway; this service only requires the header.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/reservations - reserve a seat set for an event
		r.Post("/api/reservations", handler.CreateReservation)
	})
}
