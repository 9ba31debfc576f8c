package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, handler *adaptor.VenueHandler) {
	// POST /api/venues - venue setup, creates the venue and its seats
	r.Post("/api/venues", handler.CreateVenue)
}
