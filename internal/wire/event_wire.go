package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEvent(r chi.Router, handler *adaptor.EventHandler) {
	// Browsing is public
	r.Get("/api/events", handler.ListEvents)
	r.Get("/api/events/{id}/seats", handler.GetEventSeats)

	// POST /api/events - create an event at a venue
	r.Post("/api/events", handler.CreateEvent)
}
