package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type EventResponse struct {
	ID      string    `json:"id"`
	VenueID string    `json:"venue_id"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Price   float64   `json:"price"`
}

type SeatResponse struct {
	ID         string            `json:"id"`
	SeatNumber int               `json:"seat_number"`
	Status     entity.SeatStatus `json:"status"`
}

type EventSeatsResponse struct {
	Event EventResponse  `json:"event"`
	Seats []SeatResponse `json:"seats"`
}

func EventToResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:      event.ID.String(),
		VenueID: event.VenueID.String(),
		Name:    event.Name,
		Date:    event.Date,
		Price:   event.Price,
	}
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:         seat.ID.String(),
		SeatNumber: seat.SeatNumber,
		Status:     seat.Status,
	}
}
