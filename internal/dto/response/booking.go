package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	EventID     string    `json:"event_id"`
	EventName   string    `json:"event_name,omitempty"`
	SeatNumbers []int     `json:"seat_numbers"`
	CreatedAt   time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, event *entity.Event, seatNumbers []int) *BookingResponse {
	resp := &BookingResponse{
		ID:          booking.ID.String(),
		UserID:      booking.UserID.String(),
		EventID:     booking.EventID.String(),
		SeatNumbers: seatNumbers,
		CreatedAt:   booking.CreatedAt,
	}
	if event != nil {
		resp.EventName = event.Name
	}
	return resp
}
