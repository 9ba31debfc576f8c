package request

type CreateReservationRequest struct {
	EventID string   `json:"event_id" validate:"required,uuid4"`
	SeatIDs []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
}
