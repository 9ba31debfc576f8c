package request

type CreateEventRequest struct {
	VenueID string  `json:"venue_id" validate:"required,uuid4"`
	Name    string  `json:"name" validate:"required,min=1,max=150"`
	Date    string  `json:"date" validate:"required"` // RFC 3339
	Price   float64 `json:"price" validate:"required,min=0"`
}
