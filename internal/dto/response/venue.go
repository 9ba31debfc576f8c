package response

import "event-booking/internal/data/entity"

type VenueResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func VenueToResponse(venue *entity.Venue) *VenueResponse {
	return &VenueResponse{
		ID:       venue.ID.String(),
		Name:     venue.Name,
		Capacity: venue.Capacity,
	}
}
