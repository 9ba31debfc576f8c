package request

type CreateVenueRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=150"`
	Capacity int    `json:"capacity" validate:"required,min=1,max=100000"`
}
