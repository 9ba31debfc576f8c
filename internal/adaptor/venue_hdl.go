package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// CreateVenue handles POST /api/venues
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidRequest) {
			h.log.Warn("Create venue failed, invalid request", zap.Error(err))
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Failed to create venue", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseCreated(w, "success", venue)
}
