package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create event")
		return
	}

	utils.ResponseCreated(w, "success", event)
}

// ListEvents handles GET /api/events (public)
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// GetEventSeats handles GET /api/events/{id}/seats (public)
func (h *EventHandler) GetEventSeats(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	seats, err := h.service.GetEventSeats(r.Context(), eventID)
	if err != nil {
		h.handleServiceError(w, err, "get event seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

func (h *EventHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrInvalidRequest):
		h.log.Warn(operation+" failed, invalid request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrEventNotFound),
		errors.Is(err, entity.ErrVenueNotFound):
		h.log.Warn(operation+" failed, not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
