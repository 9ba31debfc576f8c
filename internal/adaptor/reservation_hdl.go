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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (requires identity)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Reserve(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleReserveError(w, err)
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// handleReserveError maps the engine's error contract onto HTTP codes.
func (h *ReservationHandler) handleReserveError(w http.ResponseWriter, err error) {
	var unavailable *entity.SeatsUnavailableError

	switch {
	case errors.Is(err, entity.ErrInvalidRequest):
		h.log.Warn("Reservation rejected, invalid request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrEventNotFound),
		errors.Is(err, entity.ErrSeatNotFound):
		h.log.Warn("Reservation rejected, unknown reference", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &unavailable):
		// 409 with the conflicting seat numbers so the client can
		// re-render its seat selection.
		h.log.Info("Reservation lost seat contention",
			zap.Ints("conflicting_seats", unavailable.SeatNumbers))
		utils.ResponseConflict(w, err.Error(), map[string][]int{
			"conflicting_seats": unavailable.SeatNumbers,
		})

	case errors.Is(err, entity.ErrTransactionFailed):
		// Retryable: no partial state survived the abort.
		h.log.Warn("Reservation transaction failed", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Reservation could not be completed, please retry")

	default:
		h.log.Error("Failed to create reservation", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
