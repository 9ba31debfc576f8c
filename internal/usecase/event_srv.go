package usecase

import (
	"context"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	ListEvents(ctx context.Context) ([]response.EventResponse, error)

	// GetEventSeats returns the event together with its venue's seat map,
	// ordered by seat number, so clients can render availability.
	GetEventSeats(ctx context.Context, eventID string) (*response.EventSeatsResponse, error)
}

type eventService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEventService(repo *repository.Repository, log *zap.Logger) EventService {
	return &eventService{
		repo: repo,
		log:  log.With(zap.String("service", "event")),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidRequest, utils.FormatValidationErrors(errs))
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("%w: venue ID %s", entity.ErrInvalidRequest, req.VenueID)
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %s", entity.ErrInvalidRequest, req.Date)
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, entity.ErrVenueNotFound
	}

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VenueID: venueID,
		Name:    req.Name,
		Date:    date,
		Price:   req.Price,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("venue_id", req.VenueID),
		zap.String("name", req.Name),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	responses := make([]response.EventResponse, len(events))
	for i, event := range events {
		responses[i] = response.EventToResponse(event)
	}

	return responses, nil
}

func (s *eventService) GetEventSeats(ctx context.Context, eventID string) (*response.EventSeatsResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: event ID %s", entity.ErrInvalidRequest, eventID)
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, entity.ErrEventNotFound
	}

	seats, err := s.repo.Seat.FindByVenueID(ctx, event.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get event seats: %w", err)
	}

	seatResponses := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		seatResponses[i] = response.SeatToResponse(seat)
	}

	return &response.EventSeatsResponse{
		Event: response.EventToResponse(event),
		Seats: seatResponses,
	}, nil
}
