package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCreateEvent(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.repo, zap.NewNop())

	now := time.Now()
	venue := &entity.Venue{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:     "Main Hall",
		Capacity: 10,
	}
	if err := f.venues.Create(context.Background(), venue); err != nil {
		t.Fatalf("seed venue: %v", err)
	}

	t.Run("unknown venue", func(t *testing.T) {
		_, err := svc.CreateEvent(context.Background(), &request.CreateEventRequest{
			VenueID: uuid.New().String(),
			Name:    "Evening Show",
			Date:    now.Add(48 * time.Hour).Format(time.RFC3339),
			Price:   25,
		})
		if !errors.Is(err, entity.ErrVenueNotFound) {
			t.Fatalf("expected ErrVenueNotFound, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.CreateEvent(context.Background(), &request.CreateEventRequest{
			VenueID: venue.ID.String(),
			Name:    "Evening Show",
			Date:    "next tuesday",
			Price:   25,
		})
		if !errors.Is(err, entity.ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		resp, err := svc.CreateEvent(context.Background(), &request.CreateEventRequest{
			VenueID: venue.ID.String(),
			Name:    "Evening Show",
			Date:    now.Add(48 * time.Hour).Format(time.RFC3339),
			Price:   25,
		})
		if err != nil {
			t.Fatalf("create event failed: %v", err)
		}
		if resp.VenueID != venue.ID.String() || resp.Name != "Evening Show" {
			t.Fatalf("unexpected response: %+v", resp)
		}

		stored, err := f.events.FindByID(context.Background(), uuid.MustParse(resp.ID))
		if err != nil || stored == nil {
			t.Fatalf("event not persisted: %v", err)
		}
	})
}

func TestListEventsOrderedByDate(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.repo, zap.NewNop())

	now := time.Now()
	venueID := uuid.New()
	later := &entity.Event{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		VenueID: venueID,
		Name:    "Late Show",
		Date:    now.Add(72 * time.Hour),
	}
	earlier := &entity.Event{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		VenueID: venueID,
		Name:    "Matinee",
		Date:    now.Add(24 * time.Hour),
	}
	for _, e := range []*entity.Event{later, earlier} {
		if err := f.events.Create(context.Background(), e); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}

	events, err := svc.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("list events failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Name != "Matinee" || events[1].Name != "Late Show" {
		t.Fatalf("events not ordered by date: %q, %q", events[0].Name, events[1].Name)
	}
}

func TestGetEventSeats(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.repo, zap.NewNop())
	event, seats := f.seedEvent(t, 3)

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.GetEventSeats(context.Background(), uuid.New().String())
		if !errors.Is(err, entity.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("seat map ordered by number", func(t *testing.T) {
		resp, err := svc.GetEventSeats(context.Background(), event.ID.String())
		if err != nil {
			t.Fatalf("get event seats failed: %v", err)
		}
		if resp.Event.ID != event.ID.String() {
			t.Fatalf("expected event %s, got %s", event.ID, resp.Event.ID)
		}
		if len(resp.Seats) != len(seats) {
			t.Fatalf("expected %d seats, got %d", len(seats), len(resp.Seats))
		}
		for i, s := range resp.Seats {
			if s.SeatNumber != i+1 {
				t.Fatalf("seat %d out of order: number %d", i, s.SeatNumber)
			}
			if s.Status != entity.SeatStatusAvailable {
				t.Fatalf("seat %d expected available, got %s", s.SeatNumber, s.Status)
			}
		}
	})
}
