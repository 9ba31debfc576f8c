package usecase

import (
	"context"
	"errors"
	"testing"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCreateVenue(t *testing.T) {
	f := newFixture(t)
	svc := NewVenueService(f.repo, zap.NewNop())

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateVenue(context.Background(), &request.CreateVenueRequest{
			Name:     "",
			Capacity: 0,
		})
		if !errors.Is(err, entity.ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("creates venue with numbered seats", func(t *testing.T) {
		resp, err := svc.CreateVenue(context.Background(), &request.CreateVenueRequest{
			Name:     "Main Hall",
			Capacity: 5,
		})
		if err != nil {
			t.Fatalf("create venue failed: %v", err)
		}
		if resp.Capacity != 5 {
			t.Fatalf("expected capacity 5, got %d", resp.Capacity)
		}

		venueID := uuid.MustParse(resp.ID)
		seats, err := f.seats.FindByVenueID(context.Background(), venueID)
		if err != nil {
			t.Fatalf("find seats: %v", err)
		}
		if len(seats) != 5 {
			t.Fatalf("expected 5 seats, got %d", len(seats))
		}
		for i, s := range seats {
			if s.SeatNumber != i+1 {
				t.Fatalf("expected seat number %d, got %d", i+1, s.SeatNumber)
			}
			if s.Status != entity.SeatStatusAvailable {
				t.Fatalf("new seat %d must be available, got %s", s.SeatNumber, s.Status)
			}
		}
	})
}
