package repository

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"go.uber.org/zap"
)

// BookingSeatRepository writes the per-seat claim rows. Like bookings these
// are append-only from the engine's perspective.
type BookingSeatRepository interface {
	CreateBatch(ctx context.Context, bookingSeats []*entity.BookingSeat) error
}

type bookingSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingSeatRepository(db database.PgxIface, log *zap.Logger) BookingSeatRepository {
	return &bookingSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_seat")),
	}
}

func (r *bookingSeatRepository) CreateBatch(ctx context.Context, bookingSeats []*entity.BookingSeat) error {
	if len(bookingSeats) == 0 {
		return nil
	}

	query := `INSERT INTO booking_seats (id, booking_id, seat_id, created_at) VALUES `
	args := []interface{}{}

	for i, bs := range bookingSeats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)

		args = append(args,
			bs.ID,
			bs.BookingID,
			bs.SeatID,
			bs.CreatedAt,
		)
	}

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create booking seats",
			zap.Error(err),
			zap.Int("count", len(bookingSeats)),
		)
		return fmt.Errorf("create booking seats: %w", err)
	}

	return nil
}
