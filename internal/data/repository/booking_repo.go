package repository

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"go.uber.org/zap"
)

// BookingRepository is the append-only booking ledger. Bookings are written
// once, inside the reservation transaction, and never updated or deleted.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, event_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.EventID,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}
