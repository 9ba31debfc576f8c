package repository

import (
	"event-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Tx          TxRunner
	Venue       VenueRepository
	Event       EventRepository
	Seat        SeatRepository
	Booking     BookingRepository
	BookingSeat BookingSeatRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:          NewTxRunner(db),
		Venue:       NewVenueRepository(db, log),
		Event:       NewEventRepository(db, log),
		Seat:        NewSeatRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		BookingSeat: NewBookingSeatRepository(db, log),
	}
}
