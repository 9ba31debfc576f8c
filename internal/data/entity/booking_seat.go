package entity

import "github.com/google/uuid"

// BookingSeat links one claimed seat to its booking. The seat_id column is
// UNIQUE, so the database itself rejects a second claim on the same seat.
type BookingSeat struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	SeatID    uuid.UUID `db:"seat_id"`
}
