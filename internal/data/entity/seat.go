package entity

import "github.com/google/uuid"

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusBooked    SeatStatus = "booked"
)

// Seat is the contended row of the whole system. Status only ever moves
// available -> booked, and only inside a committed reservation transaction.
type Seat struct {
	Base
	VenueID    uuid.UUID  `db:"venue_id"`
	SeatNumber int        `db:"seat_number"` // unique within a venue
	Status     SeatStatus `db:"status"`
}
