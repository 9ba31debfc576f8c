package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Base
	VenueID uuid.UUID `db:"venue_id"`
	Name    string    `db:"name"`
	Date    time.Time `db:"date"`
	Price   float64   `db:"price"`
}
