package entity

import "github.com/google/uuid"

// Booking is immutable once written; its existence is the confirmation.
// There is no status column.
type Booking struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	EventID uuid.UUID `db:"event_id"`
}
