package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationReviewPrompt     NotificationType = "review_prompt"
)

// Notification is handed to the external notifier subsystem after a booking
// commits. DeliverAfter of zero means deliver as soon as possible.
type Notification struct {
	Type         NotificationType
	UserID       uuid.UUID
	BookingID    uuid.UUID
	EventID      uuid.UUID
	SeatNumbers  []int
	DeliverAfter time.Duration
}

// Notifier enqueues notifications fire-and-forget. Enqueue errors are the
// caller's to log and drop; they must never affect booking state.
type Notifier interface {
	Enqueue(ctx context.Context, n Notification) error
}
