package notify

import (
	"encoding/json"
	"testing"
	"time"

	"event-booking/internal/usecase"

	"github.com/google/uuid"
)

func TestNewTaskPayload(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	n := usecase.Notification{
		Type:        usecase.NotificationBookingConfirmed,
		UserID:      uuid.New(),
		BookingID:   uuid.New(),
		EventID:     uuid.New(),
		SeatNumbers: []int{4, 5},
	}

	got := newTask(n, now)

	if got.Type != string(usecase.NotificationBookingConfirmed) {
		t.Fatalf("expected type %q, got %q", usecase.NotificationBookingConfirmed, got.Type)
	}
	if got.UserID != n.UserID.String() || got.BookingID != n.BookingID.String() || got.EventID != n.EventID.String() {
		t.Fatalf("identity fields mismatch: %+v", got)
	}
	if !got.DeliverAt.Equal(now) {
		t.Fatalf("immediate task must be due at enqueue time, got %v", got.DeliverAt)
	}
	if _, err := uuid.Parse(got.ID); err != nil {
		t.Fatalf("task id must be a uuid: %v", err)
	}
}

func TestNewTaskDelayedDueTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	delay := 24 * time.Hour
	n := usecase.Notification{
		Type:         usecase.NotificationReviewPrompt,
		UserID:       uuid.New(),
		BookingID:    uuid.New(),
		EventID:      uuid.New(),
		DeliverAfter: delay,
	}

	got := newTask(n, now)

	if want := now.Add(delay); !got.DeliverAt.Equal(want) {
		t.Fatalf("expected due time %v, got %v", want, got.DeliverAt)
	}
}

func TestTaskJSONOmitsEmptySeats(t *testing.T) {
	n := usecase.Notification{
		Type:      usecase.NotificationReviewPrompt,
		UserID:    uuid.New(),
		BookingID: uuid.New(),
		EventID:   uuid.New(),
	}

	body, err := json.Marshal(newTask(n, time.Now()))
	if err != nil {
		t.Fatalf("marshal task: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal task: %v", err)
	}
	if _, ok := decoded["seat_numbers"]; ok {
		t.Fatal("review prompt payload must omit seat_numbers")
	}
	if decoded["type"] != string(usecase.NotificationReviewPrompt) {
		t.Fatalf("expected type %q, got %v", usecase.NotificationReviewPrompt, decoded["type"])
	}
}
