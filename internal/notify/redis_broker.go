// Package notify implements the producer side of the notification queue.
// Delivery is the external notifier's job; this service only enqueues.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// task is the wire payload pushed to the broker. Consumers get enough
// context to send a confirmation or review prompt without querying the
// primary database.
type task struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	UserID      string    `json:"user_id"`
	BookingID   string    `json:"booking_id"`
	EventID     string    `json:"event_id"`
	SeatNumbers []int     `json:"seat_numbers,omitempty"`
	EnqueuedAt  time.Time `json:"enqueued_at"`
	DeliverAt   time.Time `json:"deliver_at"`
}

func newTask(n usecase.Notification, now time.Time) task {
	return task{
		ID:          uuid.New().String(),
		Type:        string(n.Type),
		UserID:      n.UserID.String(),
		BookingID:   n.BookingID.String(),
		EventID:     n.EventID.String(),
		SeatNumbers: n.SeatNumbers,
		EnqueuedAt:  now,
		DeliverAt:   now.Add(n.DeliverAfter),
	}
}

// RedisBroker pushes immediate tasks to a list and delayed tasks to a
// sorted set scored by due time, the same main/delayed split the rest of
// the pipeline consumes from.
type RedisBroker struct {
	client       *redis.Client
	mainQueue    string
	delayedQueue string
	log          *zap.Logger
}

func NewRedisBroker(config utils.BrokerConfig, log *zap.Logger) (*RedisBroker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return &RedisBroker{
		client:       client,
		mainQueue:    config.QueueName,
		delayedQueue: config.QueueName + ":delayed",
		log:          log.With(zap.String("component", "notify")),
	}, nil
}

// Enqueue implements usecase.Notifier.
func (b *RedisBroker) Enqueue(ctx context.Context, n usecase.Notification) error {
	t := newTask(n, time.Now())

	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal notification task: %w", err)
	}

	if n.DeliverAfter > 0 {
		err = b.client.ZAdd(ctx, b.delayedQueue, redis.Z{
			Score:  float64(t.DeliverAt.Unix()),
			Member: body,
		}).Err()
	} else {
		err = b.client.LPush(ctx, b.mainQueue, body).Err()
	}
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", t.Type, err)
	}

	b.log.Debug("Notification enqueued",
		zap.String("type", t.Type),
		zap.String("booking_id", t.BookingID),
		zap.Time("deliver_at", t.DeliverAt),
	)
	return nil
}

func (b *RedisBroker) Close() error {
	return b.client.Close()
}
