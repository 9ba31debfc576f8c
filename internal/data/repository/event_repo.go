package repository

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAll(ctx context.Context) ([]*entity.Event, error)
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func (r *eventRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.db)
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, venue_id, name, date, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q(ctx).Exec(ctx, query,
		event.ID,
		event.VenueID,
		event.Name,
		event.Date,
		event.Price,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("event_name", event.Name),
		)
		return fmt.Errorf("create event %s: %w", event.Name, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, venue_id, name, date, price, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	var event entity.Event
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.VenueID,
		&event.Name,
		&event.Date,
		&event.Price,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	query := `
		SELECT id, venue_id, name, date, price, created_at, updated_at
		FROM events
		ORDER BY date
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find events", zap.Error(err))
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		var event entity.Event
		err := rows.Scan(
			&event.ID,
			&event.VenueID,
			&event.Name,
			&event.Date,
			&event.Price,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, &event)
	}

	return events, nil
}
