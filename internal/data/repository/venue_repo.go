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

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
}

type venueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.db)
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (id, name, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q(ctx).Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Capacity,
		venue.CreatedAt,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("venue_name", venue.Name),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, err)
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `
		SELECT id, name, capacity, created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	var venue entity.Venue
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Capacity,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return &venue, nil
}
