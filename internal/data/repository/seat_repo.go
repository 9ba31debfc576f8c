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

type SeatRepository interface {
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Seat, error)

	// LockSeats acquires exclusive row locks on the requested seats, in
	// ascending id order so overlapping concurrent requests acquire shared
	// seats in the same relative order and cannot deadlock. Must run inside
	// an active transaction; locks are held until commit or abort. Returns
	// entity.ErrSeatNotFound when any requested id does not exist.
	LockSeats(ctx context.Context, seatIDs []uuid.UUID) ([]*entity.Seat, error)

	// MarkBooked transitions the given seats available -> booked. The
	// status guard in the WHERE clause means the update count must match
	// the request; anything less is reported as an error.
	MarkBooked(ctx context.Context, seatIDs []uuid.UUID) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.db)
}

// Six bind parameters per seat row; the extended protocol caps a single
// statement at 65535 parameters, so large venues insert in chunks.
const seatInsertChunk = 5000

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	for len(seats) > 0 {
		n := len(seats)
		if n > seatInsertChunk {
			n = seatInsertChunk
		}
		if err := r.insertSeats(ctx, seats[:n]); err != nil {
			return err
		}
		seats = seats[n:]
	}
	return nil
}

func (r *seatRepository) insertSeats(ctx context.Context, seats []*entity.Seat) error {
	query := `INSERT INTO seats (id, venue_id, seat_number, status, created_at, updated_at) VALUES `
	args := []interface{}{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6)

		args = append(args,
			seat.ID,
			seat.VenueID,
			seat.SeatNumber,
			seat.Status,
			seat.CreatedAt,
			seat.UpdatedAt,
		)
	}

	_, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("create batch seats: %w", err)
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `
		SELECT id, venue_id, seat_number, status, created_at, updated_at
		FROM seats
		WHERE id = $1
	`

	var seat entity.Seat
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.VenueID,
		&seat.SeatNumber,
		&seat.Status,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, venue_id, seat_number, status, created_at, updated_at
		FROM seats
		WHERE venue_id = $1
		ORDER BY seat_number
	`

	rows, err := r.q(ctx).Query(ctx, query, venueID)
	if err != nil {
		r.log.Error("Failed to find seats by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find seats by venue ID %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	return scanSeats(rows)
}

func (r *seatRepository) LockSeats(ctx context.Context, seatIDs []uuid.UUID) ([]*entity.Seat, error) {
	if database.TxFromContext(ctx) == nil {
		return nil, fmt.Errorf("lock seats: no active transaction")
	}

	// ORDER BY id fixes the global lock-acquisition order.
	query := `
		SELECT id, venue_id, seat_number, status, created_at, updated_at
		FROM seats
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`

	rows, err := r.q(ctx).Query(ctx, query, seatIDs)
	if err != nil {
		r.log.Error("Failed to lock seats",
			zap.Error(err),
			zap.Int("seat_count", len(seatIDs)),
		)
		return nil, fmt.Errorf("lock seats: %w", err)
	}
	defer rows.Close()

	seats, err := scanSeats(rows)
	if err != nil {
		return nil, err
	}

	if len(seats) != len(seatIDs) {
		// Unknown id in the set aborts the whole request, valid subset included.
		return nil, entity.ErrSeatNotFound
	}

	return seats, nil
}

func (r *seatRepository) MarkBooked(ctx context.Context, seatIDs []uuid.UUID) error {
	query := `
		UPDATE seats
		SET status = $2, updated_at = NOW()
		WHERE id = ANY($1) AND status = $3
	`

	ct, err := r.q(ctx).Exec(ctx, query, seatIDs, entity.SeatStatusBooked, entity.SeatStatusAvailable)
	if err != nil {
		r.log.Error("Failed to mark seats booked",
			zap.Error(err),
			zap.Int("seat_count", len(seatIDs)),
		)
		return fmt.Errorf("mark seats booked: %w", err)
	}

	if ct.RowsAffected() != int64(len(seatIDs)) {
		return fmt.Errorf("mark seats booked: updated %d of %d seats", ct.RowsAffected(), len(seatIDs))
	}

	return nil
}

func scanSeats(rows pgx.Rows) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.VenueID,
			&seat.SeatNumber,
			&seat.Status,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read seat rows: %w", err)
	}
	return seats, nil
}
