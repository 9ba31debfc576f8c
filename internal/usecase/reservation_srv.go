package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/database"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationService is the seat reservation engine: it validates a
// requested seat set, locks the contended rows, verifies availability and
// commits an all-or-nothing transition from available to booked.
//
// Error contract of Reserve:
//   - entity.ErrEmptySeatSelection: empty seat set, nothing touched
//   - entity.ErrEventNotFound / entity.ErrSeatNotFound: unknown reference,
//     whole request aborted, nothing mutated
//   - *entity.SeatsUnavailableError: race lost or seat already booked,
//     carries the conflicting seat numbers
//   - entity.ErrTransactionFailed: infrastructure abort (lock timeout,
//     serialization conflict, storage fault); retrying the identical
//     request is safe because no partial state ever commits
type ReservationService interface {
	Reserve(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.BookingResponse, error)
}

type reservationService struct {
	repo        *repository.Repository
	notifier    Notifier
	log         *zap.Logger
	lockTimeout time.Duration
	reviewDelay time.Duration
}

func NewReservationService(repo *repository.Repository, notifier Notifier, config *utils.Config, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:        repo,
		notifier:    notifier,
		log:         log.With(zap.String("service", "reservation")),
		lockTimeout: config.Reservation.LockTimeout,
		reviewDelay: config.Reservation.ReviewPromptDelay,
	}
}

func (s *reservationService) Reserve(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.BookingResponse, error) {
	// Reject before opening a transaction.
	if req == nil || len(req.SeatIDs) == 0 {
		return nil, entity.ErrEmptySeatSelection
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidRequest, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user ID %s", entity.ErrInvalidRequest, userID)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: event ID %s", entity.ErrInvalidRequest, req.EventID)
	}

	seatIDs, err := parseSeatIDs(req.SeatIDs)
	if err != nil {
		return nil, err
	}

	var (
		booking     *entity.Booking
		event       *entity.Event
		seatNumbers []int
	)

	txErr := s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Tx.SetLockTimeout(txCtx, s.lockTimeout); err != nil {
			return err
		}

		event, err = s.repo.Event.FindByID(txCtx, eventID)
		if err != nil {
			return err
		}
		if event == nil {
			return entity.ErrEventNotFound
		}

		// Exclusive row locks, acquired in ascending seat-id order. Held
		// until commit or rollback.
		seats, err := s.repo.Seat.LockSeats(txCtx, seatIDs)
		if err != nil {
			return err
		}

		// Every seat must belong to the event's venue and still be free.
		// Any failure aborts the whole request with nothing mutated.
		var conflicting []int
		seatNumbers = make([]int, 0, len(seats))
		for _, seat := range seats {
			seatNumbers = append(seatNumbers, seat.SeatNumber)
			if seat.VenueID != event.VenueID || seat.Status != entity.SeatStatusAvailable {
				conflicting = append(conflicting, seat.SeatNumber)
			}
		}
		if len(conflicting) > 0 {
			return entity.NewSeatsUnavailableError(conflicting)
		}

		if err := s.repo.Seat.MarkBooked(txCtx, seatIDs); err != nil {
			return err
		}

		now := time.Now()
		booking = &entity.Booking{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			UserID:  userUUID,
			EventID: eventID,
		}
		if err := s.repo.Booking.Create(txCtx, booking); err != nil {
			return err
		}

		bookingSeats := make([]*entity.BookingSeat, len(seats))
		for i, seat := range seats {
			bookingSeats[i] = &entity.BookingSeat{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				BookingID: booking.ID,
				SeatID:    seat.ID,
			}
		}
		return s.repo.BookingSeat.CreateBatch(txCtx, bookingSeats)
	})

	if txErr != nil {
		return nil, s.classifyTxError(txErr, seatNumbers)
	}

	s.log.Info("Booking committed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("event_id", req.EventID),
		zap.Ints("seat_numbers", seatNumbers),
	)

	// Strictly after commit, off the request path. Failures here are
	// logged and dropped; the booking already stands.
	go s.emitBookingEvents(booking, seatNumbers)

	return response.BookingToResponse(booking, event, seatNumbers), nil
}

// classifyTxError lets domain errors through untouched and folds every
// infrastructure-level abort into ErrTransactionFailed.
func (s *reservationService) classifyTxError(err error, seatNumbers []int) error {
	var unavailable *entity.SeatsUnavailableError
	switch {
	case errors.Is(err, entity.ErrEventNotFound),
		errors.Is(err, entity.ErrSeatNotFound),
		errors.As(err, &unavailable):
		return err
	case database.IsUniqueViolation(err):
		// booking_seats.seat_id unique constraint: a committed booking
		// already owns one of the seats. The row locks make this nearly
		// impossible, but the constraint is the last line of defense.
		return entity.NewSeatsUnavailableError(seatNumbers)
	default:
		s.log.Error("Reservation transaction aborted", zap.Error(err))
		return fmt.Errorf("%w: %v", entity.ErrTransactionFailed, err)
	}
}

func (s *reservationService) emitBookingEvents(booking *entity.Booking, seatNumbers []int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	confirmed := Notification{
		Type:        NotificationBookingConfirmed,
		UserID:      booking.UserID,
		BookingID:   booking.ID,
		EventID:     booking.EventID,
		SeatNumbers: seatNumbers,
	}
	if err := s.notifier.Enqueue(ctx, confirmed); err != nil {
		s.log.Warn("Failed to enqueue booking confirmation",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	prompt := Notification{
		Type:         NotificationReviewPrompt,
		UserID:       booking.UserID,
		BookingID:    booking.ID,
		EventID:      booking.EventID,
		DeliverAfter: s.reviewDelay,
	}
	if err := s.notifier.Enqueue(ctx, prompt); err != nil {
		s.log.Warn("Failed to enqueue review prompt",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

// parseSeatIDs parses, dedupes and sorts the requested ids ascending. The
// sort mirrors the ORDER BY in LockSeats so the application and the
// database agree on lock-acquisition order.
func parseSeatIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("%w: seat ID %s", entity.ErrInvalidRequest, r)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids, nil
}
