package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidRequest covers malformed caller input. Not retryable as-is;
	// the caller has to fix the request first.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptySeatSelection means the caller asked to reserve zero seats.
	// Rejected before any transaction is opened.
	ErrEmptySeatSelection = fmt.Errorf("%w: no seats selected", ErrInvalidRequest)

	ErrEventNotFound = errors.New("event not found")
	ErrVenueNotFound = errors.New("venue not found")
	ErrSeatNotFound  = errors.New("seat not found")

	// ErrTransactionFailed covers infrastructure-level aborts: lock wait
	// timeout, serialization failure, storage fault. No partial state
	// survives, so retrying the identical request is safe.
	ErrTransactionFailed = errors.New("reservation transaction failed")
)

// SeatsUnavailableError reports a lost race or an already-booked seat. It
// carries the conflicting seat numbers so clients can re-render selection.
type SeatsUnavailableError struct {
	SeatNumbers []int
}

func (e *SeatsUnavailableError) Error() string {
	nums := make([]string, len(e.SeatNumbers))
	for i, n := range e.SeatNumbers {
		nums[i] = fmt.Sprintf("%d", n)
	}
	return "seats unavailable: " + strings.Join(nums, ", ")
}

func NewSeatsUnavailableError(seatNumbers []int) *SeatsUnavailableError {
	sorted := append([]int(nil), seatNumbers...)
	sort.Ints(sorted)
	return &SeatsUnavailableError{SeatNumbers: sorted}
}
