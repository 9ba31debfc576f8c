package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubReservationService struct {
	resp *response.BookingResponse
	err  error

	gotUserID string
	gotReq    *request.CreateReservationRequest
}

func (s *stubReservationService) Reserve(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.BookingResponse, error) {
	s.gotUserID = userID
	s.gotReq = req
	return s.resp, s.err
}

func reservationRequest(t *testing.T, userID uuid.UUID, body any) *http.Request {
	t.Helper()

	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(buf))
	if userID != uuid.Nil {
		req = req.WithContext(utils.SetUserContext(req.Context(), userID))
	}
	return req
}

func validBody() request.CreateReservationRequest {
	return request.CreateReservationRequest{
		EventID: uuid.New().String(),
		SeatIDs: []string{uuid.New().String()},
	}
}

func TestCreateReservationStatusMapping(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid request", fmt.Errorf("%w: seat ID abc", entity.ErrInvalidRequest), http.StatusBadRequest},
		{"empty selection", entity.ErrEmptySeatSelection, http.StatusBadRequest},
		{"event not found", entity.ErrEventNotFound, http.StatusNotFound},
		{"seat not found", entity.ErrSeatNotFound, http.StatusNotFound},
		{"seats unavailable", entity.NewSeatsUnavailableError([]int{7, 3}), http.StatusConflict},
		{"transaction failed", fmt.Errorf("%w: lock timeout", entity.ErrTransactionFailed), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubReservationService{err: tc.err}
			handler := NewReservationHandler(stub, zap.NewNop())

			rec := httptest.NewRecorder()
			handler.CreateReservation(rec, reservationRequest(t, userID, validBody()))

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestCreateReservationConflictBody(t *testing.T) {
	stub := &stubReservationService{err: entity.NewSeatsUnavailableError([]int{7, 3})}
	handler := NewReservationHandler(stub, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateReservation(rec, reservationRequest(t, uuid.New(), validBody()))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var body struct {
		Status bool `json:"status"`
		Errors struct {
			ConflictingSeats []int `json:"conflicting_seats"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status {
		t.Fatal("conflict response must carry status false")
	}
	// NewSeatsUnavailableError sorts the numbers.
	want := []int{3, 7}
	if len(body.Errors.ConflictingSeats) != 2 ||
		body.Errors.ConflictingSeats[0] != want[0] ||
		body.Errors.ConflictingSeats[1] != want[1] {
		t.Fatalf("expected conflicting seats %v, got %v", want, body.Errors.ConflictingSeats)
	}
}

func TestCreateReservationSuccess(t *testing.T) {
	userID := uuid.New()
	stub := &stubReservationService{
		resp: &response.BookingResponse{
			ID:          uuid.New().String(),
			UserID:      userID.String(),
			SeatNumbers: []int{1, 2},
		},
	}
	handler := NewReservationHandler(stub, zap.NewNop())

	body := validBody()
	rec := httptest.NewRecorder()
	handler.CreateReservation(rec, reservationRequest(t, userID, body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.gotUserID != userID.String() {
		t.Fatalf("expected user id %s passed through, got %s", userID, stub.gotUserID)
	}
	if stub.gotReq == nil || stub.gotReq.EventID != body.EventID {
		t.Fatalf("request not passed through: %+v", stub.gotReq)
	}
}

func TestCreateReservationRejectsBadInput(t *testing.T) {
	t.Run("no identity", func(t *testing.T) {
		stub := &stubReservationService{}
		handler := NewReservationHandler(stub, zap.NewNop())

		rec := httptest.NewRecorder()
		handler.CreateReservation(rec, reservationRequest(t, uuid.Nil, validBody()))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if stub.gotReq != nil {
			t.Fatal("service must not be called without identity")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		handler := NewReservationHandler(&stubReservationService{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader([]byte("{")))
		req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New()))

		rec := httptest.NewRecorder()
		handler.CreateReservation(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("empty seat list fails validation", func(t *testing.T) {
		stub := &stubReservationService{}
		handler := NewReservationHandler(stub, zap.NewNop())

		rec := httptest.NewRecorder()
		handler.CreateReservation(rec, reservationRequest(t, uuid.New(), request.CreateReservationRequest{
			EventID: uuid.New().String(),
			SeatIDs: []string{},
		}))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if stub.gotReq != nil {
			t.Fatal("service must not be called for invalid payloads")
		}
	})
}
