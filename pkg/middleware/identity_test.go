package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestIdentity(t *testing.T) {
	mw := Identity(zap.NewNop())

	t.Run("missing header", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if called {
			t.Fatal("next handler must not run without a user id")
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-User-ID", "not-a-uuid")

		rec := httptest.NewRecorder()
		mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("valid header reaches handler", func(t *testing.T) {
		userID := uuid.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-User-ID", userID.String())

		var got uuid.UUID
		var ok bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok = utils.GetUserIDFromContext(r.Context())
		})

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !ok || got != userID {
			t.Fatalf("expected user id %s in context, got %s (ok=%v)", userID, got, ok)
		}
	})
}
