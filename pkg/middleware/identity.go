package middleware

import (
	"net/http"

	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Identity trusts the X-User-ID header set by the upstream auth gateway.
// This service performs no authentication of its own; it only requires a
// well-formed user id for operations that create bookings.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				utils.ResponseUnauthorized(w, "Missing X-User-ID header")
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				logger.Warn("Malformed user id header",
					zap.String("user_id", raw),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid user id")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
