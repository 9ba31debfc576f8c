// internal/wire/wire.go
package wire

import (
	"net/http"

	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/internal/usecase"
	"event-booking/pkg/middleware"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, notifier usecase.Notifier, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, notifier, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireReservation(r, handler.Reservation, logger)
	wireEvent(r, handler.Event)
	wireVenue(r, handler.Venue)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
