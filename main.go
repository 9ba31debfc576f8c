// main.go
package main

import (
	"context"
	"log"
	"time"

	"event-booking/internal/data/repository"
	"event-booking/internal/notify"
	"event-booking/internal/wire"
	"event-booking/migrations"
	"event-booking/pkg/database"
	"event-booking/pkg/utils"

	"event-booking/cmd"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply schema migrations
	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrations.Apply(migrateCtx, db.Pool()); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	// Connect to the notification broker
	broker, err := notify.NewRedisBroker(config.Broker, logger)
	if err != nil {
		logger.Fatal("Failed to connect to notification broker", zap.Error(err))
	}
	defer broker.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, broker, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
