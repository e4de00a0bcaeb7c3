package main

import (
	"context"
	"log"
	"time"

	"goppo-soppo/cmd"
	"goppo-soppo/internal/data/repository"
	"goppo-soppo/internal/wire"
	"goppo-soppo/pkg/database"
	"goppo-soppo/pkg/mailer"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/storage"
	"goppo-soppo/pkg/utils"

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

	// Session store in Redis
	sessionTTL := time.Duration(config.Session.ExpiryHours) * time.Hour
	sessions := session.NewRedisStore(config.Redis.Addr, config.Redis.Password, sessionTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sessions.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))

	// Mailer; falls back to log-only delivery when SMTP is not
	// configured.
	mail := mailer.FromConfig(config.Email, logger)

	// Upload storage
	files, err := storage.NewFileStore(config.Upload.Dir, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directories", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, sessions, mail, files, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
