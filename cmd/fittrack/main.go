package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fittrack/fittrack/internal/api"
	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/database"
	"github.com/fittrack/fittrack/internal/repositories"
	"github.com/fittrack/fittrack/internal/services"
	"github.com/fittrack/fittrack/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting fittrack...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Ensure the schema exists
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Wire repositories and services
	userRepo := repositories.NewUserRepository(db)
	friendRepo := repositories.NewFriendRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)
	goalRepo := repositories.NewGoalRepository(db)

	handler := api.NewHandler(
		services.NewUserService(userRepo),
		services.NewFriendService(friendRepo, userRepo),
		services.NewWorkoutService(workoutRepo),
		services.NewGoalService(goalRepo),
		services.NewLeaderboardService(userRepo, friendRepo, workoutRepo),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: api.SetupRouter(handler),
	}

	go func() {
		logger.Info("HTTP server listening", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
