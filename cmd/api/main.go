package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/boxes360/stalker-bot/internal/config"
	"github.com/boxes360/stalker-bot/internal/handlers"
	"github.com/boxes360/stalker-bot/internal/logger"
	"github.com/boxes360/stalker-bot/internal/middleware"
	"github.com/boxes360/stalker-bot/internal/storage"
	"github.com/boxes360/stalker-bot/pkg/engine"
	"github.com/boxes360/stalker-bot/pkg/game"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Zone Story API",
		"port", cfg.Port,
		"environment", cfg.Environment)

	store, err := storage.NewRedisStore(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to create player store", "error", err)
		os.Exit(1)
	}

	storeCtx, storeCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storeCancel()
	if err := store.WaitForConnection(storeCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	service := game.NewService(store, engine.New(log), log)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	playerHandler := handlers.NewPlayerHandler(service, log)
	mux.Handle("/v1/player/", playerHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
