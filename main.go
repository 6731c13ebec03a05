package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/user/yt-summarizer/agent"
	"github.com/user/yt-summarizer/config"
	"github.com/user/yt-summarizer/handlers"
	"github.com/user/yt-summarizer/logger"
	"github.com/user/yt-summarizer/services/summary"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize analysis engine client
	engine, err := agent.NewHTTPEngine(agent.Config{
		BaseURL:   cfg.Engine.BaseURL,
		APIKey:    cfg.Engine.APIKey,
		ModelName: cfg.Engine.ModelName,
		Timeout:   cfg.Engine.ProcessTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize analysis engine: %v", err)
	}

	// Initialize agent tracker
	tracker := agent.NewTracker()

	// Initialize summary service
	summaryService := summary.NewService(engine, tracker, summary.Config{
		ModelName:      cfg.Engine.ModelName,
		ProcessTimeout: cfg.Engine.ProcessTimeout,
	}, appLogger)

	// Initialize server
	server := handlers.NewServer(cfg,
		handlers.WithLogger(appLogger),
		handlers.WithServices(summaryService),
	)

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			appLogger.WithError(err).Error("Server shutdown error")
		}
	}()

	if cfg.Debug {
		log.Printf("Server starting on http://localhost:%s", cfg.ServerPort)
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
