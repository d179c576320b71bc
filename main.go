// Package main is the entry point for the Survivor Draft API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"survivordraft/src/app/server"
	"survivordraft/src/infra/config"
	"survivordraft/src/infra/db"
	"survivordraft/src/infra/logger"
	"survivordraft/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Bring the schema up to date before opening the pool
	if cfg.Database.Migrate {
		if err := db.Migrate(cfg.Database, logger.WithComponent(log, "migrate")); err != nil {
			return err
		}
	}

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize repositories
	draftRepo := repo.NewPostgresRepository(pg, logger.WithComponent(log, "repo"))

	// Create and run HTTP server
	srv := server.New(cfg, log, draftRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
