// Package main implements the entry point for the todo server, a
// server-rendered to-do list backed by a single database table.
package main

import (
	"context"
	"log"
)

// main initializes configuration, sets up logging, opens the connection pool,
// ensures the schema, injects dependencies, and serves HTTP until interrupted.
func main() {
	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server stopped with error: %v", err)
	}
}
