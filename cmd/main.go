package main

import (
	"log"

	"github.com/samamo-gana/FitTracker/config"
	"github.com/samamo-gana/FitTracker/routes"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	r := routes.SetupRouter(cfg, db, logger)
	logger.Infof("fittracker listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
