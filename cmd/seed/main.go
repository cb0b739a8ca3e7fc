package main

import (
	"os"

	"github.com/oggyb/radar-match/internal/config"
	"github.com/oggyb/radar-match/internal/db"
	"github.com/oggyb/radar-match/internal/logger"
)

func main() {
	// Load configuration
	cfg := config.New()

	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	err = db.SeedDemoData(database, log, db.SeedOptions{
		CenterLat:  cfg.Seed.CenterLat,
		CenterLng:  cfg.Seed.CenterLng,
		Users:      cfg.Seed.Users,
		Activities: cfg.Seed.Activities,
	})
	if err != nil {
		log.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	log.Info("seeding completed")
}
