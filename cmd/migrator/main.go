package main

import (
	"flag"
	"shells-ledger/internal/config"
	"shells-ledger/internal/database"
	"shells-ledger/internal/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	down := flag.Int("down", 0, "number of migrations to roll back instead of migrating up")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log.Logger = logger.New(cfg.Log.Pretty, cfg.Log.Level)

	if *down > 0 {
		if err := database.MigrateDown(cfg.Database, *down); err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
		log.Info().Int("steps", *down).Msg("Migrations rolled back")
		return
	}

	version, err := database.MigrateUp(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
	log.Info().Uint("version", version).Msg("Schema is up to date")
}
