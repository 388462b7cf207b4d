package main

import (
	"flag"
	"os"

	"github.com/JasirAhamed786/unifield-be/internal/config"
	"github.com/JasirAhamed786/unifield-be/internal/database"
	"github.com/JasirAhamed786/unifield-be/internal/logger"
	"github.com/JasirAhamed786/unifield-be/internal/seed"
	"github.com/rs/zerolog/log"
)

func main() {
	adminOnly := flag.Bool("admin-only", false, "only create or reset the admin account, keep existing data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel)

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal().Msg("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if *adminOnly {
		if err := seed.EnsureAdmin(db, adminEmail, adminPassword); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure admin account")
		}
		log.Info().Str("email", adminEmail).Msg("Admin account ready")
		return
	}

	if err := seed.Run(db, adminPassword); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}
	if err := seed.EnsureAdmin(db, adminEmail, adminPassword); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure admin account")
	}
	log.Info().Msg("Database seeded")
}
