package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/api"
	"github.com/JasirAhamed786/unifield-be/internal/auth"
	"github.com/JasirAhamed786/unifield-be/internal/config"
	"github.com/JasirAhamed786/unifield-be/internal/database"
	"github.com/JasirAhamed786/unifield-be/internal/logger"
	"github.com/JasirAhamed786/unifield-be/internal/monitoring"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/JasirAhamed786/unifield-be/internal/ticker"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration; this fails hard when JWT_SECRET is absent.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up the ticker hub
	hub := ticker.NewHub()
	go hub.Run()

	// Set up services
	userService := services.NewUserService(db)
	statsService := services.NewStatsService(db)
	guideService := services.NewCropGuideService(db)
	marketService := services.NewMarketService(db)
	schemeService := services.NewSchemeService(db)
	researchService := services.NewResearchService(db)
	policyService := services.NewPolicyService(db)
	forumService := services.NewForumService(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up and run the background content expiry sweeper
	sweeper, err := monitoring.NewExpirySweeper(schemeService, policyService, cfg.SweepSchedule)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid sweep schedule")
	}
	go sweeper.Run()

	// Set up router
	router := api.NewRouter(api.Deps{
		Tokens:         tokens,
		Hub:            hub,
		Users:          userService,
		Stats:          statsService,
		CropGuides:     guideService,
		Market:         marketService,
		Schemes:        schemeService,
		Research:       researchService,
		Policies:       policyService,
		Forum:          forumService,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
