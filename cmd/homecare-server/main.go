package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nursemed/homecare/internal/domain/admin"
	"github.com/nursemed/homecare/internal/domain/contact"
	"github.com/nursemed/homecare/internal/domain/identity"
	"github.com/nursemed/homecare/internal/domain/incident"
	"github.com/nursemed/homecare/internal/domain/intervention"
	"github.com/nursemed/homecare/internal/domain/patient"
	"github.com/nursemed/homecare/internal/domain/report"
	"github.com/nursemed/homecare/internal/domain/visit"
	"github.com/nursemed/homecare/internal/config"
	"github.com/nursemed/homecare/internal/platform/auth"
	"github.com/nursemed/homecare/internal/platform/db"
	"github.com/nursemed/homecare/internal/platform/middleware"
	"github.com/nursemed/homecare/internal/platform/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "homecare-server",
		Short: "Home-care nursing clinical record API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty database with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client, database, err := db.Connect(ctx, cfg.MongoURL, cfg.DBName)
			if err != nil {
				return err
			}
			defer client.Disconnect(context.Background())

			seeder := seed.New(
				identity.NewRepoMongo(database),
				admin.NewOrganizationRepoMongo(database),
				patient.NewRepoMongo(database),
			)
			result, err := seeder.Run(ctx)
			if err != nil {
				return err
			}
			logger.Info().Str("status", result.Status).Msg(result.Message)
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, database, err := db.Connect(ctx, cfg.MongoURL, cfg.DBName)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	logger.Info().Str("db", cfg.DBName).Msg("connected to database")

	// Repositories
	nurseRepo := identity.NewRepoMongo(database)
	patientRepo := patient.NewRepoMongo(database)
	visitRepo := visit.NewRepoMongo(database)
	contactRepo := contact.NewRepoMongo(database)
	interventionRepo := intervention.NewRepoMongo(database)
	orgRepo := admin.NewOrganizationRepoMongo(database)
	programRepo := admin.NewDayProgramRepoMongo(database)
	incidentRepo := incident.NewRepoMongo(database)

	// Services. The patient directory adapters close the loop between the
	// patient collection and the record domains without import cycles.
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	identitySvc := identity.NewService(nurseRepo, tokens)

	directory := patient.NewDirectory(patientRepo)
	visitSvc := visit.NewService(visitRepo, directory)
	contactSvc := contact.NewService(contactRepo, patient.NewContactDirectory(patientRepo))
	interventionSvc := intervention.NewService(interventionRepo, patient.NewInterventionDirectory(patientRepo))
	patientSvc := patient.NewService(patientRepo, visitRepo, contactRepo,
		visitRepo, contactRepo, interventionRepo)
	adminSvc := admin.NewService(orgRepo, programRepo)
	incidentSvc := incident.NewService(incidentRepo)
	reportSvc := report.NewService(visitRepo, directory)

	seeder := seed.New(nurseRepo, orgRepo, patientRepo)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check, kept at the root for orchestrator probes.
	e.GET("/health", db.HealthHandler(client))

	// Public API: register, login, and the one-shot demo data endpoint.
	api := e.Group("/api")
	identityHandler := identity.NewHandler(identitySvc)
	identityHandler.RegisterPublicRoutes(api)
	api.GET("/setup-demo-data", func(c echo.Context) error {
		result, err := seeder.Run(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, result)
	})
	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Home Care API",
			"status":  "healthy",
		})
	})

	// Authenticated API
	authed := api.Group("", auth.Middleware(identitySvc))
	identityHandler.RegisterRoutes(authed)
	patient.NewHandler(patientSvc).RegisterRoutes(authed)
	visit.NewHandler(visitSvc).RegisterRoutes(authed)
	contact.NewHandler(contactSvc).RegisterRoutes(authed)
	intervention.NewHandler(interventionSvc).RegisterRoutes(authed)
	admin.NewHandler(adminSvc).RegisterRoutes(authed)
	incident.NewHandler(incidentSvc).RegisterRoutes(authed)
	report.NewHandler(reportSvc).RegisterRoutes(authed)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("mongo disconnect failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
