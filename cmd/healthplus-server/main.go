package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthplus/healthplus/internal/config"
	"github.com/healthplus/healthplus/internal/domain/appointment"
	"github.com/healthplus/healthplus/internal/domain/doctor"
	"github.com/healthplus/healthplus/internal/domain/patient"
	"github.com/healthplus/healthplus/internal/domain/prescription"
	"github.com/healthplus/healthplus/internal/domain/review"
	"github.com/healthplus/healthplus/internal/model"
	"github.com/healthplus/healthplus/internal/platform/apperr"
	"github.com/healthplus/healthplus/internal/platform/db"
	"github.com/healthplus/healthplus/internal/platform/middleware"
	"github.com/healthplus/healthplus/internal/platform/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthplus-server",
		Short: "HealthPlus appointment booking API server",
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
		Short: "Write the seed dataset to the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			st, cleanup, err := newStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.Save(ctx, store.SeedDocument()); err != nil {
				return fmt.Errorf("seed store: %w", err)
			}
			fmt.Println("Seed data written.")
			return nil
		},
	}
}

// newStore builds the configured store backend. The returned cleanup closes
// the Postgres pool when one was opened; for the file backend it is a no-op.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		pg := store.NewPGStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return pg, pool.Close, nil
	default:
		return store.NewFileStore(cfg.StorePath), func() {}, nil
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	st, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer cleanup()
	logger.Info().Str("driver", cfg.StoreDriver).Msg("store ready")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = apperr.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Domain routes
	api := e.Group("")
	doctor.NewHandler(doctor.NewService(st)).RegisterRoutes(api)
	patient.NewHandler(patient.NewService(st)).RegisterRoutes(api)
	appointment.NewHandler(appointment.NewService(st)).RegisterRoutes(api)
	prescription.NewHandler(prescription.NewService(st)).RegisterRoutes(api)
	review.NewHandler(review.NewService(st)).RegisterRoutes(api)

	// Diagnostics: full store dump, record counts, and a liveness probe.
	e.GET("/", func(c echo.Context) error {
		doc, err := st.Load(c.Request().Context())
		if err != nil {
			return apperr.Wrap(apperr.Storage, "Failed to read store", err)
		}
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/debug", func(c echo.Context) error {
		doc, err := st.Load(c.Request().Context())
		if err != nil {
			return apperr.Wrap(apperr.Storage, "Failed to read store", err)
		}
		return c.JSON(http.StatusOK, debugPayload(doc, cfg.Env))
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

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
	logger.Info().Msg("server stopped")
	return nil
}

func debugPayload(doc *model.Document, env string) map[string]any {
	return map[string]any{
		"status":      "ok",
		"message":     "Debug endpoint",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": env,
		"database": map[string]int{
			"doctors":       len(doc.Doctors),
			"patients":      len(doc.Patients),
			"appointments":  len(doc.Appointments),
			"prescriptions": len(doc.Prescriptions),
			"reviews":       len(doc.Reviews),
		},
	}
}
