package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"orchestrix/bff/internal/api"
	"orchestrix/bff/internal/auth"
	"orchestrix/bff/internal/config"
	"orchestrix/bff/internal/logging"
	"orchestrix/bff/internal/services"
	"orchestrix/bff/internal/tls"
	"orchestrix/bff/internal/upstream"
)

func main() {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "bff-server",
		Short: "BFF gateway for the Orchestrix workflow orchestration API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	var logger zerolog.Logger
	if cfg.Log.Pretty {
		logger = logging.NewConsole(cfg.Log.Level)
	} else {
		logger = logging.New(cfg.Log.Level)
	}

	logger.Info().
		Str("upstream", cfg.Upstream.URL).
		Str("level", cfg.Log.Level).
		Msg("starting BFF gateway")

	// Upstream client and resource services, constructed once and passed in
	// explicitly.
	client := upstream.NewClient(cfg.Upstream.URL, cfg.Upstream.Timeout)
	handler := api.NewHandler(
		services.NewWorkflowService(client),
		services.NewAlertService(client),
		services.NewAuditService(client),
		logger,
	)

	e := newEcho(cfg, handler, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("address", addr).Bool("tls", cfg.TLS.Enable).Msg("server listening")
		if cfg.TLS.Enable {
			if _, err := os.Stat(cfg.TLS.CertFile); os.IsNotExist(err) && len(cfg.TLS.Hostnames) > 0 {
				if genErr := tls.GenerateSelfSignedCert(cfg.TLS.CertFile, cfg.TLS.KeyFile, cfg.TLS.Hostnames); genErr != nil {
					logger.Error().Err(genErr).Msg("failed to generate self-signed cert")
				}
			}
			serverErrors <- server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
			if err := server.Close(); err != nil {
				logger.Error().Err(err).Msg("server close failed")
			}
		}
		logger.Info().Msg("server stopped")
	}
	return nil
}

func newEcho(cfg *config.Config, handler *api.Handler, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.ErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORS.Origin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit.RPS),
			Burst:     cfg.RateLimit.Burst,
			ExpiresIn: 3 * time.Minute,
		}),
	}))

	metrics := api.NewMetrics(nil)
	e.Use(metrics.Middleware())
	e.GET("/metrics", api.MetricsHandler())

	// Token extraction always runs; the per-route gates decide whether an
	// anonymous request is acceptable.
	e.Use(auth.ExtractToken())

	handler.Register(e)
	return e
}

func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("http request")
			return nil
		},
	})
}
