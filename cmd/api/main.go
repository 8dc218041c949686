package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catalog-api/internal/config"
	"catalog-api/internal/db"
	"catalog-api/internal/httpserver"
	categoryrepo "catalog-api/internal/repository/category"
	productrepo "catalog-api/internal/repository/product"
	categorysvc "catalog-api/internal/service/category"
	productsvc "catalog-api/internal/service/product"
	"github.com/rs/zerolog"
)

func main() {
	logger := newLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger = newLogger(cfg.Env)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	categoryRepo := categoryrepo.NewPostgres(dbpool)
	categoryService := categorysvc.New(categoryRepo)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Options{
		CORSOrigin:   cfg.CORSOrigin,
		RateLimitMax: cfg.RateLimitMax,
		RateLimitTTL: cfg.RateLimitTTL,
	}, httpserver.Deps{
		ProductSvc:  productService,
		CategorySvc: categoryService,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}

// newLogger writes human-readable output in development and JSON elsewhere.
func newLogger(env string) zerolog.Logger {
	if env == "" || env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
