package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vanshika/finsight/backend/internal/bootstrap"
	"github.com/vanshika/finsight/backend/internal/config"
	"github.com/vanshika/finsight/backend/internal/currency"
	"github.com/vanshika/finsight/backend/internal/logging"
	"github.com/vanshika/finsight/backend/internal/projection"
	"github.com/vanshika/finsight/backend/internal/server"
	"github.com/vanshika/finsight/backend/internal/service"
	"github.com/vanshika/finsight/backend/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	backend, err := bootstrap.OpenBackend(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to open store", "mode", cfg.StoreMode(), "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			logger.Warn("closing store failed", "error", err)
		}
	}()

	money, err := currency.NewFormatter(cfg.Currency.Code, cfg.Currency.Locale)
	if err != nil {
		logger.Error("invalid currency settings", "error", err)
		os.Exit(1)
	}

	auth := session.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.DemoUserID, cfg.Auth.TokenTTL)
	if auth.DemoMode() {
		logger.Warn("no jwt secret configured, trusting the demo user header", "header", session.DemoHeader)
	}

	apiHandlers := server.NewAPIHandlers(logger,
		service.NewProfileService(backend),
		service.NewDashboardService(backend, projection.NewEngine(), money),
		service.NewFinanceService(backend),
	)

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.StoreHealthService{Store: backend},
		API:              apiHandlers,
		Auth:             auth,
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowCredentials: cfg.HTTP.AllowCredentials,
	})

	srv := server.New(logger, cfg.HTTP, router)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}
