package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/storehub/dashboard-system/internal/api"
	"github.com/storehub/dashboard-system/internal/core/service"
	"github.com/storehub/dashboard-system/internal/infrastructure/config"
	"github.com/storehub/dashboard-system/internal/infrastructure/db/memory"
	redisdb "github.com/storehub/dashboard-system/internal/infrastructure/db/redis"
	"github.com/storehub/dashboard-system/pkg/logger"
)

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	// Registry reseeds on every start; only the session snapshot survives.
	registry := memory.NewUserRegistry(memory.SeedUsers())

	seed := cfg.CatalogSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	catalog := memory.NewCatalog(seed)

	sessions := redisdb.NewSessionStore(rdb, logger.For("session_store"))

	authService := service.NewAuthService(registry, sessions, cfg.JWTSecret, service.AuthOptions{
		SimulatedLatency: cfg.SimulatedLatency,
	}, logger.For("auth"))
	catalogService := service.NewCatalogService(catalog, logger.For("catalog"))
	dashboardService := service.NewDashboardService(registry, catalog, logger.For("dashboard"))

	e := api.NewRouter(api.Dependencies{
		Auth:      authService,
		Catalog:   catalogService,
		Dashboard: dashboardService,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	waitForShutdown(log)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func waitForShutdown(log zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")
}
