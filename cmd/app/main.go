package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/mkravets/shop-analytics/internal/application/service"
	"github.com/mkravets/shop-analytics/internal/cache"
	"github.com/mkravets/shop-analytics/internal/config"
	"github.com/mkravets/shop-analytics/internal/httpapi"
	"github.com/mkravets/shop-analytics/internal/infrastructure/postgres"
	"github.com/mkravets/shop-analytics/internal/kafka"
	"github.com/mkravets/shop-analytics/internal/observability"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := postgres.Connect(ctx, cfg.DSN(), logger)
	defer pool.Close()

	clock := clockwork.NewRealClock()
	store, err := cache.New(cfg.Cache.TTL, cfg.Cache.Capacity, clock)
	if err != nil {
		logger.Fatal("cache init failed", zap.Error(err))
	}

	metrics := observability.NewInmem(256)

	svc := service.New(
		service.Repositories{
			Orders:   postgres.NewOrderRepo(pool),
			Products: postgres.NewProductRepo(pool),
			Users:    postgres.NewUserRepo(pool),
		},
		store,
		clock,
		logger,
		metrics,
		service.Options{
			RepoTimeout: cfg.RepoTimeout,
			Retry:       cfg.Retry,
		},
	)

	// Without brokers configured the dashboards rely on the TTL alone.
	if len(cfg.Kafka.Brokers) > 0 {
		reader := kafka.NewReader(cfg.Kafka)
		defer reader.Close()
		go kafka.NewConsumer(reader, svc, logger).Start(ctx)
	}

	server := httpapi.New(svc, logger, metrics)
	logger.Info("dashboard analytics listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}
