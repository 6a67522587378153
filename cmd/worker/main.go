package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/vetco-health/vetco-api/internal/repository/postgres"
	"github.com/vetco-health/vetco-api/pkg/logger"
	"github.com/vetco-health/vetco-api/pkg/messaging/redis"
	"github.com/vetco-health/vetco-api/pkg/metrics"
	"github.com/vetco-health/vetco-api/pkg/worker"
)

// workerConfig is the worker's flat environment config; the worker has no
// config file.
type workerConfig struct {
	DatabaseURL         string `envconfig:"DATABASE_URL" required:"true"`
	RedisURL            string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	MetricsPort         int    `envconfig:"METRICS_PORT" default:"9091"`
	BatchSize           int    `envconfig:"BATCH_SIZE" default:"50"`
	PollIntervalSeconds int    `envconfig:"POLL_INTERVAL_SECONDS" default:"5"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	var cfg workerConfig
	if err := envconfig.Process("vetco", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load worker configuration")
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	outboxRepo := postgres.NewOutboxRepository(db)

	processor := worker.NewOutboxProcessor(
		outboxRepo,
		broker,
		worker.OutboxProcessorConfig{
			BatchSize:    cfg.BatchSize,
			PollInterval: time.Duration(cfg.PollIntervalSeconds) * time.Second,
		},
		logger.NewLogger(nil),
		metrics.NewMetrics("vetco", "worker"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go processor.Start(ctx)

	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler: promhttp.Handler(),
	}
	go func() {
		log.Info().Int("port", cfg.MetricsPort).Msg("starting worker metrics endpoint")
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start metrics endpoint")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down worker...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("metrics endpoint forced to shutdown")
	}
}
