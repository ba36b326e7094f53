package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lucasferrer/freshkeep-backend/internal/alerts"
	"github.com/lucasferrer/freshkeep-backend/internal/settings"
	"github.com/lucasferrer/freshkeep-backend/pkg/config"
	"github.com/lucasferrer/freshkeep-backend/pkg/db"
	"github.com/lucasferrer/freshkeep-backend/pkg/instance"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	"github.com/lucasferrer/freshkeep-backend/pkg/metrics"
	"github.com/lucasferrer/freshkeep-backend/pkg/migrate"
	"github.com/lucasferrer/freshkeep-backend/pkg/pubsub"
	"github.com/lucasferrer/freshkeep-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "alert-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "alert-worker"

	logg = logger.New(logger.Options{
		ServiceName: "alert-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	pubsubClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap pubsub", err)
		os.Exit(1)
	}
	defer func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing pubsub", err)
		}
	}()

	alertsRepo := alerts.NewRepository(dbClient.DB())

	settingsService, err := settings.NewService(settings.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	alertPublisher, err := alerts.NewTopicPublisher(pubsubClient.AlertPublisher())
	if err != nil {
		logg.Error(context.Background(), "failed to create alert publisher", err)
		os.Exit(1)
	}

	jobMetrics := metrics.NewJobMetrics(prometheus.DefaultRegisterer)

	dispatchJob, err := alerts.NewDispatchJob(alerts.DispatchJobParams{
		Logger:     logg,
		Repository: alertsRepo,
		Publisher:  alertPublisher,
		Gate:       settingsService,
		Metrics:    jobMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create dispatch job", err)
		os.Exit(1)
	}

	retentionJob, err := alerts.NewRetentionJob(alerts.RetentionJobParams{
		Logger:     logg,
		Repository: alertsRepo,
		Retention:  cfg.Alerts.RetentionDays,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create retention job", err)
		os.Exit(1)
	}

	lock, err := alerts.NewRedisLock(redisClient, redisClient.LockKey(lockName(cfg.App.Env)), 0)
	if err != nil {
		logg.Error(context.Background(), "failed to create worker lock", err)
		os.Exit(1)
	}

	registry := alerts.NewRegistry(
		dispatchJob,
		alerts.Throttle(retentionJob, cfg.Worker.CleanupInterval),
	)

	worker, err := alerts.NewWorker(alerts.WorkerParams{
		Logger:   logg,
		Registry: registry,
		Lock:     lock,
		Metrics:  jobMetrics,
		Interval: cfg.Worker.DispatchInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create alert worker", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
		"instance":    instance.GetID(),
	})
	logg.Info(ctx, "starting alert worker")

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "alert worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "alert worker shutting down gracefully")
}

func lockName(env string) string {
	if env == "" {
		env = "local"
	}
	return "alert-worker:" + env
}
