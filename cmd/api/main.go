package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lucasferrer/freshkeep-backend/api/routes"
	"github.com/lucasferrer/freshkeep-backend/internal/alerts"
	"github.com/lucasferrer/freshkeep-backend/internal/feedback"
	"github.com/lucasferrer/freshkeep-backend/internal/items"
	"github.com/lucasferrer/freshkeep-backend/internal/locale"
	"github.com/lucasferrer/freshkeep-backend/internal/ratings"
	"github.com/lucasferrer/freshkeep-backend/internal/recognition"
	"github.com/lucasferrer/freshkeep-backend/internal/reminders"
	"github.com/lucasferrer/freshkeep-backend/internal/settings"
	"github.com/lucasferrer/freshkeep-backend/internal/speech"
	"github.com/lucasferrer/freshkeep-backend/internal/stats"
	"github.com/lucasferrer/freshkeep-backend/internal/subscriptions"
	"github.com/lucasferrer/freshkeep-backend/pkg/config"
	"github.com/lucasferrer/freshkeep-backend/pkg/db"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	"github.com/lucasferrer/freshkeep-backend/pkg/migrate"
	"github.com/lucasferrer/freshkeep-backend/pkg/pubsub"
	"github.com/lucasferrer/freshkeep-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
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

	itemsRepo := items.NewRepository(dbClient.DB())

	alertsService, err := alerts.NewService(alerts.NewRepository(dbClient.DB()), dbClient, cfg.Alerts.ExpiryDayFireHour, logg)
	requireService(logg, "alerts service", err)

	itemsService, err := items.NewService(itemsRepo, dbClient, alertsService, logg)
	requireService(logg, "items service", err)

	statsService, err := stats.NewService(itemsRepo)
	requireService(logg, "stats service", err)

	settingsService, err := settings.NewService(settings.NewRepository(dbClient.DB()), logg)
	requireService(logg, "settings service", err)

	speechPublisher, err := speech.NewTopicPublisher(pubsubClient.SpeechPublisher())
	requireService(logg, "speech publisher", err)

	speechEngine, err := speech.NewEngine(speechPublisher)
	requireService(logg, "speech engine", err)

	remindersService, err := reminders.NewService(itemsRepo, settingsService, speechEngine, logg, cfg.Reminders.VoiceDelay)
	requireService(logg, "reminders service", err)

	ratingsService, err := ratings.NewService(ratings.NewRepository(dbClient.DB()), itemsRepo)
	requireService(logg, "ratings service", err)

	feedbackService, err := feedback.NewService(feedback.NewRepository(dbClient.DB()))
	requireService(logg, "feedback service", err)

	subscriptionsService, err := subscriptions.NewService(subscriptions.NewRepository(dbClient.DB()))
	requireService(logg, "subscriptions service", err)

	geoClient := locale.NewClient(
		locale.WithBaseURL(cfg.Locale.GeoBaseURL),
		locale.WithTimeout(cfg.Locale.Timeout),
	)
	localeResolver, err := locale.NewResolver(settingsService, geoClient, logg)
	requireService(logg, "locale resolver", err)

	recognitionService, err := recognition.NewService(logg)
	requireService(logg, "recognition service", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			pubsubClient,
			itemsService,
			alertsService,
			statsService,
			remindersService,
			ratingsService,
			feedbackService,
			subscriptionsService,
			settingsService,
			localeResolver,
			recognitionService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func requireService(logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), fmt.Sprintf("failed to create %s", name), err)
	os.Exit(1)
}
