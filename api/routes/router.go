package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucasferrer/freshkeep-backend/api/controllers"
	"github.com/lucasferrer/freshkeep-backend/api/middleware"
	"github.com/lucasferrer/freshkeep-backend/internal/alerts"
	"github.com/lucasferrer/freshkeep-backend/internal/feedback"
	"github.com/lucasferrer/freshkeep-backend/internal/items"
	"github.com/lucasferrer/freshkeep-backend/internal/locale"
	"github.com/lucasferrer/freshkeep-backend/internal/ratings"
	"github.com/lucasferrer/freshkeep-backend/internal/recognition"
	"github.com/lucasferrer/freshkeep-backend/internal/reminders"
	"github.com/lucasferrer/freshkeep-backend/internal/settings"
	"github.com/lucasferrer/freshkeep-backend/internal/stats"
	"github.com/lucasferrer/freshkeep-backend/internal/subscriptions"
	"github.com/lucasferrer/freshkeep-backend/pkg/config"
	"github.com/lucasferrer/freshkeep-backend/pkg/db"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	"github.com/lucasferrer/freshkeep-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	pubsubClient controllers.PubSubPinger,
	itemsService items.Service,
	alertsService alerts.Service,
	statsService stats.Service,
	remindersService reminders.Service,
	ratingsService ratings.Service,
	feedbackService feedback.Service,
	subscriptionsService subscriptions.Service,
	settingsService settings.Service,
	localeResolver locale.Resolver,
	recognitionService recognition.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient, pubsubClient))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/items", func(r chi.Router) {
			r.Post("/", controllers.CreateItem(itemsService, logg))
			r.Get("/", controllers.ListItems(itemsService, logg))
			r.Route("/{itemId}", func(r chi.Router) {
				r.Get("/", controllers.GetItem(itemsService, logg))
				r.Patch("/", controllers.UpdateItem(itemsService, logg))
				r.Delete("/", controllers.DeleteItem(itemsService, logg))
				r.Get("/alerts", controllers.ListItemAlerts(alertsService, logg))
				r.Post("/ratings", controllers.CreateRating(ratingsService, logg))
				r.Get("/ratings", controllers.ListItemRatings(ratingsService, logg))
			})
		})

		r.Get("/stats", controllers.StatsSummary(statsService, logg))
		r.Post("/reminders/trigger", controllers.TriggerReminder(remindersService, logg))

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/stats", controllers.RatingStats(ratingsService, logg))
			r.Patch("/{ratingId}", controllers.UpdateRating(ratingsService, logg))
			r.Delete("/{ratingId}", controllers.DeleteRating(ratingsService, logg))
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Post("/", controllers.SubmitFeedback(feedbackService, logg))
			r.Get("/", controllers.ListFeedback(feedbackService, logg))
			r.Delete("/{feedbackId}", controllers.DeleteFeedback(feedbackService, logg))
		})

		r.Route("/subscription", func(r chi.Router) {
			r.Get("/", controllers.SubscriptionFetch(subscriptionsService, logg))
			r.Put("/", controllers.SubscriptionUpdate(subscriptionsService, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/notifications", controllers.NotificationSettingsFetch(settingsService, logg))
			r.Put("/notifications", controllers.NotificationSettingsUpdate(settingsService, logg))
			r.Get("/voice", controllers.VoiceSettingsFetch(settingsService, logg))
			r.Put("/voice", controllers.VoiceSettingsUpdate(settingsService, logg))
			r.Get("/language", controllers.LanguageFetch(settingsService, logg))
			r.Put("/language", controllers.LanguageUpdate(settingsService, logg))
			r.Get("/language/resolved", controllers.ResolvedLanguage(localeResolver, logg))
		})

		r.Post("/recognition", controllers.Recognize(recognitionService, logg))
	})

	return r
}
