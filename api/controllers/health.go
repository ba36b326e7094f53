package controllers

import (
	"context"
	"net/http"

	"github.com/lucasferrer/freshkeep-backend/api/responses"
	"github.com/lucasferrer/freshkeep-backend/pkg/config"
	"github.com/lucasferrer/freshkeep-backend/pkg/db"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	pkgredis "github.com/lucasferrer/freshkeep-backend/pkg/redis"
)

const envHeader = "X-FreshKeep-Env"

// PubSubPinger exposes the pub/sub health-check surface.
type PubSubPinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings each wired dependency; a nil dependency is reported as
// skipped rather than failing readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP pkgredis.Pinger, pubsubP PubSubPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		run := func(name string, ping func(context.Context) error) {
			if ping == nil {
				checks[name] = "skipped"
				return
			}
			if err := ping(r.Context()); err != nil {
				checks[name] = "down"
				healthy = false
				if logg != nil {
					logg.Error(r.Context(), "readiness check failed: "+name, err)
				}
				return
			}
			checks[name] = "ok"
		}

		if dbP != nil {
			run("database", dbP.Ping)
		} else {
			checks["database"] = "skipped"
		}
		if redisP != nil {
			run("redis", redisP.Ping)
		} else {
			checks["redis"] = "skipped"
		}
		if pubsubP != nil {
			run("pubsub", pubsubP.Ping)
		} else {
			checks["pubsub"] = "skipped"
		}

		if !healthy {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "dependency not ready").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
