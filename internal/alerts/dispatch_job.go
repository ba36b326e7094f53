package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/lucasferrer/freshkeep-backend/internal/settings"
	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	"github.com/lucasferrer/freshkeep-backend/pkg/metrics"
)

const defaultDispatchBatch = 100

// Publisher hands a dispatched alert to the notification topic.
type Publisher interface {
	Publish(ctx context.Context, data []byte, attrs map[string]string) error
}

// NotificationGate reports whether alert delivery is currently enabled.
type NotificationGate interface {
	Notifications(ctx context.Context) settings.NotificationSettings
}

// DispatchJobParams configure the dispatch job.
type DispatchJobParams struct {
	Logger     *logger.Logger
	Repository Repository
	Publisher  Publisher
	Gate       NotificationGate
	Metrics    *metrics.JobMetrics
	BatchSize  int
}

type dispatchJob struct {
	logg    *logger.Logger
	repo    Repository
	pub     Publisher
	gate    NotificationGate
	metrics *metrics.JobMetrics
	batch   int
	now     func() time.Time
}

// dispatchPayload is the wire shape handed to the notification topic.
type dispatchPayload struct {
	Key    string    `json:"key"`
	ItemID uuid.UUID `json:"itemId"`
	Offset string    `json:"offset"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fireAt"`
}

// NewDispatchJob builds the job that publishes due alerts.
func NewDispatchJob(params DispatchJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("alerts repository required")
	}
	if params.Publisher == nil {
		return nil, fmt.Errorf("publisher required")
	}
	if params.Gate == nil {
		return nil, fmt.Errorf("notification gate required")
	}
	batch := params.BatchSize
	if batch <= 0 {
		batch = defaultDispatchBatch
	}
	return &dispatchJob{
		logg:    params.Logger,
		repo:    params.Repository,
		pub:     params.Publisher,
		gate:    params.Gate,
		metrics: params.Metrics,
		batch:   batch,
		now:     time.Now,
	}, nil
}

func (j *dispatchJob) Name() string { return "alert-dispatch" }

func (j *dispatchJob) Run(ctx context.Context) error {
	now := j.now().UTC()

	if !j.gate.Notifications(ctx).Enabled {
		j.logg.Info(ctx, "notifications disabled; holding due alerts")
		return j.updatePending(ctx, now)
	}

	due, err := j.repo.ListDue(ctx, now, j.batch)
	if err != nil {
		return fmt.Errorf("list due alerts: %w", err)
	}

	sent := make([]uuid.UUID, 0, len(due))
	for _, alert := range due {
		if err := j.publish(ctx, alert); err != nil {
			// Leave the row unsent so the next cycle retries it.
			alertCtx := j.logg.WithAlertKey(ctx, alert.Key)
			j.logg.Error(alertCtx, "publishing alert", err)
			continue
		}
		sent = append(sent, alert.ID)
		j.metrics.IncDispatched(string(alert.Offset))
	}

	var errs []error
	if len(sent) > 0 {
		if _, err := j.repo.MarkSent(ctx, sent, now); err != nil {
			errs = append(errs, fmt.Errorf("mark alerts sent: %w", err))
		} else {
			logCtx := j.logg.WithFields(ctx, map[string]any{
				"due":        len(due),
				"dispatched": len(sent),
			})
			j.logg.Info(logCtx, "alerts dispatched")
		}
	}

	// Refresh the pending gauge even when the sent update failed.
	if err := j.updatePending(ctx, now); err != nil {
		errs = append(errs, err)
	}
	return multierr.Combine(errs...)
}

func (j *dispatchJob) publish(ctx context.Context, alert models.ScheduledAlert) error {
	payload, err := json.Marshal(dispatchPayload{
		Key:    alert.Key,
		ItemID: alert.ItemID,
		Offset: string(alert.Offset),
		Title:  alert.Title,
		Body:   alert.Body,
		FireAt: alert.FireAt,
	})
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}
	return j.pub.Publish(ctx, payload, map[string]string{"key": alert.Key})
}

func (j *dispatchJob) updatePending(ctx context.Context, now time.Time) error {
	pending, err := j.repo.CountPending(ctx, now)
	if err != nil {
		return fmt.Errorf("count pending alerts: %w", err)
	}
	j.metrics.SetPending(int(pending))
	return nil
}
