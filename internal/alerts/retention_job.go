package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

const defaultRetentionDays = 30

// RetentionJobParams configure the sent-alert cleanup job.
type RetentionJobParams struct {
	Logger     *logger.Logger
	Repository Repository
	Retention  int
}

type retentionJob struct {
	logg      *logger.Logger
	repo      Repository
	retention int
	now       func() time.Time
}

// NewRetentionJob builds the job that removes old dispatched alerts.
func NewRetentionJob(params RetentionJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("alerts repository required")
	}
	retention := params.Retention
	if retention <= 0 {
		retention = defaultRetentionDays
	}
	return &retentionJob{
		logg:      params.Logger,
		repo:      params.Repository,
		retention: retention,
		now:       time.Now,
	}, nil
}

func (j *retentionJob) Name() string { return "alert-retention" }

func (j *retentionJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-time.Duration(j.retention) * 24 * time.Hour)
	deleted, err := j.repo.DeleteSentOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("alert retention: %w", err)
	}
	if deleted > 0 {
		logCtx := j.logg.WithFields(ctx, map[string]any{
			"cutoff":         cutoff,
			"retention_days": j.retention,
			"rows_deleted":   deleted,
		})
		j.logg.Info(logCtx, "alert retention complete")
	}
	return nil
}
