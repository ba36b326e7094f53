package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	"github.com/lucasferrer/freshkeep-backend/pkg/metrics"
)

const defaultInterval = time.Minute

// Job represents a scheduled task that runs inside the alert worker.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Registry tracks registered worker jobs.
type Registry struct {
	jobs []Job
}

// NewRegistry builds a registry preloaded with the provided jobs.
func NewRegistry(jobs ...Job) *Registry {
	registry := &Registry{}
	for _, job := range jobs {
		if job == nil {
			continue
		}
		registry.jobs = append(registry.jobs, job)
	}
	return registry
}

// Register adds a job to the registry.
func (r *Registry) Register(job Job) {
	if job == nil {
		return
	}
	r.jobs = append(r.jobs, job)
}

// Jobs returns the registered jobs in the order they were added.
func (r *Registry) Jobs() []Job {
	jobs := make([]Job, len(r.jobs))
	copy(jobs, r.jobs)
	return jobs
}

// Throttle wraps a job so it runs at most once per the given interval even
// though the worker ticks more often. The worker runs jobs from a single
// goroutine, so no locking is needed.
func Throttle(job Job, every time.Duration) Job {
	if job == nil || every <= 0 {
		return job
	}
	return &throttledJob{job: job, every: every, now: time.Now}
}

type throttledJob struct {
	job   Job
	every time.Duration
	now   func() time.Time
	last  time.Time
}

func (t *throttledJob) Name() string { return t.job.Name() }

func (t *throttledJob) Run(ctx context.Context) error {
	if !t.last.IsZero() && t.now().Sub(t.last) < t.every {
		return nil
	}
	t.last = t.now()
	return t.job.Run(ctx)
}

// WorkerParams configure the alert worker.
type WorkerParams struct {
	Logger   *logger.Logger
	Registry *Registry
	Lock     Lock
	Metrics  *metrics.JobMetrics
	Interval time.Duration
}

// Worker executes registered jobs on a fixed cadence, holding a distributed
// lock so only one instance dispatches at a time.
type Worker struct {
	logg     *logger.Logger
	registry *Registry
	lock     Lock
	metrics  *metrics.JobMetrics
	interval time.Duration
}

// NewWorker builds an alert worker.
func NewWorker(params WorkerParams) (*Worker, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Lock == nil {
		return nil, fmt.Errorf("lock required")
	}
	registry := params.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	interval := params.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Worker{
		logg:     params.Logger,
		registry: registry,
		lock:     params.Lock,
		metrics:  params.Metrics,
		interval: interval,
	}, nil
}

// Run starts the worker loop until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := w.runCycle(ctx); err != nil {
		w.logg.Error(ctx, "worker cycle failed", err)
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logg.Info(ctx, "alert worker context canceled")
			return ctx.Err()
		case <-ticker.C:
			if err := w.runCycle(ctx); err != nil {
				w.logg.Error(ctx, "worker cycle failed", err)
			}
		}
	}
}

func (w *Worker) runCycle(ctx context.Context) error {
	locked, err := w.lock.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("lock acquire: %w", err)
	}
	if !locked {
		w.logg.Info(ctx, "another worker instance is running; skipping this cycle")
		return nil
	}
	defer func() {
		if relErr := w.lock.Release(ctx); relErr != nil {
			w.logg.Error(ctx, "failed to release worker lock", relErr)
		}
	}()

	for _, job := range w.registry.Jobs() {
		w.runJob(ctx, job)
	}
	return nil
}

func (w *Worker) runJob(ctx context.Context, job Job) {
	jobCtx := w.logg.WithField(ctx, "job", job.Name())
	start := time.Now()
	err := job.Run(jobCtx)
	duration := time.Since(start)
	w.metrics.ObserveDuration(job.Name(), duration)
	jobCtx = w.logg.WithField(jobCtx, "duration_ms", duration.Milliseconds())
	if err != nil {
		w.logg.Error(jobCtx, "job failed", err)
		w.metrics.IncFailure(job.Name())
		return
	}
	w.metrics.IncSuccess(job.Name())
}
