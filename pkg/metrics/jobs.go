package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobMetrics records metadata for the background alert jobs.
type JobMetrics struct {
	duration   *prometheus.HistogramVec
	success    *prometheus.CounterVec
	failure    *prometheus.CounterVec
	dispatched *prometheus.CounterVec
	pending    prometheus.Gauge
}

// NewJobMetrics registers the worker job metrics on the provided registerer.
func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	if reg == nil {
		return &JobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "job_duration_seconds",
		Help:    "Duration of background jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_success",
		Help: "Successful background job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_failure",
		Help: "Failed background job executions.",
	}, []string{"job"})
	dispatched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "alerts_dispatched_total",
		Help: "Expiry alerts published to the notification topic.",
	}, []string{"offset"})
	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "alerts_pending",
		Help: "Scheduled alerts not yet dispatched.",
	})
	reg.MustRegister(duration, success, failure, dispatched, pending)
	return &JobMetrics{
		duration:   duration,
		success:    success,
		failure:    failure,
		dispatched: dispatched,
		pending:    pending,
	}
}

// ObserveDuration records the duration for the named job.
func (j *JobMetrics) ObserveDuration(job string, duration time.Duration) {
	if j == nil || j.duration == nil {
		return
	}
	j.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named job.
func (j *JobMetrics) IncSuccess(job string) {
	if j == nil || j.success == nil {
		return
	}
	j.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure increments the failure counter for the named job.
func (j *JobMetrics) IncFailure(job string) {
	if j == nil || j.failure == nil {
		return
	}
	j.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncDispatched counts an alert published for the given offset label.
func (j *JobMetrics) IncDispatched(offset string) {
	if j == nil || j.dispatched == nil {
		return
	}
	j.dispatched.WithLabelValues(normalizeLabel(offset)).Inc()
}

// SetPending records how many scheduled alerts are waiting to fire.
func (j *JobMetrics) SetPending(count int) {
	if j == nil || j.pending == nil {
		return
	}
	j.pending.Set(float64(count))
}

func normalizeLabel(job string) string {
	if job == "" {
		return "unknown"
	}
	return job
}
