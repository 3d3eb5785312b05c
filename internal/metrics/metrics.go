package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the slice of metrics the service layer reports into.
type Recorder interface {
	RecordSubmission(outcome string)
	RecordGateDenial(reason string)
	RecordScorerLatency(provider string, duration time.Duration)
}

const (
	OutcomeCompleted = "completed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

type Collector struct {
	submissions   *prometheus.CounterVec
	gateDenials   *prometheus.CounterVec
	scorerLatency *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aiwritecheck_submissions_total",
			Help: "Submissions by terminal outcome",
		}, []string{"outcome"}),
		gateDenials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aiwritecheck_gate_denials_total",
			Help: "Admission gate denials by reason",
		}, []string{"reason"}),
		scorerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aiwritecheck_scorer_latency_seconds",
			Help:    "Scorer call latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}

	reg.MustRegister(c.submissions, c.gateDenials, c.scorerLatency)
	return c
}

func (c *Collector) RecordSubmission(outcome string) {
	c.submissions.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordGateDenial(reason string) {
	c.gateDenials.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordScorerLatency(provider string, duration time.Duration) {
	c.scorerLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape endpoint for the registry.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
