// Package metrics exposes Prometheus collectors for discovery and the offer feed.
package metrics

import (
	"time"

	"offerfeed/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "offerfeed"

// NewRegistry builds the registry served on /metrics, with process and Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Recorder implements service.MetricsRecorder on Prometheus collectors.
type Recorder struct {
	queryDuration    *prometheus.HistogramVec
	queryErrors      *prometheus.CounterVec
	feedDegraded     *prometheus.CounterVec
	identityFailures *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the collectors on reg. A nil registerer yields a no-op recorder.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}

	queryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of ranked discovery and feed queries in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query"})
	queryErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "query_errors_total",
		Help:      "Failed ranked discovery and feed queries.",
	}, []string{"query"})
	feedDegraded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_degraded_total",
		Help:      "Feeds served with an empty subscribed list because that branch failed.",
	}, []string{"reason"})
	identityFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_failures_total",
		Help:      "Request credentials that failed verification.",
	}, []string{"source"})

	reg.MustRegister(queryDuration, queryErrors, feedDegraded, identityFailures)

	return &Recorder{
		queryDuration:    queryDuration,
		queryErrors:      queryErrors,
		feedDegraded:     feedDegraded,
		identityFailures: identityFailures,
	}
}

// ObserveQuery records the duration and, on failure, the error count for the named query.
func (r *Recorder) ObserveQuery(query string, duration time.Duration, err error) {
	if r == nil || r.queryDuration == nil {
		return
	}

	query = normalizeLabel(query)
	r.queryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		r.queryErrors.WithLabelValues(query).Inc()
	}
}

// IncFeedDegraded increments the degraded feed counter.
func (r *Recorder) IncFeedDegraded(reason string) {
	if r == nil || r.feedDegraded == nil {
		return
	}
	r.feedDegraded.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncIdentityFailure increments the identity failure counter.
func (r *Recorder) IncIdentityFailure(source string) {
	if r == nil || r.identityFailures == nil {
		return
	}
	r.identityFailures.WithLabelValues(normalizeLabel(source)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}

	return v
}
