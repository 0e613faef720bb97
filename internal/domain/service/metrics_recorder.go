package service

import "time"

// MetricsRecorder records discovery and feed health signals.
type MetricsRecorder interface {
	// ObserveQuery records the latency and outcome of a ranked query.
	ObserveQuery(query string, duration time.Duration, err error)

	// IncFeedDegraded counts feeds served without their subscribed list.
	IncFeedDegraded(reason string)

	// IncIdentityFailure counts credentials that failed verification.
	IncIdentityFailure(source string)
}
