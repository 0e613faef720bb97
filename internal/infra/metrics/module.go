package metrics

import (
	"offerfeed/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
)

// NewServiceRecorder registers the recorder on the application registry.
func NewServiceRecorder(reg *prometheus.Registry) service.MetricsRecorder {
	return NewRecorder(reg)
}
