package syncstate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results used as metric labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics counts finished sync operations.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the sync metrics with reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storesync_sync_operations_total",
			Help: "Number of finished sync operations by store, operation and result.",
		}, []string{"store", "operation", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storesync_sync_duration_seconds",
			Help:    "Duration of sync operations from fetch to commit or failure.",
			Buckets: prometheus.DefBuckets,
		}, []string{"store", "operation"}),
	}
}

func (m *Metrics) observe(store, operation, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(store, operation, result).Inc()
	m.duration.WithLabelValues(store, operation).Observe(d.Seconds())
}
