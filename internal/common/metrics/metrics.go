// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_applications_submitted_total",
			Help: "Total number of loan applications processed, by terminal status",
		},
		[]string{"status"},
	)

	StoreOperationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_store_operation_failures_total",
			Help: "Total number of failed application store operations",
		},
		[]string{"operation"},
	)

	EventPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loan_events_publish_failures_total",
			Help: "Total number of loan events that could not be published",
		},
	)
)
