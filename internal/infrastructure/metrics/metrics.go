package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application-level Prometheus metrics. HTTP-level
// metrics live in the metrics middleware.
type Metrics struct {
	// EntriesCreated counts ledger entries by kind (stock, sale).
	EntriesCreated *prometheus.CounterVec

	// AvailabilityChecks counts availability match outcomes
	// (single_match, ambiguous, unavailable).
	AvailabilityChecks *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickstock_entries_created_total",
				Help: "Total number of ledger entries created by kind",
			},
			[]string{"kind"},
		),
		AvailabilityChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickstock_availability_checks_total",
				Help: "Total availability match outcomes",
			},
			[]string{"outcome"},
		),
	}
}
