package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes recorded per audited kind.
const (
	OutcomeResolved = "resolved"
	OutcomeMissing  = "missing"
	OutcomeAbsent   = "absent" // optional kind with no value in the store
)

var (
	resolutionsTotal *prometheus.CounterVec
	auditsTotal      prometheus.Counter

	// Registration guard
	metricsOnce sync.Once
)

// Init registers all Prometheus metrics. Safe to call more than once; only
// the first call registers.
func Init() {
	metricsOnce.Do(func() {
		resolutionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plugbench_secret_resolutions_total",
				Help: "Total number of secret kind resolutions by scope and outcome",
			},
			[]string{"scope", "outcome"},
		)

		auditsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "plugbench_secret_audits_total",
				Help: "Total number of full secret store audits",
			},
		)
	})
}

// RecordResolution records the outcome of resolving one secret kind.
func RecordResolution(scope, outcome string) {
	if resolutionsTotal == nil {
		return
	}
	resolutionsTotal.WithLabelValues(scope, outcome).Inc()
}

// RecordAudit records one full audit pass over the registry.
func RecordAudit() {
	if auditsTotal == nil {
		return
	}
	auditsTotal.Inc()
}
