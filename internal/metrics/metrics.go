// Package metrics exposes Prometheus instruments for credential validation and configuration swaps.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	validationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "release_config",
			Subsystem: "validator",
			Name:      "validations_total",
			Help:      "Credential validations grouped by provider and verdict.",
		},
		[]string{"provider", "verdict"},
	)
	validationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "release_config",
			Subsystem: "validator",
			Name:      "validation_duration_seconds",
			Help:      "Latency of outbound provider validation calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
	swapsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "release_config",
			Subsystem: "project",
			Name:      "requester_swaps_total",
			Help:      "Requester swap attempts grouped by provider and result.",
		},
		[]string{"provider", "result"},
	)
	linksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "release_config",
			Subsystem: "project",
			Name:      "responder_links_total",
			Help:      "Responder linker creations grouped by result.",
		},
		[]string{"result"},
	)
)

// Register adds all collectors to the default registry once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			validationsTotal,
			validationDuration,
			swapsTotal,
			linksTotal,
		)
	})
}

// ObserveValidation records a finished provider call.
func ObserveValidation(provider, verdict string, took time.Duration) {
	validationsTotal.WithLabelValues(provider, verdict).Inc()
	validationDuration.WithLabelValues(provider).Observe(took.Seconds())
}

// ObserveSwap records the outcome of a requester swap.
func ObserveSwap(provider, result string) {
	swapsTotal.WithLabelValues(provider, result).Inc()
}

// ObserveLink records the outcome of a responder linker creation.
func ObserveLink(result string) {
	linksTotal.WithLabelValues(result).Inc()
}
