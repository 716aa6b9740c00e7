package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfe_calculations_total",
			Help: "Total number of calculation requests by outcome",
		},
		[]string{"outcome"},
	)

	MutationsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfe_mutations_applied_total",
			Help: "Total number of mutations processed by name",
		},
		[]string{"mutation"},
	)

	MutationWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfe_mutation_warnings_total",
			Help: "Total number of warning messages by code",
		},
		[]string{"code"},
	)

	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bfe_calculation_duration_seconds",
			Help:    "Duration of a calculation request in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	RejectedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfe_rejected_requests_total",
			Help: "Total number of requests rejected before calculation",
		},
		[]string{"reason"},
	)
)
