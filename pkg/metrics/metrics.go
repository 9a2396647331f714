package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for monitoring
var (
	RefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coordinator_cache_refreshes_total",
		Help: "The total number of intent cache refreshes by outcome",
	}, []string{"outcome"})

	RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "coordinator_cache_refresh_seconds",
		Help:    "Time taken to refresh the intent cache",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	RefreshReadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coordinator_cache_read_failures_total",
		Help: "Per-id read failures absorbed during cache refreshes",
	})

	CachedIntents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "coordinator_cached_intents",
		Help: "The number of intents currently held in the cache",
	})

	ActionsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coordinator_actions_submitted_total",
		Help: "The total number of submitted ledger actions by kind",
	}, []string{"kind"})

	ActionsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coordinator_actions_completed_total",
		Help: "The total number of completed ledger actions by kind and outcome",
	}, []string{"kind", "outcome"})

	ConfirmationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coordinator_confirmation_seconds",
		Help:    "Time from submission to confirmation for ledger actions",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"kind"})

	ActionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coordinator_action_errors_total",
		Help: "Total number of action errors by kind and error class",
	}, []string{"kind", "error_kind"})
)
