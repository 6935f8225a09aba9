package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// useCaseDuration measures service call latency.
	// Labels: use_case, outcome (success, error)
	useCaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rollout",
		Subsystem: "service",
		Name:      "use_case_duration_seconds",
		Help:      "Service use case latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"use_case", "outcome"})

	plansApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rollout",
		Subsystem: "plan",
		Name:      "applied_total",
		Help:      "Rollout plans persisted",
	})

	driftWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rollout",
		Subsystem: "plan",
		Name:      "drift_warnings_total",
		Help:      "Persisted plan fields found out of step with a fresh calculation",
	})

	// sessionsGenerated counts sessions by fate.
	// Labels: result (created, conflict, rejected, dry_run)
	sessionsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollout",
		Subsystem: "sessions",
		Name:      "generated_total",
		Help:      "Sessions produced by expansion, by result",
	}, []string{"result"})

	// learnerClassifications counts reconciled snapshots.
	// Labels: classification, severity
	learnerClassifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollout",
		Subsystem: "progress",
		Name:      "classifications_total",
		Help:      "Learner progress snapshots by classification and severity",
	}, []string{"classification", "severity"})

	// staleDataWarnings counts reconciliation anomalies.
	// Labels: code
	staleDataWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollout",
		Subsystem: "progress",
		Name:      "stale_data_warnings_total",
		Help:      "Non-fatal reconciliation anomalies by code",
	}, []string{"code"})
)
