package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	BattlesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesResolved,
			Help: HelpTextBattlesResolved,
		},
		[]string{LabelTier, LabelOutcome},
	)

	RaidAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRaidAttempts,
			Help: HelpTextRaidAttempts,
		},
	)

	RaidBossesDefeated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRaidBossesDefeated,
			Help: HelpTextRaidBossesDefeated,
		},
	)

	AttemptsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAttemptsRejected,
			Help: HelpTextAttemptsRejected,
		},
	)

	XPGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPGranted,
			Help: HelpTextXPGranted,
		},
	)

	GoldGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldGranted,
			Help: HelpTextGoldGranted,
		},
	)
)
