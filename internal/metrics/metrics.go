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

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
	)

	ReasonsUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReasonsUnlocked,
			Help: HelpTextReasonsUnlocked,
		},
	)

	StarsEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStarsEarned,
			Help: HelpTextStarsEarned,
		},
		[]string{LabelSource},
	)

	StarsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStarsSpent,
			Help: HelpTextStarsSpent,
		},
	)

	PrizesClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrizesClaimed,
			Help: HelpTextPrizesClaimed,
		},
	)

	LettersRead = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLettersRead,
			Help: HelpTextLettersRead,
		},
	)
)
