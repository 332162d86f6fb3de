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

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRateLimited,
			Help: HelpTextHTTPRateLimited,
		},
	)
)

// Storage Metrics
var (
	DBConnectAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDBConnectAttempts,
			Help: HelpTextDBConnectAttempts,
		},
		[]string{LabelResult},
	)

	RepositoryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRepositoryDuration,
			Help:    HelpTextRepositoryDuration,
			Buckets: DBLatencyBuckets,
		},
		[]string{LabelEntity, LabelOperation},
	)

	RepositoryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRepositoryErrors,
			Help: HelpTextRepositoryErrors,
		},
		[]string{LabelEntity, LabelOperation},
	)
)

// Business Metrics
var (
	ServiceRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameServiceRejections,
			Help: HelpTextServiceRejections,
		},
		[]string{LabelEntity, LabelReason},
	)
)
