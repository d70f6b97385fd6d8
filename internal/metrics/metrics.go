// Package metrics defines Prometheus metrics for flower-finder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flowerfinder"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz probe succeeded, 0 otherwise.",
	})
)

// Flower lookup metrics.
var (
	FlowerLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flower_lookups_total",
		Help:      "Total flower lookups by result (found, not_found, error).",
	}, []string{"result"})
)

// Naver Shopping API metrics.
var (
	NaverAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "naver_api_calls_total",
		Help:      "Total cumulative Naver Shopping API calls.",
	})

	NaverAPIErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "naver_api_errors_total",
		Help:      "Total number of failed Naver Shopping API calls.",
	})

	NaverDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "naver_daily_usage",
		Help:      "Current daily Naver API call count within the rolling 24-hour window.",
	})

	NaverDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "naver_daily_limit_hits_total",
		Help:      "Total number of times the daily Naver API limit was reached.",
	})

	AggregationPages = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_pages",
		Help:      "Upstream pages fetched per shopping aggregation.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10), // 1, 2, ..., 10
	})

	AggregationItems = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_items",
		Help:      "Items returned per successful shopping aggregation.",
		Buckets:   []float64{0, 10, 50, 100, 200, 300, 500, 750, 1000},
	})
)
