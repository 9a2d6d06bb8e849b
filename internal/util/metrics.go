package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyses_total",
		Help: "Total number of analysis runs completed",
	})

	AnalysesFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analyses_failed_total",
		Help: "Total number of failed analysis runs",
	}, []string{"reason"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Duration of full pipeline runs",
		Buckets: prometheus.DefBuckets,
	})

	RowsIngestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rows_ingested_total",
		Help: "Total number of order-line rows ingested",
	})

	DatasetRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datasets_rejected_total",
		Help: "Total number of uploads rejected before analysis",
	}, []string{"reason"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
