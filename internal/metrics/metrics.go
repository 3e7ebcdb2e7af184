package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tb_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)

	FilterDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tb_filter_duration_seconds",
			Help:    "Time spent filtering the threat dataset",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tb_dataset_records",
			Help: "Threat records in the current dataset",
		},
	)

	DatasetPoints = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tb_dataset_points",
			Help: "Metric samples in the current dataset",
		},
	)

	DatasetAnomalies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tb_dataset_anomalies",
			Help: "Flagged anomalies in the current dataset",
		},
	)

	Regenerations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tb_regenerations_total",
			Help: "Dataset regenerations since start",
		},
	)

	LiveSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tb_live_subscribers",
			Help: "Connected live-feed subscribers",
		},
	)

	SearchesClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tb_searches_classified_total",
			Help: "Search terms recognized as IOC values, by type",
		},
		[]string{"ioc_type"},
	)
)
