package visionkit

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the builder's Prometheus collectors on a private registry,
// so several Apps (as in tests) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	Exports        *prometheus.CounterVec
	ExportDuration prometheus.Histogram
	ImagesAdded    prometheus.Counter
	ImagesSkipped  prometheus.Counter
	ActiveBoards   prometheus.Gauge
	Signups        prometheus.Counter
}

// NewMetrics creates and registers the collectors under namespace.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Board exports by result.",
			},
			[]string{"result"},
		),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Time spent rasterizing and encoding an export.",
			Buckets:   []float64{.1, .25, .5, 1, 2, 5, 10},
		}),
		ImagesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "images_added_total",
			Help:      "Uploaded images added to boards.",
		}),
		ImagesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "images_skipped_total",
			Help:      "Uploaded files skipped as non-images or undecodable.",
		}),
		ActiveBoards: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_boards",
			Help:      "Builder boards currently held in memory.",
		}),
		Signups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resource_signups_total",
			Help:      "Resource pack signups.",
		}),
	}
	m.registry.MustRegister(
		m.Exports, m.ExportDuration, m.ImagesAdded, m.ImagesSkipped, m.ActiveBoards, m.Signups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
