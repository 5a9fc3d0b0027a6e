// Package middleware provides cross-cutting concerns for the review scorer.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-revsent/internal/ports"
)

// sentimentBuckets follow the star rating thresholds so the histogram
// doubles as a star distribution.
var sentimentBuckets = []float64{-7, -3, 0, 2, 3, 7}

// PrometheusMetrics implements the MetricsCollector interface using Prometheus.
// It tracks scoring volume, lexicon coverage, group averages and run latency.
type PrometheusMetrics struct {
	documentsScored   *prometheus.CounterVec
	tokensScored      *prometheus.CounterVec
	rowsSkipped       *prometheus.CounterVec
	resourceFailures  *prometheus.CounterVec
	resourceEntries   *prometheus.GaugeVec
	groupAverage      *prometheus.GaugeVec
	documentSentiment *prometheus.HistogramVec
	executionLatency  *prometheus.HistogramVec
	operationCounter  *prometheus.CounterVec
	systemGauges      *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance and registers
// all required metrics with reg. A nil reg registers with the global
// Prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		// Scoring metrics.
		documentsScored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricDocumentsScored,
				Help: "Total number of review documents scored.",
			},
			[]string{"mode", "group"},
		),
		tokensScored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricTokensScored,
				Help: "Total number of tokens scored, by whether the lexicon matched them.",
			},
			[]string{"mode", "outcome"},
		),
		rowsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricRowsSkipped,
				Help: "Total number of input rows that contributed to no group.",
			},
			[]string{"reason"},
		),
		groupAverage: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: ports.MetricGroupAverage,
				Help: "Average sentiment of a group in the last comparison.",
			},
			[]string{"group"},
		),
		documentSentiment: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    ports.MetricDocumentSentiment,
				Help:    "Distribution of document total sentiment.",
				Buckets: sentimentBuckets,
			},
			[]string{"mode"},
		),

		// Resource metrics.
		resourceEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: ports.MetricResourceEntries,
				Help: "Number of entries loaded from a word resource.",
			},
			[]string{"resource"},
		),
		resourceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricResourceFailures,
				Help: "Total number of word resources that failed to load completely.",
			},
			[]string{"resource"},
		),

		// General execution metrics.
		executionLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "revsent_execution_duration_seconds",
				Help:    "Execution time of scorer operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "mode"},
		),
		operationCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revsent_operations_total",
				Help: "Total number of other counted operations.",
			},
			[]string{"operation"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "revsent_system_state",
				Help: "Other gauge values reported by the scorer.",
			},
			[]string{"metric"},
		),
	}
}

// label returns labels[key], or "unknown" when it is missing or empty.
func label(labels map[string]string, key string) string {
	if v := labels[key]; v != "" {
		return v
	}
	return "unknown"
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.executionLatency.WithLabelValues(operation, label(labels, "mode")).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case ports.MetricDocumentsScored:
		pm.documentsScored.WithLabelValues(label(labels, "mode"), label(labels, "group")).Add(value)
	case ports.MetricTokensScored:
		pm.tokensScored.WithLabelValues(label(labels, "mode"), label(labels, "outcome")).Add(value)
	case ports.MetricRowsSkipped:
		pm.rowsSkipped.WithLabelValues(label(labels, "reason")).Add(value)
	case ports.MetricResourceFailures:
		pm.resourceFailures.WithLabelValues(label(labels, "resource")).Add(value)
	default:
		pm.operationCounter.WithLabelValues(metric).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case ports.MetricGroupAverage:
		pm.groupAverage.WithLabelValues(label(labels, "group")).Set(value)
	case ports.MetricResourceEntries:
		pm.resourceEntries.WithLabelValues(label(labels, "resource")).Set(value)
	default:
		pm.systemGauges.WithLabelValues(metric).Set(value)
	}
}

// RecordHistogram implements the MetricsCollector interface by recording
// values in a Prometheus histogram. Only document sentiment has a dedicated
// histogram; other metrics are observed on the latency histogram under
// their own operation name.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	if metric == ports.MetricDocumentSentiment {
		pm.documentSentiment.WithLabelValues(label(labels, "mode")).Observe(value)
		return
	}
	pm.executionLatency.WithLabelValues(metric, label(labels, "mode")).Observe(value)
}

// WriteTextfile writes every metric gathered from g to path in the
// Prometheus text exposition format, for pickup by a node exporter
// textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return ports.NewMetricsError("*", "WriteTextfile", err)
	}
	return nil
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
