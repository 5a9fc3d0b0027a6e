// Package ports defines the interfaces that form the contract between the
// domain/application layers and the infrastructure layer.
package ports

import (
	"time"

	"github.com/ahrav/go-revsent/internal/domain"
)

// Metric names recorded by the application layer. Collectors route on
// these names; unknown names fall through to a generic operation counter.
const (
	// MetricDocumentsScored counts scored documents. Labels: mode, group.
	MetricDocumentsScored = "documents_scored_total"

	// MetricTokensScored counts scored tokens. Labels: mode, outcome
	// ("matched" or "neutral").
	MetricTokensScored = "tokens_scored_total"

	// MetricRowsSkipped counts input rows that contributed to no group.
	// Labels: reason.
	MetricRowsSkipped = "rows_skipped_total"

	// MetricResourceEntries is the number of entries loaded from a
	// resource. Labels: resource.
	MetricResourceEntries = "resource_entries"

	// MetricResourceFailures counts resources that failed to load fully.
	// Labels: resource.
	MetricResourceFailures = "resource_load_failures_total"

	// MetricGroupAverage is a group's average sentiment. Labels: group.
	MetricGroupAverage = "group_average_sentiment"

	// MetricDocumentSentiment observes document totals. Labels: mode.
	MetricDocumentSentiment = "document_sentiment"
)

// MetricsCollector defines the interface for collecting operational metrics.
// Implementations should integrate with observability platforms like
// Prometheus.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	RecordHistogram(metric string, value float64, labels map[string]string)
}

// ReviewGenerator turns a review template into review text, filling
// adjective slots with words of the requested tone.
type ReviewGenerator interface {
	// Generate renders template and returns the generated review.
	// It fails when a slot cannot be filled, for example because the
	// adjective list for tone is empty.
	Generate(template string, tone domain.Tone) (string, error)
}
