package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeriesKey(t *testing.T) {
	assert.Equal(t, "m", SeriesKey("m", nil))
	assert.Equal(t, "m{a=1,b=2}", SeriesKey("m", map[string]string{"b": "2", "a": "1"}))
}

func TestMetricsRecorder(t *testing.T) {
	rec := NewMetricsRecorder()
	labels := map[string]string{"mode": "lines"}

	rec.RecordCounter("docs", 1, labels)
	rec.RecordCounter("docs", 2, labels)
	assert.Equal(t, 3.0, rec.Counter("docs", labels))
	assert.Zero(t, rec.Counter("docs", nil))

	rec.RecordGauge("avg", 1.5, nil)
	rec.RecordGauge("avg", -0.5, nil)
	v, ok := rec.Gauge("avg", nil)
	assert.True(t, ok)
	assert.Equal(t, -0.5, v)

	rec.RecordHistogram("sentiment", 2, labels)
	rec.RecordHistogram("sentiment", -1, labels)
	assert.Equal(t, []float64{2, -1}, rec.Observations("sentiment", labels))

	rec.RecordLatency("load", time.Second, nil)
	assert.Equal(t, []time.Duration{time.Second}, rec.Latencies("load", nil))
}
