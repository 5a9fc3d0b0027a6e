package ports

import (
	"errors"
	"fmt"
)

// Common infrastructure errors that can occur while reading input sources.
var (
	// ErrResourceNotFound indicates that an input source could not be opened.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrMalformedRecord indicates that a line in a source could not be
	// parsed. Loading stops at the first malformed record.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMissingHeader indicates that a CSV source had no header row.
	ErrMissingHeader = errors.New("missing header row")

	// ErrConfigNotFound indicates that required configuration is missing.
	ErrConfigNotFound = errors.New("configuration not found")
)

// ResourceError represents a failure reading or parsing a named input
// source such as the lexicon or an adjective list.
type ResourceError struct {
	// Resource names the source, usually its file path.
	Resource string

	// Line is the 1-based line number of the failing record, or 0 when
	// the failure is not tied to a line.
	Line int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for ResourceError.
func (e *ResourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("resource error: resource=%s, line=%d, err=%v", e.Resource, e.Line, e.Err)
	}
	return fmt.Sprintf("resource error: resource=%s, err=%v", e.Resource, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResourceError) Unwrap() error { return e.Err }

// NewResourceError creates a new ResourceError with the given details.
func NewResourceError(resource string, line int, err error) *ResourceError {
	return &ResourceError{
		Resource: resource,
		Line:     line,
		Err:      err,
	}
}

// MetricsError represents an error from metrics collection operations.
type MetricsError struct {
	// Metric is the name of the metric that was being collected when the
	// error occurred.
	Metric string

	// Operation is the name of the metrics operation that failed.
	Operation string

	// Err is the underlying error that caused the metrics operation to fail.
	Err error
}

// Error implements the error interface for MetricsError.
func (e *MetricsError) Error() string {
	return fmt.Sprintf("metrics error: operation=%s, metric=%s, err=%v", e.Operation, e.Metric, e.Err)
}

// Unwrap returns the underlying error.
func (e *MetricsError) Unwrap() error { return e.Err }

// NewMetricsError creates a new MetricsError with the given details.
func NewMetricsError(metric, operation string, err error) *MetricsError {
	return &MetricsError{
		Metric:    metric,
		Operation: operation,
		Err:       err,
	}
}

// ConfigError represents an error from configuration operations.
type ConfigError struct {
	// ConfigKey is the configuration key that was involved in the failed
	// operation.
	ConfigKey string

	// Err is the underlying error that caused the configuration operation
	// to fail.
	Err error
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: key=%s, err=%v", e.ConfigKey, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError creates a new ConfigError with the given details.
func NewConfigError(key string, err error) *ConfigError {
	return &ConfigError{
		ConfigKey: key,
		Err:       err,
	}
}
