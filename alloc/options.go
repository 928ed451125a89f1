package alloc

import (
	"log/slog"
)

type options struct {
	source      Source
	memoryLimit int64
	logger      *slog.Logger
	metrics     MetricsCollector
}

// Option configures a Tracker.
type Option func(*options)

// WithSource sets where memory comes from.
//
// If nil is passed, the Go heap is used.
func WithSource(s Source) Option {
	return func(o *options) {
		o.source = s
	}
}

// WithMemoryLimit caps the bytes that may be live at once.
// Requests beyond the limit fail with ErrLimitExceeded; Destroy returns
// bytes to the limit. A limit <= 0 disables it.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithLogger sets the logger for allocation events.
// Allocations and releases are logged at Debug, recoverable failures at Warn.
//
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithMetrics sets the collector notified of every allocation and destroy.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
