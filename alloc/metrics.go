package alloc

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    allocBytes prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordAlloc(bytes uint64, err error) {
//	    if err == nil {
//	        p.allocBytes.Add(float64(bytes))
//	    }
//	}
type MetricsCollector interface {
	// RecordAlloc is called after each allocation attempt.
	// bytes is the requested size, err is nil if successful.
	RecordAlloc(bytes uint64, err error)

	// RecordDestroy is called after each destroy.
	RecordDestroy(bytes uint64, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(uint64, error)   {}
func (NoopMetricsCollector) RecordDestroy(uint64, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount    atomic.Int64
	AllocErrors   atomic.Int64
	AllocBytes    atomic.Uint64
	DestroyCount  atomic.Int64
	DestroyErrors atomic.Int64
	DestroyBytes  atomic.Uint64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(bytes uint64, err error) {
	b.AllocCount.Add(1)
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocBytes.Add(bytes)
}

// RecordDestroy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDestroy(bytes uint64, err error) {
	b.DestroyCount.Add(1)
	if err != nil {
		b.DestroyErrors.Add(1)
		return
	}
	b.DestroyBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:    b.AllocCount.Load(),
		AllocErrors:   b.AllocErrors.Load(),
		AllocBytes:    b.AllocBytes.Load(),
		DestroyCount:  b.DestroyCount.Load(),
		DestroyErrors: b.DestroyErrors.Load(),
		DestroyBytes:  b.DestroyBytes.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount    int64
	AllocErrors   int64
	AllocBytes    uint64
	DestroyCount  int64
	DestroyErrors int64
	DestroyBytes  uint64
}
