package navgraph

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAddNode is called after each node insertion.
	// duration is the total time taken, err is nil if successful.
	RecordAddNode(duration time.Duration, err error)

	// RecordConnect is called after each edge mutation.
	RecordConnect(duration time.Duration, err error)

	// RecordSearch is called after each search operation.
	// k is the number of results requested, duration is the time taken,
	// err is nil if successful.
	RecordSearch(k int, duration time.Duration, err error)

	// RecordBatchSearch is called after each batch search.
	// count is the number of queries attempted, failed is how many of
	// them returned an error.
	RecordBatchSearch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAddNode(time.Duration, error)         {}
func (NoopMetricsCollector) RecordConnect(time.Duration, error)         {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordBatchSearch(int, int, time.Duration)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddNodeCount      atomic.Int64
	AddNodeErrors     atomic.Int64
	ConnectCount      atomic.Int64
	ConnectErrors     atomic.Int64
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchTotalNanos  atomic.Int64
	BatchSearchCount  atomic.Int64
	BatchSearchItems  atomic.Int64
	BatchSearchFailed atomic.Int64
}

// RecordAddNode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAddNode(duration time.Duration, err error) {
	b.AddNodeCount.Add(1)
	if err != nil {
		b.AddNodeErrors.Add(1)
	}
}

// RecordConnect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConnect(duration time.Duration, err error) {
	b.ConnectCount.Add(1)
	if err != nil {
		b.ConnectErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordBatchSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSearch(count, failed int, duration time.Duration) {
	b.BatchSearchCount.Add(1)
	b.BatchSearchItems.Add(int64(count))
	b.BatchSearchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddNodeCount:      b.AddNodeCount.Load(),
		AddNodeErrors:     b.AddNodeErrors.Load(),
		ConnectCount:      b.ConnectCount.Load(),
		ConnectErrors:     b.ConnectErrors.Load(),
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchAvgNanos:    b.getAvgSearchNanos(),
		BatchSearchCount:  b.BatchSearchCount.Load(),
		BatchSearchItems:  b.BatchSearchItems.Load(),
		BatchSearchFailed: b.BatchSearchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddNodeCount      int64
	AddNodeErrors     int64
	ConnectCount      int64
	ConnectErrors     int64
	SearchCount       int64
	SearchErrors      int64
	SearchAvgNanos    int64
	BatchSearchCount  int64
	BatchSearchItems  int64
	BatchSearchFailed int64
}
