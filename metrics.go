package countvec

import (
	"sync/atomic"
	"time"
)

// Operation names passed to MetricsCollector.
const (
	OpSet        = "set"
	OpIncrement  = "increment"
	OpMultiply   = "multiply"
	OpPackDouble = "pack_double"
	OpPackInt    = "pack_int"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the promcollector package).
type MetricsCollector interface {
	// RecordCreate is called after each construction attempt.
	// bytes is the storage footprint, err is nil if successful.
	RecordCreate(bytes int64, err error)

	// RecordClose is called when a vector releases its storage.
	RecordClose(bytes int64)

	// RecordMutation is called after SetRange, IncrementRange and MultiplyRange.
	// elements is the number of slots touched (0 when the range gate failed).
	RecordMutation(op string, elements int, ok bool)

	// RecordPack is called after every pack call.
	RecordPack(op string, elements int, ok bool)

	// RecordWrite is called after a streamed transfer.
	RecordWrite(bytes int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(int64, error)               {}
func (NoopMetricsCollector) RecordClose(int64)                       {}
func (NoopMetricsCollector) RecordMutation(string, int, bool)        {}
func (NoopMetricsCollector) RecordPack(string, int, bool)            {}
func (NoopMetricsCollector) RecordWrite(int64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount      atomic.Int64
	CreateErrors     atomic.Int64
	CloseCount       atomic.Int64
	LiveBytes        atomic.Int64
	MutationCount    atomic.Int64
	MutationRejected atomic.Int64
	MutatedElements  atomic.Int64
	PackCount        atomic.Int64
	PackRejected     atomic.Int64
	PackedElements   atomic.Int64
	WriteCount       atomic.Int64
	WriteErrors      atomic.Int64
	WrittenBytes     atomic.Int64
	WriteTotalNanos  atomic.Int64
}

// RecordCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCreate(bytes int64, err error) {
	b.CreateCount.Add(1)
	if err != nil {
		b.CreateErrors.Add(1)
		return
	}
	b.LiveBytes.Add(bytes)
}

// RecordClose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClose(bytes int64) {
	b.CloseCount.Add(1)
	b.LiveBytes.Add(-bytes)
}

// RecordMutation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMutation(_ string, elements int, ok bool) {
	b.MutationCount.Add(1)
	if !ok {
		b.MutationRejected.Add(1)
		return
	}
	b.MutatedElements.Add(int64(elements))
}

// RecordPack implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPack(_ string, elements int, ok bool) {
	b.PackCount.Add(1)
	if !ok {
		b.PackRejected.Add(1)
		return
	}
	b.PackedElements.Add(int64(elements))
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(bytes int64, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WrittenBytes.Add(bytes)
	b.WriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CreateCount:      b.CreateCount.Load(),
		CreateErrors:     b.CreateErrors.Load(),
		CloseCount:       b.CloseCount.Load(),
		LiveBytes:        b.LiveBytes.Load(),
		MutationCount:    b.MutationCount.Load(),
		MutationRejected: b.MutationRejected.Load(),
		MutatedElements:  b.MutatedElements.Load(),
		PackCount:        b.PackCount.Load(),
		PackRejected:     b.PackRejected.Load(),
		PackedElements:   b.PackedElements.Load(),
		WriteCount:       b.WriteCount.Load(),
		WriteErrors:      b.WriteErrors.Load(),
		WrittenBytes:     b.WrittenBytes.Load(),
		WriteAvgNanos:    b.getAvgWriteNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgWriteNanos() int64 {
	count := b.WriteCount.Load()
	if count == 0 {
		return 0
	}
	return b.WriteTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CreateCount      int64
	CreateErrors     int64
	CloseCount       int64
	LiveBytes        int64
	MutationCount    int64
	MutationRejected int64
	MutatedElements  int64
	PackCount        int64
	PackRejected     int64
	PackedElements   int64
	WriteCount       int64
	WriteErrors      int64
	WrittenBytes     int64
	WriteAvgNanos    int64
}
