package optics

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each Fit. points is the number of input
	// rows, err is nil if the ordering completed.
	RecordFit(points int, duration time.Duration, err error)

	// RecordExtract is called after each successful label extraction.
	RecordExtract(method Method, clusters, noise int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordExtract(Method, int, int)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	FitCount      atomic.Int64
	FitErrors     atomic.Int64
	FitPoints     atomic.Int64
	FitTotalNanos atomic.Int64
	ExtractCount  atomic.Int64
	ClustersFound atomic.Int64
	NoisePoints   atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(points int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
		return
	}
	b.FitPoints.Add(int64(points))
}

// RecordExtract implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExtract(_ Method, clusters, noise int) {
	b.ExtractCount.Add(1)
	b.ClustersFound.Add(int64(clusters))
	b.NoisePoints.Add(int64(noise))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:      b.FitCount.Load(),
		FitErrors:     b.FitErrors.Load(),
		FitPoints:     b.FitPoints.Load(),
		FitAvgNanos:   b.getAvgFitNanos(),
		ExtractCount:  b.ExtractCount.Load(),
		ClustersFound: b.ClustersFound.Load(),
		NoisePoints:   b.NoisePoints.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount      int64
	FitErrors     int64
	FitPoints     int64
	FitAvgNanos   int64
	ExtractCount  int64
	ClustersFound int64
	NoisePoints   int64
}
