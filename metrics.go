package rvlike

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting evaluation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLogProb is called after each log-probability evaluation.
	RecordLogProb(duration time.Duration, logprob float64)

	// RecordRejection is called when a covariance matrix is rejected as
	// non-positive definite.
	RecordRejection()

	// RecordPredict is called after each GP prediction.
	// points is the number of predicted epochs.
	RecordPredict(points int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLogProb(time.Duration, float64)    {}
func (NoopMetricsCollector) RecordRejection()                        {}
func (NoopMetricsCollector) RecordPredict(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use, so several independent likelihoods may share it.
type BasicMetricsCollector struct {
	LogProbCount      atomic.Int64
	LogProbNonFinite  atomic.Int64
	LogProbTotalNanos atomic.Int64
	Rejections        atomic.Int64
	PredictCount      atomic.Int64
	PredictPoints     atomic.Int64
	PredictErrors     atomic.Int64
	PredictTotalNanos atomic.Int64
}

// RecordLogProb implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLogProb(duration time.Duration, logprob float64) {
	b.LogProbCount.Add(1)
	b.LogProbTotalNanos.Add(duration.Nanoseconds())
	if math.IsInf(logprob, 0) || math.IsNaN(logprob) {
		b.LogProbNonFinite.Add(1)
	}
}

// RecordRejection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRejection() {
	b.Rejections.Add(1)
}

// RecordPredict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredict(points int, duration time.Duration, err error) {
	b.PredictCount.Add(1)
	b.PredictPoints.Add(int64(points))
	b.PredictTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PredictErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LogProbCount:     b.LogProbCount.Load(),
		LogProbNonFinite: b.LogProbNonFinite.Load(),
		LogProbAvgNanos:  avg(b.LogProbTotalNanos.Load(), b.LogProbCount.Load()),
		Rejections:       b.Rejections.Load(),
		PredictCount:     b.PredictCount.Load(),
		PredictPoints:    b.PredictPoints.Load(),
		PredictErrors:    b.PredictErrors.Load(),
		PredictAvgNanos:  avg(b.PredictTotalNanos.Load(), b.PredictCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LogProbCount     int64
	LogProbNonFinite int64
	LogProbAvgNanos  int64
	Rejections       int64
	PredictCount     int64
	PredictPoints    int64
	PredictErrors    int64
	PredictAvgNanos  int64
}
