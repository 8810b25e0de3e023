package optics

import (
	"math"
	"runtime"

	"github.com/hupe1980/optics/distance"
)

// DefaultMinSamples is the neighbourhood size used when none is configured.
const DefaultMinSamples = 5

type options struct {
	minSamples int
	maxEps     float64
	metric     distance.Metric
	workers    int
	logger     *Logger
	metrics    MetricsCollector
}

func defaultOptions() options {
	return options{
		minSamples: DefaultMinSamples,
		maxEps:     math.Inf(1),
		metric:     distance.MetricEuclidean,
		workers:    runtime.GOMAXPROCS(0),
		logger:     NoopLogger(),
		metrics:    NoopMetricsCollector{},
	}
}

// Option configures Fit and Cluster.
type Option func(*options)

// WithMinSamples sets the number of points (including the point itself)
// a neighbourhood must hold for the point to be a core point.
func WithMinSamples(n int) Option {
	return func(o *options) {
		o.minSamples = n
	}
}

// WithMaxEps bounds the neighbourhood radius considered while ordering.
// Core distances beyond it are treated as infinite. The default is +Inf,
// which considers every pair of points.
func WithMaxEps(eps float64) Option {
	return func(o *options) {
		o.maxEps = eps
	}
}

// WithMetric selects the point distance. Defaults to distance.MetricEuclidean.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithWorkers bounds the goroutines used for the core distance pass.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are
// discarded.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
