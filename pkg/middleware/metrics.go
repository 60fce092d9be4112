package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/navstack-dev/navstack/pkg/nav"
	"github.com/navstack-dev/navstack/pkg/route"
)

// MetricsConfig configures the Prometheus matcher instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "navstack").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for parse duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus matcher instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "navstack",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// matcherMetrics holds the Prometheus metrics for the matcher.
type matcherMetrics struct {
	parsesTotal      prometheus.Counter
	parseDuration    prometheus.Histogram
	segmentsTotal    *prometheus.CounterVec
	serializesTotal  prometheus.Counter
	componentMisses  prometheus.Counter
	componentBuilds  prometheus.Counter
}

// initMetrics registers the matcher metrics.
func initMetrics(config MetricsConfig) *matcherMetrics {
	factory := promauto.With(config.Registry)

	return &matcherMetrics{
		parsesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "parses_total",
			Help:        "Total number of paths parsed",
			ConstLabels: config.ConstLabels,
		}),

		parseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "parse_duration_seconds",
			Help:        "Parse duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		segmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "segments_total",
			Help:        "Segments produced by parsing, by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		serializesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "serializes_total",
			Help:        "Total number of paths serialized",
			ConstLabels: config.ConstLabels,
		}),

		componentMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "component_misses_total",
			Help:        "SerializeComponent calls that found no route for the view",
			ConstLabels: config.ConstLabels,
		}),

		componentBuilds: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "component_builds_total",
			Help:        "Segments built on demand for a view",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Segment outcome label values.
const (
	outcomeMatched  = "matched"
	outcomeFallback = "fallback"
)

// InstrumentedMatcher wraps a matcher with Prometheus metrics. It is
// a drop-in replacement for the plain matcher API.
type InstrumentedMatcher struct {
	matcher *nav.Matcher
	metrics *matcherMetrics
}

// Instrument wraps a matcher with Prometheus instrumentation.
//
// Example:
//
//	m := middleware.Instrument(nav.New(table),
//	    middleware.WithNamespace("myapp"),
//	)
func Instrument(matcher *nav.Matcher, opts ...MetricsOption) *InstrumentedMatcher {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &InstrumentedMatcher{
		matcher: matcher,
		metrics: initMetrics(config),
	}
}

// Matcher returns the wrapped matcher.
func (im *InstrumentedMatcher) Matcher() *nav.Matcher { return im.matcher }

// Table returns the wrapped matcher's route table.
func (im *InstrumentedMatcher) Table() *route.Table { return im.matcher.Table() }

// Parse parses a raw path, recording duration and per-segment
// outcomes.
func (im *InstrumentedMatcher) Parse(rawPath string) nav.Path {
	start := time.Now()
	path := im.matcher.Parse(rawPath)
	im.metrics.parseDuration.Observe(time.Since(start).Seconds())
	im.metrics.parsesTotal.Inc()

	for _, seg := range path {
		if seg.Matched() {
			im.metrics.segmentsTotal.WithLabelValues(outcomeMatched).Inc()
		} else {
			im.metrics.segmentsTotal.WithLabelValues(outcomeFallback).Inc()
		}
	}
	return path
}

// Serialize serializes a navigation path, counting the call.
func (im *InstrumentedMatcher) Serialize(path nav.Path) string {
	im.metrics.serializesTotal.Inc()
	return nav.Serialize(path)
}

// SerializeComponent builds a segment for a view, counting builds and
// misses.
func (im *InstrumentedMatcher) SerializeComponent(view route.ViewRef, data map[string]string) (nav.Segment, bool) {
	seg, ok := im.matcher.SerializeComponent(view, data)
	if ok {
		im.metrics.componentBuilds.Inc()
	} else {
		im.metrics.componentMisses.Inc()
	}
	return seg, ok
}

// Href builds the canonical path for a named route, counting the
// build.
func (im *InstrumentedMatcher) Href(name string, data map[string]string) (string, bool) {
	href, ok := im.matcher.Href(name, data)
	if ok {
		im.metrics.componentBuilds.Inc()
	}
	return href, ok
}
