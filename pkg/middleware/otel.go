package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/navstack-dev/navstack/pkg/nav"
	"github.com/navstack-dev/navstack/pkg/route"
)

// Default tracer name for navstack applications.
const defaultTracerName = "navstack"

// OTelConfig configures the OpenTelemetry matcher instrumentation.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "navstack").
	TracerName string

	// IncludeRawPath includes the raw input path in parse spans.
	// Raw paths may contain sensitive values - enabled by default,
	// disable for applications that put secrets in paths.
	IncludeRawPath bool

	// AttributeExtractor extracts custom attributes for each span.
	AttributeExtractor func() []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry matcher instrumentation.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeRawPath enables/disables recording raw paths in spans.
func WithIncludeRawPath(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeRawPath = include
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func() []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:     defaultTracerName,
		IncludeRawPath: true,
	}
}

// TracedMatcher wraps a matcher with OpenTelemetry spans. The tracer
// comes from the global tracer provider; configure that provider in
// main() before serving navigation events.
type TracedMatcher struct {
	matcher *nav.Matcher
	config  OTelConfig
}

// Trace wraps a matcher with OpenTelemetry instrumentation.
//
// Example:
//
//	m := middleware.Trace(nav.New(table),
//	    middleware.WithTracerName("my-app"),
//	)
//	path := m.Parse(ctx, "/users/42")
func Trace(matcher *nav.Matcher, opts ...OTelOption) *TracedMatcher {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return &TracedMatcher{matcher: matcher, config: config}
}

// Matcher returns the wrapped matcher.
func (tm *TracedMatcher) Matcher() *nav.Matcher { return tm.matcher }

// Parse parses a raw path inside a "navstack.parse" span, recording
// the table size and how many segments matched.
func (tm *TracedMatcher) Parse(ctx context.Context, rawPath string) nav.Path {
	attrs := []attribute.KeyValue{
		attribute.Int("navstack.table_size", tm.matcher.Table().Len()),
	}
	if tm.config.IncludeRawPath {
		attrs = append(attrs, attribute.String("navstack.raw_path", rawPath))
	}
	if tm.config.AttributeExtractor != nil {
		attrs = append(attrs, tm.config.AttributeExtractor()...)
	}

	_, span := tm.config.tracer.Start(ctx, "navstack.parse",
		trace.WithAttributes(attrs...))
	defer span.End()

	path := tm.matcher.Parse(rawPath)

	matched := 0
	for _, seg := range path {
		if seg.Matched() {
			matched++
		}
	}
	span.SetAttributes(
		attribute.Int("navstack.segments_matched", matched),
		attribute.Int("navstack.segments_fallback", len(path)-matched),
	)
	return path
}

// Serialize serializes a navigation path inside a
// "navstack.serialize" span.
func (tm *TracedMatcher) Serialize(ctx context.Context, path nav.Path) string {
	_, span := tm.config.tracer.Start(ctx, "navstack.serialize",
		trace.WithAttributes(attribute.Int("navstack.segments", len(path))))
	defer span.End()

	return nav.Serialize(path)
}

// SerializeComponent builds a segment for a view inside a
// "navstack.serialize_component" span.
func (tm *TracedMatcher) SerializeComponent(ctx context.Context, view route.ViewRef, data map[string]string) (nav.Segment, bool) {
	_, span := tm.config.tracer.Start(ctx, "navstack.serialize_component")
	defer span.End()

	seg, ok := tm.matcher.SerializeComponent(view, data)
	span.SetAttributes(attribute.Bool("navstack.found", ok))
	return seg, ok
}
