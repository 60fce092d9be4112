// Package middleware provides observability wrappers for the matcher:
// Prometheus metrics (Instrument) and OpenTelemetry tracing (Trace).
//
// Both wrappers are drop-in layers over nav.Matcher; the matcher
// itself stays a pure computation with no instrumentation hooks.
package middleware
