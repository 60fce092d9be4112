// Package server exposes a route table's matcher as a small
// navigation service.
//
// Endpoints:
//
//	GET  /api/parse?path=...   parse a raw path into segments
//	POST /api/serialize        join segment IDs into a canonical path
//	GET  /api/href?name=...    build the path for one named route
//	GET  /api/routes           dump the normalized, sorted table
//	GET  /api/slug?text=...    format text as a URL-safe path part
//	GET  /live                 WebSocket navigation session
//	GET  /metrics              Prometheus metrics
//	GET  /healthz              liveness
//
// The service owns no matching logic; it is a transport shell around
// nav.Matcher with logging and metrics layered on.
package server
