// Package nav implements bidirectional matching between browser paths
// and navigation segments.
//
// The matcher provides:
//   - Parse: raw path → ordered navigation segments, one per
//     configured route template
//   - Serialize: navigation segments → canonical path string
//   - SerializeComponent / BuildSegment: one segment on demand from a
//     view token or template plus a data record
//
// # Contract
//
// Parse tries every template in the table, most specific first, each
// one independently scanning start offsets across the URL parts. Every
// template contributes exactly one segment, in table order, so the
// result length always equals the table length — the result reads
// positionally against the table ("segment i is what template i
// matched"), not as a left-to-right decomposition of the URL.
// Downstream consumers depend on that fixed-length property.
//
// No operation returns an error: an unmatched template degrades to a
// pass-through fallback segment, a missing data key stays in the built
// path as a literal ":key" token, and an unknown view yields a
// not-found result. Routing never halts navigation.
//
// # Usage
//
//	table, err := route.Normalize(defs)
//	m := nav.New(table)
//
//	path := m.Parse("/users/42/profile?tab=bio")
//	// path[i].Name, path[i].View, path[i].Data
//
//	canonical := nav.Serialize(path) // "/users/42/profile/..."
package nav
