// Package route normalizes raw route definitions into an immutable,
// specificity-sorted table.
//
// A route definition supplies a name, an optional path template, and a
// view token. Normalization splits the template into tagged parts
// (literal or parameter), derives the specificity counters, validates
// the definition list, and sorts the result so that more specific
// templates are tried first:
//
//	routes, err := route.Normalize([]route.Definition{
//	    {Name: "users/settings", View: settingsView},
//	    {Name: "users/:id", View: userView},
//	})
//
// The returned Table is read-only. Matching code iterates it in order
// and never mutates it, so a single table can be shared for the
// lifetime of the application.
//
// # Specificity
//
// Templates are ordered by a stable descending comparison:
//
//  1. More total parts first.
//  2. Then more leading literal parts.
//  3. Then fewer parameter parts.
//  4. Ties keep their declaration order.
//
// Longer, more literal templates must be tried before shorter or
// parametrized ones so that a generic template cannot greedily consume
// a path prefix a more specific template also matches.
package route
