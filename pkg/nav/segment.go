package nav

import "github.com/navstack-dev/navstack/pkg/route"

// Segment is one unit of a navigation path: a single matched (or
// fallback) route occurrence, optionally carrying captured data.
// Segments are plain values owned by the caller.
type Segment struct {
	// ID is the canonical string key for the segment: the matched URL
	// parts joined by "/", the route name when that join is empty, or
	// the raw path fragment for fallback segments.
	ID string

	// Name is the route name when matched, else the raw path fragment.
	Name string

	// View is the matched template's view token, or route.NoView for
	// fallback segments.
	View route.ViewRef

	// Data maps parameter keys to decoded values. Nil when the route
	// has no parameter parts or nothing matched.
	Data map[string]string
}

// Matched reports whether the segment carries a view, i.e. was
// produced by a template match rather than as a fallback.
func (s Segment) Matched() bool { return s.View.IsValid() }

// Path is an ordered sequence of segments representing a full
// navigation state. Order corresponds to the route table, most
// specific template first.
type Path []Segment
