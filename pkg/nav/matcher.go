package nav

import (
	"strings"

	"github.com/navstack-dev/navstack/pkg/route"
	"github.com/navstack-dev/navstack/pkg/routepath"
)

// Matcher parses raw browser paths into navigation paths and builds
// segments for outbound navigation. It reads a normalized table and
// never mutates it, so one matcher can serve every navigation event.
type Matcher struct {
	table *route.Table
}

// New creates a matcher over a normalized route table.
func New(table *route.Table) *Matcher {
	return &Matcher{table: table}
}

// Table returns the route table the matcher reads.
func (m *Matcher) Table() *route.Table { return m.table }

// Parse converts a raw browser path into a navigation path. The input
// is split into URL parts (one leading "/" stripped, query and
// fragment discarded), then every template in the table is tried
// independently, most specific first. Each template contributes
// exactly one segment, in table order.
func (m *Matcher) Parse(rawPath string) Path {
	urlParts := routepath.Split(rawPath)
	path := make(Path, 0, m.table.Len())
	for _, tmpl := range m.table.Templates() {
		path = append(path, matchTemplate(tmpl, urlParts))
	}
	return path
}

// matchTemplate scans candidate start offsets left to right and
// returns a segment for the first offset where every template part
// lines up with a present URL part. When no offset succeeds the
// template degrades to a fallback segment carrying the URL part at
// the final offset the scan examined.
func matchTemplate(tmpl *route.Template, urlParts []string) Segment {
	for offset := 0; offset < len(urlParts); offset++ {
		if matchAt(tmpl.Parts(), urlParts, offset) {
			return matchedSegment(tmpl, urlParts[offset:offset+len(tmpl.Parts())])
		}
	}

	var fragment string
	if len(urlParts) > 0 {
		fragment = urlParts[len(urlParts)-1]
	}
	return Segment{ID: fragment, Name: fragment}
}

// matchAt attempts a positional match of the template parts against
// the URL parts starting at offset. Literal parts compare
// byte-for-byte against the raw split; parameter parts match any
// present URL part. Running off the end is a non-match.
func matchAt(parts []route.Part, urlParts []string, offset int) bool {
	if offset+len(parts) > len(urlParts) {
		return false
	}
	for i, p := range parts {
		if !p.IsParam() && urlParts[offset+i] != p.Text() {
			return false
		}
	}
	return true
}

// matchedSegment builds the segment for a successful match. matched
// holds the URL parts the template consumed, aligned with its parts.
func matchedSegment(tmpl *route.Template, matched []string) Segment {
	seg := Segment{
		ID:   strings.Join(matched, "/"),
		Name: tmpl.Name(),
		View: tmpl.View(),
	}
	if seg.ID == "" {
		seg.ID = tmpl.Name()
	}
	if tmpl.DataParts() > 0 {
		seg.Data = make(map[string]string, tmpl.DataParts())
		for i, p := range tmpl.Parts() {
			if p.IsParam() {
				// Decoded exactly once; a %2F becomes "/" here
				// without the part being re-split.
				seg.Data[p.Key()] = routepath.DecodePart(matched[i])
			}
		}
	}
	return seg
}

// Serialize concatenates segment IDs into a canonical path string:
// "/" plus the IDs joined by "/". Pure formatting, no re-validation
// against any table.
func Serialize(path Path) string {
	ids := make([]string, len(path))
	for i, seg := range path {
		ids[i] = seg.ID
	}
	return routepath.Join(ids)
}

// SerializeComponent builds one segment for the first template in the
// table whose view token is identical to view. The second return is
// false when no template carries the view; callers branch on it
// rather than on an error.
func (m *Matcher) SerializeComponent(view route.ViewRef, data map[string]string) (Segment, bool) {
	tmpl, ok := m.table.ByView(view)
	if !ok {
		return Segment{}, false
	}
	return BuildSegment(tmpl, data), true
}

// Href builds the canonical path for a single named route with the
// given data record. The second return is false for unknown names.
func (m *Matcher) Href(name string, data map[string]string) (string, bool) {
	tmpl, ok := m.table.ByName(name)
	if !ok {
		return "", false
	}
	return Serialize(Path{BuildSegment(tmpl, data)}), true
}

// BuildSegment constructs a segment from a template and an optional
// data record. Parameter parts are replaced with the URL-encoded data
// value for their key; parts with no matching key keep their literal
// ":key" token, so a missing value surfaces in the path instead of
// failing the build. The segment carries the original data record,
// not the substituted copy.
func BuildSegment(tmpl *route.Template, data map[string]string) Segment {
	parts := tmpl.Parts()
	tokens := make([]string, len(parts))
	for i, p := range parts {
		if p.IsParam() {
			if value, ok := data[p.Key()]; ok {
				tokens[i] = routepath.EncodePart(value)
				continue
			}
		}
		tokens[i] = p.Token()
	}
	return Segment{
		ID:   strings.Join(tokens, "/"),
		Name: tmpl.Name(),
		View: tmpl.View(),
		Data: data,
	}
}
