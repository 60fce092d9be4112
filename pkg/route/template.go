package route

import (
	"strings"
)

// Definition is one raw route entry as supplied by configuration.
type Definition struct {
	// Name uniquely identifies the route within a table.
	Name string

	// Path is the path template (e.g., "/users/:id"). When empty, the
	// route name itself is used as the template.
	Path string

	// View is the view token associated with this route.
	View ViewRef
}

// Template is a normalized route pattern.
type Template struct {
	name        string
	parts       []Part
	view        ViewRef
	staticParts int
	dataParts   int
}

// newTemplate splits and classifies a definition's path template.
// A single leading "/" is stripped so that "/users/:id" and "users/:id"
// produce the same parts.
func newTemplate(def Definition) *Template {
	pattern := def.Path
	if pattern == "" {
		pattern = def.Name
	}
	pattern = strings.TrimPrefix(pattern, "/")

	pieces := strings.Split(pattern, "/")
	t := &Template{
		name:  def.Name,
		view:  def.View,
		parts: make([]Part, 0, len(pieces)),
	}

	// The leading-static run ends permanently at the first parameter,
	// even if literal parts follow it.
	countingStatic := true
	for _, piece := range pieces {
		part := parsePart(piece)
		t.parts = append(t.parts, part)
		if part.IsParam() {
			t.dataParts++
			countingStatic = false
		} else if countingStatic {
			t.staticParts++
		}
	}
	return t
}

// Name returns the route name.
func (t *Template) Name() string { return t.name }

// View returns the view token associated with the route.
func (t *Template) View() ViewRef { return t.view }

// Parts returns the template's parts in order. Callers must not
// modify the returned slice.
func (t *Template) Parts() []Part { return t.parts }

// StaticParts returns the number of consecutive literal parts at the
// start of the template.
func (t *Template) StaticParts() int { return t.staticParts }

// DataParts returns the total number of parameter parts anywhere in
// the template.
func (t *Template) DataParts() int { return t.dataParts }

// Pattern reassembles the template as a path pattern string.
func (t *Template) Pattern() string {
	tokens := make([]string, len(t.parts))
	for i, p := range t.parts {
		tokens[i] = p.Token()
	}
	return strings.Join(tokens, "/")
}

// moreSpecific is the strict ordering used to sort a table, most
// specific template first.
func moreSpecific(a, b *Template) bool {
	if len(a.parts) != len(b.parts) {
		return len(a.parts) > len(b.parts)
	}
	if a.staticParts != b.staticParts {
		return a.staticParts > b.staticParts
	}
	return a.dataParts < b.dataParts
}
