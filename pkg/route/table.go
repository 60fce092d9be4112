package route

import (
	"sort"

	"github.com/navstack-dev/navstack/internal/errors"
)

// Table is an immutable, specificity-sorted sequence of templates.
// It is built once by Normalize and read-only afterwards, so it may be
// shared freely between goroutines.
type Table struct {
	templates []*Template
	byName    map[string]*Template
}

// Normalize builds a sorted table from raw definitions. The input
// slice is not modified. Empty or nil input yields an empty table.
//
// Definitions are validated eagerly: an empty or duplicate name fails
// normalization with a configuration error rather than producing a
// table whose match order is undefined.
func Normalize(defs []Definition) (*Table, error) {
	t := &Table{byName: make(map[string]*Template, len(defs))}
	if len(defs) == 0 {
		return t, nil
	}

	t.templates = make([]*Template, 0, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, errors.New(errors.CodeEmptyRouteName).
				WithDetail("every route definition needs a non-empty name").
				WithSuggestionf("name the route at index %d", i)
		}
		if _, dup := t.byName[def.Name]; dup {
			return nil, errors.New(errors.CodeDuplicateRouteName).
				WithDetail("route names must be unique within a table; " +
					"duplicate names make the match order undefined").
				WithSuggestionf("rename or remove the second %q route", def.Name)
		}
		tmpl := newTemplate(def)
		t.templates = append(t.templates, tmpl)
		t.byName[def.Name] = tmpl
	}

	// Stable: templates that compare equal keep declaration order.
	sort.SliceStable(t.templates, func(i, j int) bool {
		return moreSpecific(t.templates[i], t.templates[j])
	})
	return t, nil
}

// Len returns the number of templates in the table.
func (t *Table) Len() int { return len(t.templates) }

// At returns the template at position i in specificity order.
func (t *Table) At(i int) *Template { return t.templates[i] }

// ByName looks up a template by route name.
func (t *Table) ByName(name string) (*Template, bool) {
	tmpl, ok := t.byName[name]
	return tmpl, ok
}

// ByView returns the first template in table order whose view token is
// identical to ref. NoView never matches.
func (t *Table) ByView(ref ViewRef) (*Template, bool) {
	if !ref.IsValid() {
		return nil, false
	}
	for _, tmpl := range t.templates {
		if tmpl.view == ref {
			return tmpl, true
		}
	}
	return nil, false
}

// Templates returns the sorted templates. Callers must not modify the
// returned slice.
func (t *Table) Templates() []*Template { return t.templates }
