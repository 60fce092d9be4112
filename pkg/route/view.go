package route

// ViewRef is an opaque token identifying a view. Refs are interned
// integers handed out by a ViewRegistry, so equality is well-defined
// and cheap. The matcher never inspects a ref beyond comparing it.
type ViewRef int32

// NoView is the zero ref, used where a segment matched no route.
const NoView ViewRef = 0

// IsValid reports whether the ref identifies an interned view.
func (v ViewRef) IsValid() bool { return v != NoView }

// ViewRegistry interns view identifiers to ViewRef tokens. The counter
// is owned by the registry instance; there is no package-level state.
//
// Registries are not safe for concurrent interning. Intern all views
// during startup, before the route table is shared.
type ViewRegistry struct {
	next  ViewRef
	refs  map[string]ViewRef
	names []string
}

// NewViewRegistry creates an empty registry.
func NewViewRegistry() *ViewRegistry {
	return &ViewRegistry{
		next:  1,
		refs:  make(map[string]ViewRef),
		names: []string{""}, // index 0 reserved for NoView
	}
}

// Intern returns the ref for the given view identifier, allocating a
// new one on first use. Interning "" returns NoView.
func (r *ViewRegistry) Intern(name string) ViewRef {
	if name == "" {
		return NoView
	}
	if ref, ok := r.refs[name]; ok {
		return ref
	}
	ref := r.next
	r.next++
	r.refs[name] = ref
	r.names = append(r.names, name)
	return ref
}

// Name returns the identifier interned for ref, or "" for NoView and
// unknown refs.
func (r *ViewRegistry) Name(ref ViewRef) string {
	if ref <= 0 || int(ref) >= len(r.names) {
		return ""
	}
	return r.names[ref]
}

// Lookup returns the ref for a previously interned identifier without
// allocating a new one.
func (r *ViewRegistry) Lookup(name string) (ViewRef, bool) {
	ref, ok := r.refs[name]
	return ref, ok
}

// Len returns the number of interned views.
func (r *ViewRegistry) Len() int { return len(r.refs) }
