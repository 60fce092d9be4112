package nav

import (
	"testing"

	"github.com/navstack-dev/navstack/pkg/route"
)

// testTable builds a small application route table shared by most
// matcher tests.
func testTable(t *testing.T) (*Matcher, *route.ViewRegistry) {
	t.Helper()
	views := route.NewViewRegistry()
	table, err := route.Normalize([]route.Definition{
		{Name: "home", View: views.Intern("HomeView")},
		{Name: "users/settings", View: views.Intern("SettingsView")},
		{Name: "users/:id", View: views.Intern("UserView")},
		{Name: "users/:id/:tab", View: views.Intern("UserTabView")},
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(table), views
}

func TestParseLengthEqualsTableSize(t *testing.T) {
	m, _ := testTable(t)

	// One segment per configured route, whatever the input looks like.
	for _, raw := range []string{"/", "/home", "/users/42", "/a/b/c/d/e/f", ""} {
		path := m.Parse(raw)
		if len(path) != m.Table().Len() {
			t.Errorf("Parse(%q) length = %d, want table size %d",
				raw, len(path), m.Table().Len())
		}
	}
}

func TestParseSpecificity(t *testing.T) {
	m, views := testTable(t)

	// "users/settings" must win over "users/:id" for /users/settings:
	// equal part count, but two leading statics beat one.
	path := m.Parse("/users/settings")

	var settings, user *Segment
	for i := range path {
		switch path[i].Name {
		case "users/settings":
			settings = &path[i]
		case "users/:id":
			user = &path[i]
		}
	}
	if settings == nil || !settings.Matched() {
		t.Fatal("users/settings did not match")
	}
	if ref, _ := views.Lookup("SettingsView"); settings.View != ref {
		t.Errorf("settings view = %v, want SettingsView ref", settings.View)
	}
	if settings.Data != nil {
		t.Errorf("settings data = %v, want nil (no parameter parts)", settings.Data)
	}

	// The parameter template still matches independently and captures
	// the literal as data.
	if user == nil || !user.Matched() {
		t.Fatal("users/:id did not match")
	}
	if user.Data["id"] != "settings" {
		t.Errorf("user data = %v, want id=settings", user.Data)
	}
}

func TestParseCapturesDecodedData(t *testing.T) {
	m, _ := testTable(t)

	path := m.Parse("/users/42/bio%20long")
	seg, ok := findSegment(path, "users/:id/:tab")
	if !ok || !seg.Matched() {
		t.Fatal("users/:id/:tab did not match")
	}
	if seg.Data["id"] != "42" || seg.Data["tab"] != "bio long" {
		t.Errorf("data = %v, want id=42 tab=\"bio long\"", seg.Data)
	}
	// ID keeps the raw parts, joined.
	if seg.ID != "users/42/bio%20long" {
		t.Errorf("id = %q, want raw joined parts", seg.ID)
	}
}

func TestParseStripsQueryAndFragment(t *testing.T) {
	m, _ := testTable(t)

	for _, raw := range []string{
		"/users/42?tab=bio",
		"/users/42#anchor",
		"/users/42?tab=bio#anchor",
	} {
		seg, ok := findSegment(m.Parse(raw), "users/:id")
		if !ok || !seg.Matched() {
			t.Fatalf("Parse(%q): users/:id did not match", raw)
		}
		if seg.Data["id"] != "42" {
			t.Errorf("Parse(%q) data = %v, want id=42", raw, seg.Data)
		}
	}
}

func TestParseOffsetScan(t *testing.T) {
	m, _ := testTable(t)

	// The template does not have to match at offset 0; the scan walks
	// start offsets until the parts line up.
	seg, ok := findSegment(m.Parse("/extra/users/settings"), "users/settings")
	if !ok || !seg.Matched() {
		t.Fatal("users/settings did not match at a later offset")
	}
	if seg.ID != "users/settings" {
		t.Errorf("id = %q, want %q", seg.ID, "users/settings")
	}
}

func TestParseRunsOffEndIsNonMatch(t *testing.T) {
	views := route.NewViewRegistry()
	table, err := route.Normalize([]route.Definition{
		{Name: "users/:id/posts", View: views.Intern("PostsView")},
	})
	if err != nil {
		t.Fatal(err)
	}
	m := New(table)

	// Only two URL parts for a three-part template: no offset can
	// supply a present part for every template part.
	path := m.Parse("/users/42")
	if path[0].Matched() {
		t.Error("template matched despite running off the end")
	}
}

func TestParseFallbackSegments(t *testing.T) {
	m, _ := testTable(t)

	path := m.Parse("/nothing/matches/here")
	if len(path) != m.Table().Len() {
		t.Fatalf("length = %d, want %d", len(path), m.Table().Len())
	}
	for _, seg := range path {
		if seg.Matched() {
			t.Errorf("segment %q unexpectedly matched", seg.Name)
			continue
		}
		// Fallback pins the URL part at the final offset the scan
		// examined: the last URL part.
		if seg.ID != "here" || seg.Name != "here" {
			t.Errorf("fallback = {ID: %q, Name: %q}, want both %q", seg.ID, seg.Name, "here")
		}
		if seg.Data != nil {
			t.Errorf("fallback data = %v, want nil", seg.Data)
		}
	}
}

func TestParseRootPath(t *testing.T) {
	m, _ := testTable(t)

	// "/" splits to a single empty part; nothing matches, and the
	// fallback carries the empty fragment.
	path := m.Parse("/")
	for _, seg := range path {
		if seg.Matched() {
			t.Errorf("segment %q matched on root path", seg.Name)
		}
		if seg.ID != "" {
			t.Errorf("fallback id = %q, want empty", seg.ID)
		}
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{"empty", Path{}, "/"},
		{"single", Path{{ID: "home"}}, "/home"},
		{"multi", Path{{ID: "users/42"}, {ID: "about"}}, "/users/42/about"},
	}

	for _, tt := range tests {
		if got := Serialize(tt.path); got != tt.want {
			t.Errorf("%s: Serialize = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSerializeComponent(t *testing.T) {
	m, views := testTable(t)

	user, _ := views.Lookup("UserView")
	seg, ok := m.SerializeComponent(user, map[string]string{"id": "42"})
	if !ok {
		t.Fatal("SerializeComponent(UserView) not found")
	}
	if seg.ID != "users/42" {
		t.Errorf("id = %q, want %q", seg.ID, "users/42")
	}
	if seg.Name != "users/:id" {
		t.Errorf("name = %q, want %q", seg.Name, "users/:id")
	}

	if _, ok := m.SerializeComponent(route.NoView, nil); ok {
		t.Error("SerializeComponent(NoView) should not match")
	}
	if _, ok := m.SerializeComponent(views.Intern("Unrouted"), nil); ok {
		t.Error("SerializeComponent(unrouted view) should not match")
	}
}

func TestBuildSegmentSubstitution(t *testing.T) {
	m, _ := testTable(t)
	tmpl, _ := m.Table().ByName("users/:id/:tab")

	seg := BuildSegment(tmpl, map[string]string{"id": "42", "tab": "bio"})
	if seg.ID != "users/42/bio" {
		t.Errorf("id = %q, want %q", seg.ID, "users/42/bio")
	}

	// Missing keys stay as literal ":key" tokens, not errors.
	seg = BuildSegment(tmpl, map[string]string{"id": "42"})
	if seg.ID != "users/42/:tab" {
		t.Errorf("id = %q, want %q", seg.ID, "users/42/:tab")
	}

	// Nil data leaves every parameter token in place and is carried
	// through unchanged.
	seg = BuildSegment(tmpl, nil)
	if seg.ID != "users/:id/:tab" {
		t.Errorf("id = %q, want %q", seg.ID, "users/:id/:tab")
	}
	if seg.Data != nil {
		t.Errorf("data = %v, want nil", seg.Data)
	}
}

func TestBuildSegmentEncodesValues(t *testing.T) {
	m, _ := testTable(t)
	tmpl, _ := m.Table().ByName("users/:id")

	seg := BuildSegment(tmpl, map[string]string{"id": "a/b c"})
	if seg.ID != "users/a%2Fb%20c" {
		t.Errorf("id = %q, want %q", seg.ID, "users/a%2Fb%20c")
	}
	// The original record is carried, not the encoded copy.
	if seg.Data["id"] != "a/b c" {
		t.Errorf("data = %v, want original value", seg.Data)
	}
}

func TestHref(t *testing.T) {
	m, _ := testTable(t)

	href, ok := m.Href("users/:id", map[string]string{"id": "42"})
	if !ok || href != "/users/42" {
		t.Errorf("Href = %q, %v, want /users/42", href, ok)
	}
	if _, ok := m.Href("missing", nil); ok {
		t.Error("Href(missing) should not succeed")
	}
}

func findSegment(path Path, name string) (Segment, bool) {
	for _, seg := range path {
		if seg.Name == name {
			return seg, true
		}
	}
	return Segment{}, false
}
