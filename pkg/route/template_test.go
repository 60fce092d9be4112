package route

import "testing"

func TestParsePart(t *testing.T) {
	tests := []struct {
		piece     string
		wantParam bool
		wantText  string
	}{
		{"users", false, "users"},
		{":id", true, "id"},
		{":", true, ""},
		{"", false, ""},
		{"profile", false, "profile"},
	}

	for _, tt := range tests {
		p := parsePart(tt.piece)
		if p.IsParam() != tt.wantParam {
			t.Errorf("parsePart(%q).IsParam() = %v, want %v", tt.piece, p.IsParam(), tt.wantParam)
		}
		if p.Text() != tt.wantText {
			t.Errorf("parsePart(%q).Text() = %q, want %q", tt.piece, p.Text(), tt.wantText)
		}
	}
}

func TestPartToken(t *testing.T) {
	if got := parsePart(":id").Token(); got != ":id" {
		t.Errorf("Token() = %q, want %q", got, ":id")
	}
	if got := parsePart("users").Token(); got != "users" {
		t.Errorf("Token() = %q, want %q", got, "users")
	}
}

func TestNewTemplateCounts(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantParts  int
		wantStatic int
		wantData   int
	}{
		{"home", "", 1, 1, 0},
		{"users", "/users/:id", 2, 1, 1},
		{"settings", "/users/settings", 2, 2, 0},
		{"deep", "/a/b/:c/d/:e", 5, 2, 2},
		// Literal parts after a parameter never count as static.
		{"mixed", "/a/:b/c", 3, 1, 1},
		{"params", "/:x/:y", 2, 0, 2},
	}

	for _, tt := range tests {
		tmpl := newTemplate(Definition{Name: tt.name, Path: tt.path})
		if len(tmpl.Parts()) != tt.wantParts {
			t.Errorf("%s: parts = %d, want %d", tt.name, len(tmpl.Parts()), tt.wantParts)
		}
		if tmpl.StaticParts() != tt.wantStatic {
			t.Errorf("%s: static = %d, want %d", tt.name, tmpl.StaticParts(), tt.wantStatic)
		}
		if tmpl.DataParts() != tt.wantData {
			t.Errorf("%s: data = %d, want %d", tt.name, tmpl.DataParts(), tt.wantData)
		}
	}
}

func TestNewTemplateDefaultsToName(t *testing.T) {
	tmpl := newTemplate(Definition{Name: "users/:id"})
	if len(tmpl.Parts()) != 2 {
		t.Fatalf("parts = %d, want 2", len(tmpl.Parts()))
	}
	if !tmpl.Parts()[1].IsParam() || tmpl.Parts()[1].Key() != "id" {
		t.Errorf("second part = %+v, want param id", tmpl.Parts()[1])
	}
}

func TestTemplatePattern(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/users/:id", "users/:id"},
		{"users/settings", "users/settings"},
		{":x/:y", ":x/:y"},
	}

	for _, tt := range tests {
		tmpl := newTemplate(Definition{Name: "r", Path: tt.path})
		if got := tmpl.Pattern(); got != tt.want {
			t.Errorf("Pattern(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
