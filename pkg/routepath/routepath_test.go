package routepath

import (
	"reflect"
	"testing"
)

func TestSplitPathAndQuery(t *testing.T) {
	tests := []struct {
		input    string
		wantPath string
		wantRest string
	}{
		{"/users/42", "/users/42", ""},
		{"/users/42?tab=bio", "/users/42", "tab=bio"},
		{"/users/42#x", "/users/42", "x"},
		{"/users/42?tab=bio#x", "/users/42", "tab=bio#x"},
		{"", "", ""},
		{"?only=query", "", "only=query"},
	}

	for _, tt := range tests {
		path, rest := SplitPathAndQuery(tt.input)
		if path != tt.wantPath || rest != tt.wantRest {
			t.Errorf("SplitPathAndQuery(%q) = (%q, %q), want (%q, %q)",
				tt.input, path, rest, tt.wantPath, tt.wantRest)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"/users/42", []string{"users", "42"}},
		{"users/42", []string{"users", "42"}},
		{"/users/42/profile?tab=bio#x", []string{"users", "42", "profile"}},
		{"/", []string{""}},
		{"", []string{""}},
		// Only a single leading slash is stripped.
		{"//users", []string{"", "users"}},
		// No decoding happens at split time.
		{"/a%2Fb/c", []string{"a%2Fb", "c"}},
		{"/a/b/", []string{"a", "b", ""}},
	}

	for _, tt := range tests {
		if got := Split(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}

func TestDecodePart(t *testing.T) {
	tests := []struct {
		part string
		want string
	}{
		{"plain", "plain"},
		{"a%20b", "a b"},
		{"a%2Fb", "a/b"},
		// Decoded exactly once.
		{"a%252Fb", "a%2Fb"},
		// Invalid escapes fall back to the raw part.
		{"bad%GG", "bad%GG"},
		{"trailing%2", "trailing%2"},
	}

	for _, tt := range tests {
		if got := DecodePart(tt.part); got != tt.want {
			t.Errorf("DecodePart(%q) = %q, want %q", tt.part, got, tt.want)
		}
	}
}

func TestEncodePart(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"plain", "plain"},
		{"a b", "a%20b"},
		{"a/b", "a%2Fb"},
		{"100%", "100%25"},
	}

	for _, tt := range tests {
		if got := EncodePart(tt.value); got != tt.want {
			t.Errorf("EncodePart(%q) = %q, want %q", tt.value, got, tt.want)
		}
		if back := DecodePart(EncodePart(tt.value)); back != tt.value {
			t.Errorf("decode(encode(%q)) = %q", tt.value, back)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{nil, "/"},
		{[]string{"home"}, "/home"},
		{[]string{"users", "42"}, "/users/42"},
	}

	for _, tt := range tests {
		if got := Join(tt.parts); got != tt.want {
			t.Errorf("Join(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}
