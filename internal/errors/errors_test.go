package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New(CodeDuplicateRouteName)
	if err.Code != CodeDuplicateRouteName {
		t.Errorf("Code = %q, want %q", err.Code, CodeDuplicateRouteName)
	}
	if err.Category != CategoryValidation {
		t.Errorf("Category = %q, want %q", err.Category, CategoryValidation)
	}
	if err.Message == "" || err.DocURL == "" {
		t.Error("registered error should carry message and doc URL")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("N999")
	if err.Code != "N999" {
		t.Errorf("Code = %q, want N999", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestErrorString(t *testing.T) {
	err := New(CodeConfigInvalid)
	if got := err.Error(); !strings.HasPrefix(got, CodeConfigInvalid+": ") {
		t.Errorf("Error() = %q, want %q prefix", got, CodeConfigInvalid)
	}

	plain := Newf(CategoryCLI, "bad flag %q", "-x")
	if got := plain.Error(); got != `bad flag "-x"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := FromError(cause, CodeConfigFetchFailed)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	var navErr *NavError
	if !errors.As(err, &navErr) {
		t.Error("errors.As should match *NavError")
	}
}

func TestFromErrorNil(t *testing.T) {
	if got := FromError(nil, CodeConfigInvalid); got != nil {
		t.Errorf("FromError(nil) = %v, want nil", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeEmptyRouteName).
		WithSuggestion("name the route").
		Wrap(errors.New("boom"))

	out := Format(err)
	for _, want := range []string{
		"[" + CodeEmptyRouteName + "]",
		"Hint: name the route",
		"caused by: boom",
		"Docs:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format output missing %q:\n%s", want, out)
		}
	}
}
