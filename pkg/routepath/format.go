package routepath

import (
	"strings"
	"unicode"
)

// punctuation is the set of characters collapsed into hyphens by
// FormatURLPart, alongside all whitespace.
const punctuation = ".,;:!?'\"`()[]{}<>/\\|@#$%^&*+=~"

// FormatURLPart normalizes a free-form string into a URL-safe path
// part: lowercase, every run of whitespace or punctuation becomes a
// single hyphen, repeated hyphens collapse, edge hyphens are trimmed,
// and the result is percent-encoded.
//
//	FormatURLPart("Hello, World!!") == "hello-world"
//
// Deterministic and pure; independent of any route table.
func FormatURLPart(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastWasHyphen := false
	for _, r := range strings.ToLower(name) {
		if r == '-' || unicode.IsSpace(r) || strings.ContainsRune(punctuation, r) {
			if !lastWasHyphen {
				b.WriteByte('-')
				lastWasHyphen = true
			}
			continue
		}
		b.WriteRune(r)
		lastWasHyphen = false
	}

	return EncodePart(strings.Trim(b.String(), "-"))
}
