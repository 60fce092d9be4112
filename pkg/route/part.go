package route

import "strings"

// PartKind distinguishes the two template part variants.
type PartKind int

const (
	// PartLiteral matches exactly one URL part, byte-for-byte.
	PartLiteral PartKind = iota

	// PartParam matches any present URL part and captures it by key.
	PartParam
)

// Part is one element of a route template's path pattern. The kind is
// decided once at normalization time, based on the leading ":" sentinel,
// and never reclassified afterwards.
type Part struct {
	kind PartKind
	text string
}

// parsePart classifies a raw template piece.
func parsePart(piece string) Part {
	if strings.HasPrefix(piece, paramSentinel) {
		return Part{kind: PartParam, text: piece[len(paramSentinel):]}
	}
	return Part{kind: PartLiteral, text: piece}
}

// paramSentinel marks a template piece as a parameter part.
const paramSentinel = ":"

// Kind returns the part variant.
func (p Part) Kind() PartKind { return p.kind }

// IsParam reports whether the part is a parameter part.
func (p Part) IsParam() bool { return p.kind == PartParam }

// Text returns the literal text for literal parts and the capture key
// for parameter parts.
func (p Part) Text() string { return p.text }

// Key returns the capture key for parameter parts, and "" otherwise.
func (p Part) Key() string {
	if p.kind == PartParam {
		return p.text
	}
	return ""
}

// Token returns the part as it appears in a path template: the literal
// text, or ":" + key for parameter parts. An unsubstituted parameter
// surfaces in built paths as exactly this token.
func (p Part) Token() string {
	if p.kind == PartParam {
		return paramSentinel + p.text
	}
	return p.text
}
