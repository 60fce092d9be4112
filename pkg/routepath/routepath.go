// Package routepath provides the raw path plumbing shared by the
// matcher and the serializer: query/fragment stripping, part
// splitting, and per-part percent encoding and decoding.
//
// All functions are pure and total. Malformed input never produces an
// error; decoding falls back to the raw text so that navigation is
// never blocked by a bad escape sequence.
package routepath

import (
	"net/url"
	"strings"
)

// SplitPathAndQuery splits a raw path into its path component and
// whatever followed the first "?" or "#". The suffix is returned
// without its leading delimiter.
func SplitPathAndQuery(input string) (path, rest string) {
	if i := strings.IndexAny(input, "?#"); i != -1 {
		return input[:i], input[i+1:]
	}
	return input, ""
}

// Split turns a raw browser path into its URL parts: one leading "/"
// is stripped, anything from the first "?" or "#" onward is
// discarded, and the remainder is split on "/".
//
// The result is never empty: splitting "/" or "" yields a single
// empty part. No decoding or normalization is applied; parts compare
// byte-for-byte against literal template parts.
func Split(raw string) []string {
	path, _ := SplitPathAndQuery(raw)
	path = strings.TrimPrefix(path, "/")
	return strings.Split(path, "/")
}

// DecodePart percent-decodes a single URL part, exactly once.
// An invalid escape sequence leaves the part as-is.
func DecodePart(part string) string {
	decoded, err := url.PathUnescape(part)
	if err != nil {
		return part
	}
	return decoded
}

// EncodePart percent-encodes a value for use as a single URL part.
// A "/" in the value becomes %2F, so the part survives a later
// split-decode round trip intact.
func EncodePart(value string) string {
	return url.PathEscape(value)
}

// Join assembles URL parts into a canonical path string: "/" plus the
// parts joined by "/".
func Join(parts []string) string {
	return "/" + strings.Join(parts, "/")
}
