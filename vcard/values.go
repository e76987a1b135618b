// ABOUTME: Structured value splitting and unescaping
// ABOUTME: Splits on unescaped separators, removes escaping backslashes last
package vcard

import "strings"

// SplitValue splits text on every occurrence of sep that is not immediately
// preceded by a backslash. Escape sequences are preserved in the segments so
// callers can still tell "no separator" from "one escaped separator";
// Unescape is applied later, once all structural splitting is done.
//
// The returned flag reports list form: exactly one segment with forceList
// false collapses to a scalar.
func SplitValue(text string, sep byte, forceList bool) ([]string, bool) {
	var segments []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == sep && (i == 0 || text[i-1] != '\\') {
			segments = append(segments, text[start:i])
			start = i + 1
		}
	}
	segments = append(segments, text[start:])

	if len(segments) == 1 && !forceList {
		return segments, false
	}
	return segments, true
}

// Unescape deletes the backslash from escaped commas and semicolons. Applied
// only to final strings headed for storage; raw pass-through values keep
// their escapes.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, `\,`, ",")
	s = strings.ReplaceAll(s, `\;`, ";")
	return s
}
