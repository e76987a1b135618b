// ABOUTME: vCard text normalization
// ABOUTME: Repairs mixed line endings and unfolds RFC2425 continuation lines
package vcard

import "strings"

// Normalize rewrites text to use a single "\n" terminator regardless of the
// original CR/LF/CRLF style, then joins folded continuation lines (a line
// starting with one space or tab) to the line before them. The input is not
// modified.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// RFC2425 folding: terminator followed by a single space or tab marks a
	// continuation of the previous line.
	text = strings.ReplaceAll(text, "\n ", "")
	text = strings.ReplaceAll(text, "\n\t", "")

	return text
}
