// ABOUTME: vCard envelope splitting
// ABOUTME: Extracts card bodies from BEGIN:VCARD/END:VCARD blocks
package vcard

import "regexp"

// cardPattern matches one card envelope in normalized text. Both delimiters
// may carry a dotted group prefix; neither the delimiters nor the prefixes
// are part of the captured body. A BEGIN:VCARD without a terminating
// END:VCARD never matches and is therefore silently skipped.
var cardPattern = regexp.MustCompile(`(?:[A-Za-z0-9-]+\.)?BEGIN:VCARD\n((?s).*?)\n(?:[A-Za-z0-9-]+\.)?END:VCARD`)

// ForEachCard calls fn once per card body found in normalized text, in
// document order. It only reads text, so the whole scan can be re-run safely.
// A non-nil error from fn stops the scan and is returned.
func ForEachCard(text string, fn func(body string) error) error {
	for _, match := range cardPattern.FindAllStringSubmatch(text, -1) {
		if err := fn(match[1]); err != nil {
			return err
		}
	}
	return nil
}

// Cards returns all card bodies in normalized text.
func Cards(text string) []string {
	var bodies []string
	_ = ForEachCard(text, func(body string) error {
		bodies = append(bodies, body)
		return nil
	})
	return bodies
}
