// ABOUTME: vCard property extraction
// ABOUTME: Claims typed property lines from a card body, leaving a residual
package vcard

import (
	"regexp"
	"strings"
)

// PropertyEntry is one parsed property line. Fields is non-nil when the value
// was split into structured components; otherwise Value holds the scalar.
type PropertyEntry struct {
	Group  string
	Name   string
	Params map[string][]string
	Value  string
	Fields []string
}

// TypeParams returns the values collected under the TYPE parameter.
func (e PropertyEntry) TypeParams() []string {
	return e.Params["type"]
}

// Types with vCard-defined sub-components, always split into list form.
var structuredTypes = map[string]bool{
	"n":   true,
	"adr": true,
}

var (
	groupPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	paramPattern = regexp.MustCompile(`([A-Za-z0-9-]+)=([^;:]*)`)
)

// Extract parses every line of body whose property type equals typeName
// (case-insensitive) and returns the parsed entries together with a residual
// body from which the matched lines have been removed. Claiming lines this
// way means a later Extract for another type, or the trailing NextOtherEntry
// drain, never re-reads them.
//
// With firstOnly set, extraction stops after the first match; later lines of
// the same type stay in the residual unclaimed.
func Extract(body, typeName string, firstOnly bool) ([]PropertyEntry, string) {
	var entries []PropertyEntry
	var residual []string

	done := false
	for _, line := range strings.Split(body, "\n") {
		if done {
			residual = append(residual, line)
			continue
		}

		entry, ok := parseLine(line)
		if !ok || !strings.EqualFold(entry.Name, typeName) {
			residual = append(residual, line)
			continue
		}

		entries = append(entries, entry)
		if firstOnly {
			done = true
		}
	}

	return entries, strings.Join(residual, "\n")
}

// NextOtherEntry finds and removes the first remaining line of the form
// TYPE:VALUE, returning the whole pre-colon text lowercased (parameters
// included verbatim) as the key and the raw value untouched. ok is false once
// body holds no more colon-bearing lines.
func NextOtherEntry(body string) (key, value, residual string, ok bool) {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		colon := unescapedIndex(line, ':')
		if colon <= 0 {
			continue
		}
		key = strings.ToLower(line[:colon])
		value = line[colon+1:]
		residual = strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		return key, value, residual, true
	}
	return "", "", body, false
}

// parseLine parses [GROUP.]TYPE[;PARAMS]:VALUE. Parameter keys and values are
// lowercased on capture; TYPE parameter values carrying a comma list are
// stored as individual values under the "type" key.
func parseLine(line string) (PropertyEntry, bool) {
	colon := unescapedIndex(line, ':')
	if colon <= 0 {
		return PropertyEntry{}, false
	}

	left := line[:colon]
	rawValue := line[colon+1:]

	var params string
	if semi := strings.IndexByte(left, ';'); semi >= 0 {
		params = left[semi+1:]
		left = left[:semi]
	}

	entry := PropertyEntry{Name: left, Params: map[string][]string{}}
	if dot := strings.IndexByte(left, '.'); dot >= 0 {
		group, name := left[:dot], left[dot+1:]
		if !groupPattern.MatchString(group) {
			return PropertyEntry{}, false
		}
		entry.Group = group
		entry.Name = name
	}
	if entry.Name == "" || strings.ContainsAny(entry.Name, " \t") {
		return PropertyEntry{}, false
	}

	for _, m := range paramPattern.FindAllStringSubmatch(params, -1) {
		k := strings.ToLower(m[1])
		v := strings.ToLower(m[2])
		if k == "type" {
			entry.Params[k] = append(entry.Params[k], strings.Split(v, ",")...)
		} else {
			entry.Params[k] = append(entry.Params[k], v)
		}
	}

	fields, isList := SplitValue(rawValue, ';', structuredTypes[strings.ToLower(entry.Name)])
	if isList {
		entry.Fields = fields
	} else {
		entry.Value = fields[0]
	}

	return entry, true
}

// unescapedIndex returns the index of the first c in s not immediately
// preceded by a backslash, or -1.
func unescapedIndex(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}
