// ABOUTME: vCard field converters
// ABOUTME: Turns extracted property entries into a card-scoped ParsedContact
package importer

import (
	"strings"

	"github.com/harperreed/vimport/models"
	"github.com/harperreed/vimport/vcard"
)

// ParsedContact is one card's converted view, built once per card before
// matching and merging. Unclaimed holds the residual body lines no named
// converter consumed; the Merger drains them into the notes channel.
type ParsedContact struct {
	GivenName      string
	FamilyName     string
	HasName        bool
	OtherNames     []string
	FormattedNames []string
	Nicknames      []string
	Organization   string
	Emails         []string
	Phones         []models.Phone
	Addresses      []models.Address
	URL            string
	NotesText      []string
	Birthday       string
	Version        string
	Unclaimed      string
}

// ParseCard converts one card body into a ParsedContact. Every property type
// with a dedicated converter is claimed here, exactly once, so the trailing
// drain only ever sees the rest.
func ParseCard(body string, labels LabelTable) *ParsedContact {
	p := &ParsedContact{}

	var entries []vcard.PropertyEntry
	entries, body = vcard.Extract(body, "VERSION", true)
	if len(entries) > 0 {
		p.Version = rawValue(entries[0])
	}

	entries, body = vcard.Extract(body, "N", false)
	for i, e := range entries {
		given, family := convertName(e)
		if i == 0 {
			p.GivenName = given
			p.FamilyName = family
			p.HasName = true
			continue
		}
		p.OtherNames = append(p.OtherNames, joinNonEmpty(given, family))
	}

	entries, body = vcard.Extract(body, "FN", false)
	for _, e := range entries {
		p.FormattedNames = append(p.FormattedNames, vcard.Unescape(rawValue(e)))
	}

	entries, body = vcard.Extract(body, "NICKNAME", false)
	for _, e := range entries {
		names, _ := vcard.SplitValue(rawValue(e), ',', false)
		for _, n := range names {
			p.Nicknames = append(p.Nicknames, vcard.Unescape(n))
		}
	}

	entries, body = vcard.Extract(body, "ORG", true)
	if len(entries) > 0 {
		p.Organization = convertOrganization(entries[0])
	}

	entries, body = vcard.Extract(body, "EMAIL", false)
	for _, e := range entries {
		p.Emails = append(p.Emails, rawValue(e))
	}

	entries, body = vcard.Extract(body, "TEL", false)
	for _, e := range entries {
		p.Phones = append(p.Phones, models.Phone{
			Label:  labels.Translate(typeLabel(e)),
			Number: rawValue(e),
		})
	}

	entries, body = vcard.Extract(body, "ADR", false)
	for _, e := range entries {
		p.Addresses = append(p.Addresses, convertAddress(e, labels))
	}

	entries, body = vcard.Extract(body, "URL", true)
	if len(entries) > 0 {
		p.URL = rawValue(entries[0])
	}

	entries, body = vcard.Extract(body, "NOTE", false)
	for _, e := range entries {
		p.NotesText = append(p.NotesText, vcard.Unescape(rawValue(e)))
	}

	entries, body = vcard.Extract(body, "BDAY", true)
	if len(entries) > 0 {
		p.Birthday = rawValue(entries[0])
	}

	p.Unclaimed = body
	return p
}

// convertName maps an N entry to a (given, family) pair. A scalar value goes
// through the generic divide fallback; the structured form composes
// prefixes + given + additional and family + suffixes, with comma-joined
// sub-components flattened to spaces.
func convertName(e vcard.PropertyEntry) (given, family string) {
	if e.Fields == nil {
		return divideName(vcard.Unescape(e.Value))
	}
	if len(e.Fields) == 1 {
		// N is force-split into list form, so an unstructured value shows up
		// as a single component.
		return divideName(vcard.Unescape(e.Fields[0]))
	}

	parts := make([]string, 5)
	for i := range parts {
		if i < len(e.Fields) {
			parts[i] = vcard.Unescape(flattenCommas(e.Fields[i]))
		}
	}

	given = joinNonEmpty(parts[3], parts[1], parts[2])
	family = joinNonEmpty(parts[0], parts[4])
	return given, family
}

// divideName splits an unstructured name: the last word is the family name,
// everything before it the given name.
func divideName(name string) (given, family string) {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "", ""
	}
	return strings.Join(words[:len(words)-1], " "), words[len(words)-1]
}

// convertOrganization passes a scalar ORG through; a structured value joins
// its components with newlines, keeping organizational units inside the same
// company field.
func convertOrganization(e vcard.PropertyEntry) string {
	if e.Fields == nil {
		return vcard.Unescape(e.Value)
	}
	units := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		units[i] = vcard.Unescape(f)
	}
	return strings.Join(units, "\n")
}

// convertAddress maps the 7 structured ADR components: postbox, extended and
// street become the address lines (empties dropped), then city, state,
// postal code, country.
func convertAddress(e vcard.PropertyEntry, labels LabelTable) models.Address {
	parts := make([]string, 7)
	for i := range parts {
		if i < len(e.Fields) {
			parts[i] = e.Fields[i]
		}
	}

	var lines []string
	for _, l := range parts[:3] {
		if l != "" {
			lines = append(lines, l)
		}
	}

	return models.Address{
		Label:   labels.Translate(typeLabel(e)),
		Lines:   lines,
		City:    parts[3],
		State:   parts[4],
		Zip:     parts[5],
		Country: parts[6],
	}
}

// typeLabel joins an entry's TYPE parameter values back into the raw label
// handed to the translator; no TYPE parameter yields the empty label.
func typeLabel(e vcard.PropertyEntry) string {
	return strings.Join(e.TypeParams(), ",")
}

// rawValue returns an entry's value as one string, rejoining structured
// components without altering their escapes.
func rawValue(e vcard.PropertyEntry) string {
	if e.Fields != nil {
		return strings.Join(e.Fields, ";")
	}
	return e.Value
}

// flattenCommas rewrites comma-joined sub-components as space-joined text.
func flattenCommas(s string) string {
	parts, isList := vcard.SplitValue(s, ',', false)
	if !isList {
		return s
	}
	return joinNonEmpty(parts...)
}

// joinNonEmpty joins the non-empty parts with single spaces.
func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
