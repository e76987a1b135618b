// ABOUTME: vCard TYPE label translation
// ABOUTME: Maps free-form TYPE parameters to canonical category labels
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelRule pairs a pattern with the canonical label it translates to.
type LabelRule struct {
	Pattern *regexp.Regexp
	Label   string
}

// LabelTable is an ordered translation table, searched first-match-wins.
// A well-formed table contains exactly one rule whose pattern matches the
// empty string; that rule supplies the default label for parameterless
// TEL and ADR properties.
type LabelTable []LabelRule

var titleCaser = cases.Title(language.Und)

// Translate returns the canonical label for a raw TYPE value. Rules are
// tried in order with a regexp search, not a full match; when nothing
// matches, the raw label itself is returned title-cased.
func (t LabelTable) Translate(raw string) string {
	for _, rule := range t {
		if rule.Pattern.MatchString(raw) {
			return rule.Label
		}
	}
	return titleCaser.String(raw)
}

// DefaultLabelTable returns the built-in translation table: CELL/CAR map to
// Mobile, WORK maps to Office, and the empty label defaults to Office.
func DefaultLabelTable() LabelTable {
	return LabelTable{
		{Pattern: regexp.MustCompile(`(?i)cell|car`), Label: "Mobile"},
		{Pattern: regexp.MustCompile(`(?i)work`), Label: "Office"},
		{Pattern: regexp.MustCompile(`^$`), Label: "Office"},
	}
}

type labelRuleJSON struct {
	Pattern string `json:"pattern"`
	Label   string `json:"label"`
}

// LoadLabelTable reads an ordered label table from a JSON file: an array of
// {"pattern": ..., "label": ...} objects. The table must contain a rule
// matching the empty string so parameterless entries get a label.
func LoadLabelTable(path string) (LabelTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label table: %w", err)
	}

	var rules []labelRuleJSON
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse label table: %w", err)
	}

	table := make(LabelTable, 0, len(rules))
	hasDefault := false
	for _, r := range rules {
		pat, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid label pattern %q: %w", r.Pattern, err)
		}
		if pat.MatchString("") {
			hasDefault = true
		}
		table = append(table, LabelRule{Pattern: pat, Label: r.Label})
	}

	if !hasDefault {
		return nil, fmt.Errorf("label table has no rule matching the empty label")
	}

	return table, nil
}
