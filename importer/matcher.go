// ABOUTME: Contact record matching logic
// ABOUTME: Finds an existing record via a 3-tier search-then-narrow cascade
package importer

import (
	"regexp"
	"strings"

	"github.com/harperreed/vimport/models"
)

// Database is the contact-database collaborator. Narrowing predicates run on
// the record list returned by AllRecords; CreateRecord hands out a blank
// record whose field assignments Commit persists.
type Database interface {
	AllRecords() ([]*models.ContactRecord, error)
	CreateRecord() *models.ContactRecord
	Commit(rec *models.ContactRecord, isUpdate bool) error
}

type recordPredicate func(*models.ContactRecord) bool

// FindMatch locates at most one existing record for a parsed card, trying
// three predicate combinations in order and stopping at the first non-empty
// result:
//
//  1. company, narrowed by email, narrowed by name
//  2. company, narrowed by name
//  3. email, narrowed by name
//
// An attempt whose prerequisite field is absent on the card is skipped, not
// failed. Without a name no attempt runs at all and a nil record is returned
// so the caller creates a fresh one.
func FindMatch(db Database, card *ParsedContact) (*models.ContactRecord, error) {
	if !card.HasName {
		return nil, nil
	}

	byName := namePredicate(card.GivenName, card.FamilyName)
	byCompany := companyPredicate(card.Organization)
	byEmail := emailPredicate(card.Emails)

	attempts := [][]recordPredicate{
		{byCompany, byEmail, byName},
		{byCompany, byName},
		{byEmail, byName},
	}

	records, err := db.AllRecords()
	if err != nil {
		return nil, err
	}

	for _, attempt := range attempts {
		result := records
		skipped := false
		for _, pred := range attempt {
			if pred == nil {
				skipped = true
				break
			}
			result = narrow(result, pred)
		}
		if skipped {
			continue
		}
		if len(result) > 0 {
			return result[0], nil
		}
	}

	return nil, nil
}

func narrow(records []*models.ContactRecord, pred recordPredicate) []*models.ContactRecord {
	var matched []*models.ContactRecord
	for _, r := range records {
		if pred(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// namePredicate builds the name-ordering-tolerant "given .* family" pattern
// and matches it against a record's full name and AKA strings.
func namePredicate(given, family string) recordPredicate {
	var parts []string
	if given != "" {
		parts = append(parts, regexp.QuoteMeta(given))
	}
	if family != "" {
		parts = append(parts, regexp.QuoteMeta(family))
	}
	if len(parts) == 0 {
		return nil
	}

	pattern := regexp.MustCompile(`(?i)` + strings.Join(parts, ".*"))
	return func(r *models.ContactRecord) bool {
		if pattern.MatchString(r.FullName()) {
			return true
		}
		for _, aka := range r.AKA {
			if pattern.MatchString(aka) {
				return true
			}
		}
		return false
	}
}

func companyPredicate(org string) recordPredicate {
	if org == "" {
		return nil
	}
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(org))
	return func(r *models.ContactRecord) bool {
		return pattern.MatchString(r.Company)
	}
}

func emailPredicate(emails []string) recordPredicate {
	if len(emails) == 0 {
		return nil
	}
	return func(r *models.ContactRecord) bool {
		for _, net := range r.Nets {
			for _, email := range emails {
				if strings.EqualFold(strings.TrimSpace(net), strings.TrimSpace(email)) {
					return true
				}
			}
		}
		return false
	}
}
