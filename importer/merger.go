// ABOUTME: Contact record merging
// ABOUTME: Folds a parsed card into a matched or freshly created record
package importer

import (
	"regexp"
	"strings"

	"github.com/harperreed/vimport/models"
	"github.com/harperreed/vimport/vcard"
)

// Notes keys used for the card fields with a fixed destination.
const (
	noteKeyWWW         = "www"
	noteKeyNotes       = "notes"
	noteKeyNotesAlt    = "vcard-notes"
	noteKeyAnniversary = "anniversary"
)

// Merge folds card into rec in place. Singular fields overwrite, multi-valued
// fields union with deduplication, and everything without a structured home
// lands in the notes list. skip filters drained property keys; nil skips
// nothing.
func Merge(rec *models.ContactRecord, card *ParsedContact, skip *regexp.Regexp) {
	if card.HasName {
		rec.FirstName = card.GivenName
		rec.LastName = card.FamilyName
	}

	rec.AKA = unionStrings(rec.AKA, card.Nicknames, card.OtherNames, card.FormattedNames)

	// Company is only touched when the card supplies one. When the match came
	// from the email+name tier this may silently replace an unrelated
	// existing company; that asymmetry is deliberate.
	if card.Organization != "" {
		rec.Company = card.Organization
	}

	rec.Nets = unionStrings(rec.Nets, card.Emails)
	rec.Phones = unionPhones(rec.Phones, card.Phones)
	rec.Addresses = unionAddresses(rec.Addresses, card.Addresses)

	if card.URL != "" {
		insertNote(rec, noteKeyWWW, "", card.URL)
	}
	if len(card.NotesText) > 0 {
		insertNote(rec, noteKeyNotes, noteKeyNotesAlt, strings.Join(card.NotesText, ";\n"))
	}
	if card.Birthday != "" {
		insertNote(rec, noteKeyAnniversary, "", card.Birthday+" birthday")
	}

	drainUnclaimed(rec, card.Unclaimed, skip)

	rec.Notes = dedupeNotes(rec.Notes)
}

// insertNote adds (key, value) unless that exact pair is already present.
// When the key is taken by a different value and an alternate key exists,
// the entry goes under the alternate instead of overwriting.
func insertNote(rec *models.ContactRecord, key, altKey, value string) {
	if hasNotePair(rec, key, value) {
		return
	}
	if altKey != "" && rec.HasNoteKey(key) {
		if hasNotePair(rec, altKey, value) {
			return
		}
		rec.Notes = append(rec.Notes, models.NoteEntry{Key: altKey, Value: value})
		return
	}
	rec.Notes = append(rec.Notes, models.NoteEntry{Key: key, Value: value})
}

// drainUnclaimed moves every property line no converter consumed into the
// notes list, keyed by its lowercased type text, unless the key matches the
// configured skip pattern.
func drainUnclaimed(rec *models.ContactRecord, body string, skip *regexp.Regexp) {
	for {
		key, value, residual, ok := vcard.NextOtherEntry(body)
		if !ok {
			return
		}
		body = residual

		if skip != nil && skip.MatchString(key) {
			continue
		}
		rec.Notes = append(rec.Notes, models.NoteEntry{Key: key, Value: value})
	}
}

func hasNotePair(rec *models.ContactRecord, key, value string) bool {
	for _, n := range rec.Notes {
		if n.Key == key && n.Value == value {
			return true
		}
	}
	return false
}

func dedupeNotes(notes []models.NoteEntry) []models.NoteEntry {
	seen := make(map[models.NoteEntry]bool, len(notes))
	kept := notes[:0:0]
	for _, n := range notes {
		if seen[n] {
			continue
		}
		seen[n] = true
		kept = append(kept, n)
	}
	return kept
}

func unionStrings(existing []string, additions ...[]string) []string {
	result := append([]string(nil), existing...)
	for _, list := range additions {
		for _, s := range list {
			if !containsString(result, s) {
				result = append(result, s)
			}
		}
	}
	return result
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

func unionPhones(existing, additions []models.Phone) []models.Phone {
	result := append([]models.Phone(nil), existing...)
	for _, p := range additions {
		dup := false
		for _, e := range result {
			if e.Equal(p) {
				dup = true
				break
			}
		}
		if !dup {
			result = append(result, p)
		}
	}
	return result
}

func unionAddresses(existing, additions []models.Address) []models.Address {
	result := append([]models.Address(nil), existing...)
	for _, a := range additions {
		dup := false
		for _, e := range result {
			if e.Equal(a) {
				dup = true
				break
			}
		}
		if !dup {
			result = append(result, a)
		}
	}
	return result
}
