// ABOUTME: vCard import loop
// ABOUTME: Parses, matches, merges, and commits each card in an input text
package importer

import (
	"fmt"
	"log"
	"regexp"

	"github.com/harperreed/vimport/models"
	"github.com/harperreed/vimport/vcard"
)

// Config is the externally supplied configuration surface: the skip pattern
// for drained property keys (nil skips nothing) and the label translation
// table.
type Config struct {
	SkipPattern *regexp.Regexp
	Labels      LabelTable
	DryRun      bool
}

type Importer struct {
	db  Database
	cfg Config
}

// Summary counts the outcome of one import run.
type Summary struct {
	Cards   int
	Created int
	Updated int
	Failed  int
}

func NewImporter(db Database, cfg Config) *Importer {
	if cfg.Labels == nil {
		cfg.Labels = DefaultLabelTable()
	}
	return &Importer{db: db, cfg: cfg}
}

// ImportText normalizes text and imports every card in it. A failure on one
// card is logged and counted; it never stops the remaining cards.
func (im *Importer) ImportText(text string) (*Summary, error) {
	summary := &Summary{}

	err := vcard.ForEachCard(vcard.Normalize(text), func(body string) error {
		summary.Cards++

		rec, created, err := im.ImportCard(body)
		switch {
		case err != nil:
			summary.Failed++
			log.Printf("  ✗ Failed to import card %d: %v", summary.Cards, err)
		case created:
			summary.Created++
			fmt.Printf("  ✓ Created %s\n", describeRecord(rec))
		default:
			summary.Updated++
			fmt.Printf("  ✓ Updated %s\n", describeRecord(rec))
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	return summary, nil
}

// ImportCard imports a single card body: parse, match, merge, commit. The
// returned flag reports whether a new record was created. Database failures
// propagate to the caller as the card's failure.
func (im *Importer) ImportCard(body string) (*models.ContactRecord, bool, error) {
	card := ParseCard(body, im.cfg.Labels)

	if card.Version != "3.0" {
		log.Printf("warning: vCard version %q, expected 3.0; parsing best-effort", card.Version)
	}

	rec, err := FindMatch(im.db, card)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query records: %w", err)
	}

	created := false
	if rec == nil {
		rec = im.db.CreateRecord()
		created = true
	}

	Merge(rec, card, im.cfg.SkipPattern)

	if im.cfg.DryRun {
		return rec, created, nil
	}

	if err := im.db.Commit(rec, !created); err != nil {
		return nil, false, fmt.Errorf("failed to commit record: %w", err)
	}

	return rec, created, nil
}

func describeRecord(rec *models.ContactRecord) string {
	name := rec.FullName()
	if name == "" {
		name = "(unnamed record)"
	}
	if rec.Company != "" {
		return fmt.Sprintf("%s (%s)", name, rec.Company)
	}
	return name
}
