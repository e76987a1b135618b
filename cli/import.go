// ABOUTME: vCard import CLI command
// ABOUTME: Reads .vcf files and runs them through the importer
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/harperreed/vimport/db"
	"github.com/harperreed/vimport/importer"
)

// ImportCommand imports one or more vCard files into the contact database.
func ImportCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	skipPattern := fs.String("skip-pattern", os.Getenv("VIMPORT_SKIP_PATTERN"), "Regexp for property keys to drop (empty skips nothing)")
	labelsPath := fs.String("labels", os.Getenv("VIMPORT_LABELS"), "Path to a JSON label translation table")
	dryRun := fs.Bool("dry-run", false, "Parse and report without committing")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: vimport import [flags] <file.vcf> [more files]")
	}

	cfg := importer.Config{DryRun: *dryRun}

	if *skipPattern != "" {
		pat, err := regexp.Compile(*skipPattern)
		if err != nil {
			return fmt.Errorf("invalid skip pattern: %w", err)
		}
		cfg.SkipPattern = pat
	}

	if *labelsPath != "" {
		table, err := importer.LoadLabelTable(*labelsPath)
		if err != nil {
			return err
		}
		cfg.Labels = table
	}

	im := importer.NewImporter(db.NewStore(database), cfg)

	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		fmt.Printf("Importing %s...\n", path)
		summary, err := im.ImportText(string(data))
		if err != nil {
			return fmt.Errorf("import of %s failed: %w", path, err)
		}

		fmt.Printf("\n✓ Processed %d cards from %s\n", summary.Cards, path)
		if summary.Created > 0 {
			fmt.Printf("  ✓ Created %d new records\n", summary.Created)
		}
		if summary.Updated > 0 {
			fmt.Printf("  ✓ Updated %d existing records\n", summary.Updated)
		}
		if summary.Failed > 0 {
			fmt.Printf("  ✗ %d cards failed\n", summary.Failed)
		}
	}

	return nil
}
