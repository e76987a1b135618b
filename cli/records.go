// ABOUTME: Record listing CLI command
// ABOUTME: Human-friendly table of contact records
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/vimport/db"
	"github.com/harperreed/vimport/models"
)

// ListRecordsCommand prints the contact records as a table.
func ListRecordsCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	query := fs.String("query", "", "Filter by name or email substring")
	limit := fs.Int("limit", 50, "Max results")
	_ = fs.Parse(args)

	records, err := db.NewStore(database).AllRecords()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOMPANY\tEMAILS\tPHONES\tAKA")

	shown := 0
	needle := strings.ToLower(*query)
	for _, rec := range records {
		if shown >= *limit {
			break
		}
		if needle != "" && !matchesQuery(rec.FullName(), rec.Nets, needle) {
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.FullName(),
			firstLine(rec.Company),
			strings.Join(rec.Nets, ", "),
			phoneSummary(rec),
			strings.Join(rec.AKA, ", "),
		)
		shown++
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d record(s)\n", shown)
	return nil
}

func matchesQuery(name string, nets []string, needle string) bool {
	if strings.Contains(strings.ToLower(name), needle) {
		return true
	}
	for _, net := range nets {
		if strings.Contains(strings.ToLower(net), needle) {
			return true
		}
	}
	return false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func phoneSummary(rec *models.ContactRecord) string {
	parts := make([]string, 0, len(rec.Phones))
	for _, p := range rec.Phones {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Label, p.Number))
	}
	return strings.Join(parts, ", ")
}
