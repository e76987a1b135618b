// ABOUTME: Import log operations
// ABOUTME: Records one row per committed card for later inspection
package db

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// LogImport appends one import-log row. The id is a ULID so log order
// follows import order.
func LogImport(db *sql.DB, source string, recordID uuid.UUID, outcome string) error {
	_, err := db.Exec(`
		INSERT INTO import_log (id, source, record_id, outcome)
		VALUES (?, ?, ?, ?)
	`, ulid.Make().String(), source, recordID.String(), outcome)
	return err
}

// CountImports returns the number of import-log rows for a record.
func CountImports(db *sql.DB, recordID uuid.UUID) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM import_log WHERE record_id = ?`, recordID.String()).Scan(&count)
	return count, err
}
