// ABOUTME: Database schema definitions and migrations
// ABOUTME: Handles SQLite table creation and initialization
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	firstname TEXT,
	lastname TEXT,
	company TEXT,
	aka TEXT NOT NULL DEFAULT '[]',
	nets TEXT NOT NULL DEFAULT '[]',
	phones TEXT NOT NULL DEFAULT '[]',
	addresses TEXT NOT NULL DEFAULT '[]',
	notes TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_lastname ON records(lastname);
CREATE INDEX IF NOT EXISTS idx_records_company ON records(company);

CREATE TABLE IF NOT EXISTS import_log (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	record_id TEXT NOT NULL,
	outcome TEXT NOT NULL CHECK(outcome IN ('created', 'updated')),
	imported_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_import_log_record ON import_log(record_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
