// ABOUTME: Contact record database operations
// ABOUTME: Implements the query/create/commit surface the importer consumes
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/vimport/models"
)

// Store wraps a SQLite handle with the three contact-database operations the
// importer consumes: a full record listing for predicate narrowing, blank
// record creation, and commit.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// AllRecords loads every record, oldest first.
func (s *Store) AllRecords() ([]*models.ContactRecord, error) {
	rows, err := s.DB.Query(`
		SELECT id, firstname, lastname, company, aka, nets, phones, addresses, notes, created_at, updated_at
		FROM records
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.ContactRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// GetRecord loads one record by id, or nil when absent.
func (s *Store) GetRecord(id uuid.UUID) (*models.ContactRecord, error) {
	rows, err := s.DB.Query(`
		SELECT id, firstname, lastname, company, aka, nets, phones, addresses, notes, created_at, updated_at
		FROM records WHERE id = ?
	`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRecord(rows)
}

// CreateRecord hands out a blank record ready for field assignment. The
// record only reaches the database on its first Commit.
func (s *Store) CreateRecord() *models.ContactRecord {
	return &models.ContactRecord{ID: uuid.New()}
}

// Commit persists the record's field assignments: an INSERT for a fresh
// record, an UPDATE otherwise. Each successful commit is also noted in the
// import log; a logging failure is a warning, never the card's failure.
func (s *Store) Commit(rec *models.ContactRecord, isUpdate bool) error {
	now := time.Now()
	rec.UpdatedAt = now

	aka, err := encodeList(rec.AKA)
	if err != nil {
		return err
	}
	nets, err := encodeList(rec.Nets)
	if err != nil {
		return err
	}
	phones, err := encodeList(rec.Phones)
	if err != nil {
		return err
	}
	addresses, err := encodeList(rec.Addresses)
	if err != nil {
		return err
	}
	notes, err := encodeList(rec.Notes)
	if err != nil {
		return err
	}

	if isUpdate {
		_, err = s.DB.Exec(`
			UPDATE records
			SET firstname = ?, lastname = ?, company = ?, aka = ?, nets = ?, phones = ?, addresses = ?, notes = ?, updated_at = ?
			WHERE id = ?
		`, rec.FirstName, rec.LastName, rec.Company, aka, nets, phones, addresses, notes, rec.UpdatedAt, rec.ID.String())
	} else {
		rec.CreatedAt = now
		_, err = s.DB.Exec(`
			INSERT INTO records (id, firstname, lastname, company, aka, nets, phones, addresses, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID.String(), rec.FirstName, rec.LastName, rec.Company, aka, nets, phones, addresses, notes, rec.CreatedAt, rec.UpdatedAt)
	}
	if err != nil {
		return err
	}

	outcome := "created"
	if isUpdate {
		outcome = "updated"
	}
	if err := LogImport(s.DB, rec.FullName(), rec.ID, outcome); err != nil {
		log.Printf("warning: failed to write import log: %v", err)
	}

	return nil
}

func scanRecord(rows *sql.Rows) (*models.ContactRecord, error) {
	rec := &models.ContactRecord{}
	var id string
	var aka, nets, phones, addresses, notes string

	if err := rows.Scan(&id, &rec.FirstName, &rec.LastName, &rec.Company,
		&aka, &nets, &phones, &addresses, &notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record id %q: %w", id, err)
	}
	rec.ID = parsed

	cols := []struct {
		data string
		dest any
	}{
		{aka, &rec.AKA},
		{nets, &rec.Nets},
		{phones, &rec.Phones},
		{addresses, &rec.Addresses},
		{notes, &rec.Notes},
	}
	for _, c := range cols {
		if err := json.Unmarshal([]byte(c.data), c.dest); err != nil {
			return nil, fmt.Errorf("corrupt record column: %w", err)
		}
	}

	return rec, nil
}

func encodeList(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	// Normalize nil slices so columns always hold a JSON array.
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}
