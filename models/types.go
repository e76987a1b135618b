// ABOUTME: Data models for contact records
// ABOUTME: Defines ContactRecord, Phone, Address, and NoteEntry structs
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactRecord is a single entry in the contact database. Multi-valued
// fields (AKA, Nets, Phones, Addresses) never hold two equal elements after a
// merge; Notes is an ordered key/value list deduplicated on the exact
// (key, value) pair.
type ContactRecord struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"firstname,omitempty"`
	LastName  string      `json:"lastname,omitempty"`
	AKA       []string    `json:"aka,omitempty"`
	Company   string      `json:"company,omitempty"`
	Phones    []Phone     `json:"phones,omitempty"`
	Addresses []Address   `json:"addresses,omitempty"`
	Nets      []string    `json:"nets,omitempty"`
	Notes     []NoteEntry `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type Phone struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

type Address struct {
	Label   string   `json:"label"`
	Lines   []string `json:"lines,omitempty"`
	City    string   `json:"city,omitempty"`
	State   string   `json:"state,omitempty"`
	Zip     string   `json:"zip,omitempty"`
	Country string   `json:"country,omitempty"`
}

// NoteEntry is one entry in a record's raw-notes list. Keys need not be
// unique; the (key, value) pair is.
type NoteEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FullName returns "First Last" with absent parts omitted.
func (r *ContactRecord) FullName() string {
	parts := make([]string, 0, 2)
	if r.FirstName != "" {
		parts = append(parts, r.FirstName)
	}
	if r.LastName != "" {
		parts = append(parts, r.LastName)
	}
	return strings.Join(parts, " ")
}

// HasNoteKey reports whether any notes entry uses the given key.
func (r *ContactRecord) HasNoteKey(key string) bool {
	for _, n := range r.Notes {
		if n.Key == key {
			return true
		}
	}
	return false
}

// Equal compares two phones field by field.
func (p Phone) Equal(other Phone) bool {
	return p.Label == other.Label && p.Number == other.Number
}

// Equal compares two addresses field by field, lines included.
func (a Address) Equal(other Address) bool {
	if a.Label != other.Label || a.City != other.City || a.State != other.State ||
		a.Zip != other.Zip || a.Country != other.Country {
		return false
	}
	if len(a.Lines) != len(other.Lines) {
		return false
	}
	for i := range a.Lines {
		if a.Lines[i] != other.Lines[i] {
			return false
		}
	}
	return true
}
