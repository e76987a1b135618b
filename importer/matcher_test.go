package importer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/vimport/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(first, last, company string, nets ...string) *models.ContactRecord {
	return &models.ContactRecord{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
		Company:   company,
		Nets:      nets,
	}
}

func TestFindMatchFullCascade(t *testing.T) {
	target := record("John", "Smith", "Acme", "john@acme.com")
	db := &fakeDatabase{records: []*models.ContactRecord{
		record("John", "Smith", "Other Corp", "john@other.com"),
		target,
	}}

	card := &ParsedContact{
		HasName:      true,
		GivenName:    "John",
		FamilyName:   "Smith",
		Organization: "Acme",
		Emails:       []string{"john@acme.com"},
	}

	match, err := FindMatch(db, card)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, target.ID, match.ID)
}

func TestFindMatchOrgAndNameWhenEmailDiffers(t *testing.T) {
	// Same N and ORG but a different EMAIL still finds the record via the
	// second tier.
	target := record("John", "Smith", "Acme", "john@acme.com")
	db := &fakeDatabase{records: []*models.ContactRecord{target}}

	card := &ParsedContact{
		HasName:      true,
		GivenName:    "John",
		FamilyName:   "Smith",
		Organization: "Acme",
		Emails:       []string{"jsmith@personal.net"},
	}

	match, err := FindMatch(db, card)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, target.ID, match.ID)
}

func TestFindMatchEmailTierIgnoresOrg(t *testing.T) {
	target := record("John", "Smith", "Totally Different Co", "john@acme.com")
	db := &fakeDatabase{records: []*models.ContactRecord{target}}

	card := &ParsedContact{
		HasName:    true,
		GivenName:  "John",
		FamilyName: "Smith",
		Emails:     []string{"john@acme.com"},
	}

	match, err := FindMatch(db, card)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, target.ID, match.ID)
}

func TestFindMatchNameOrderingTolerant(t *testing.T) {
	// The name pattern is "given .* family", so it also hits AKA strings
	// that carry extra text between the parts.
	target := record("", "", "Acme")
	target.AKA = []string{"John Quincy Smith"}
	db := &fakeDatabase{records: []*models.ContactRecord{target}}

	card := &ParsedContact{
		HasName:      true,
		GivenName:    "John",
		FamilyName:   "Smith",
		Organization: "Acme",
	}

	match, err := FindMatch(db, card)
	require.NoError(t, err)
	require.NotNil(t, match)
}

func TestFindMatchNoName(t *testing.T) {
	db := &fakeDatabase{records: []*models.ContactRecord{
		record("John", "Smith", "Acme", "john@acme.com"),
	}}

	match, err := FindMatch(db, &ParsedContact{Emails: []string{"john@acme.com"}})
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestFindMatchNoMatch(t *testing.T) {
	db := &fakeDatabase{records: []*models.ContactRecord{
		record("Alice", "Jones", "Acme", "alice@acme.com"),
	}}

	card := &ParsedContact{
		HasName:      true,
		GivenName:    "John",
		FamilyName:   "Smith",
		Organization: "Acme",
		Emails:       []string{"john@acme.com"},
	}

	match, err := FindMatch(db, card)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestFindMatchSkipsAttemptsWithAbsentFields(t *testing.T) {
	// No org and no email on the card: every attempt is skipped, no match.
	db := &fakeDatabase{records: []*models.ContactRecord{
		record("John", "Smith", "Acme", "john@acme.com"),
	}}

	card := &ParsedContact{HasName: true, GivenName: "John", FamilyName: "Smith"}

	match, err := FindMatch(db, card)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestFindMatchQueryFailure(t *testing.T) {
	db := &fakeDatabase{failQuery: true}
	card := &ParsedContact{HasName: true, GivenName: "John", FamilyName: "Smith", Organization: "Acme"}

	_, err := FindMatch(db, card)
	assert.Error(t, err)
}
