package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = "VERSION:3.0\n" +
	"N:Smith;John;Quincy;Dr.;Jr.\n" +
	"EMAIL;TYPE=INTERNET:john@acme.com\n" +
	"EMAIL:jsmith@home.net\n" +
	"TEL;TYPE=CELL,VOICE:555-1234\n" +
	"X-CUSTOM:foo"

func TestExtractClaimsLines(t *testing.T) {
	entries, residual := Extract(sampleBody, "EMAIL", false)

	require.Len(t, entries, 2)
	assert.Equal(t, "john@acme.com", entries[0].Value)
	assert.Equal(t, "jsmith@home.net", entries[1].Value)

	// Claimed lines are gone from the residual.
	assert.NotContains(t, residual, "EMAIL")
	assert.Contains(t, residual, "TEL;TYPE=CELL,VOICE:555-1234")
}

func TestExtractFirstOnly(t *testing.T) {
	entries, residual := Extract(sampleBody, "EMAIL", true)

	require.Len(t, entries, 1)
	assert.Equal(t, "john@acme.com", entries[0].Value)

	// The second EMAIL stays unclaimed in the residual.
	assert.Contains(t, residual, "EMAIL:jsmith@home.net")
}

func TestExtractCaseInsensitiveType(t *testing.T) {
	entries, _ := Extract("email:lower@case.org", "EMAIL", false)
	require.Len(t, entries, 1)
	assert.Equal(t, "lower@case.org", entries[0].Value)
}

func TestExtractStructuredName(t *testing.T) {
	entries, _ := Extract(sampleBody, "N", false)

	require.Len(t, entries, 1)
	require.Len(t, entries[0].Fields, 5)
	assert.Equal(t, []string{"Smith", "John", "Quincy", "Dr.", "Jr."}, entries[0].Fields)
}

func TestExtractForcedListSingleComponent(t *testing.T) {
	// N is always structured even without separators.
	entries, _ := Extract("N:Cher", "N", false)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Cher"}, entries[0].Fields)
	assert.Empty(t, entries[0].Value)
}

func TestExtractParams(t *testing.T) {
	entries, _ := Extract(sampleBody, "TEL", false)

	require.Len(t, entries, 1)
	// Param keys and values lowercased; TYPE comma list split into values.
	assert.Equal(t, []string{"cell", "voice"}, entries[0].TypeParams())
	assert.Equal(t, "555-1234", entries[0].Value)
}

func TestExtractGroupPrefix(t *testing.T) {
	entries, residual := Extract("item1.TEL;TYPE=HOME:555-9999\nFN:Rest", "TEL", false)

	require.Len(t, entries, 1)
	assert.Equal(t, "item1", entries[0].Group)
	assert.Equal(t, "555-9999", entries[0].Value)
	assert.Equal(t, "FN:Rest", residual)
}

func TestExtractValueWithColon(t *testing.T) {
	entries, _ := Extract("URL:http://example.com/x", "URL", true)
	require.Len(t, entries, 1)
	assert.Equal(t, "http://example.com/x", entries[0].Value)
}

func TestNextOtherEntryDrainsRemaining(t *testing.T) {
	body := "X-CUSTOM:foo\nTITLE;LANGUAGE=en:Boss"

	key, value, residual, ok := NextOtherEntry(body)
	require.True(t, ok)
	assert.Equal(t, "x-custom", key)
	assert.Equal(t, "foo", value)

	// Parameter text stays in the key, verbatim apart from lowercasing.
	key, value, residual, ok = NextOtherEntry(residual)
	require.True(t, ok)
	assert.Equal(t, "title;language=en", key)
	assert.Equal(t, "Boss", value)

	_, _, _, ok = NextOtherEntry(residual)
	assert.False(t, ok)
	assert.False(t, strings.Contains(residual, ":"))
}
