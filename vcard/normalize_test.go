package vcard

import "testing"

func TestNormalizeLineEndings(t *testing.T) {
	// CR-only, LF-only, and CRLF input must normalize to identical bytes.
	inputs := map[string]string{
		"crlf": "BEGIN:VCARD\r\nVERSION:3.0\r\nEND:VCARD\r\n",
		"lf":   "BEGIN:VCARD\nVERSION:3.0\nEND:VCARD\n",
		"cr":   "BEGIN:VCARD\rVERSION:3.0\rEND:VCARD\r",
	}

	want := "BEGIN:VCARD\nVERSION:3.0\nEND:VCARD\n"
	for style, input := range inputs {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%s) = %q, want %q", style, got, want)
		}
	}
}

func TestNormalizeUnfolding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"space continuation", "NOTE:part o\n ne\n", "NOTE:part one\n"},
		{"tab continuation", "NOTE:part o\n\tne\n", "NOTE:part one\n"},
		{"folded crlf", "NOTE:abc\r\n def\r\n", "NOTE:abcdef\n"},
		{"no folding", "NOTE:plain\nTEL:555\n", "NOTE:plain\nTEL:555\n"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestNormalizeFoldingRoundTrip(t *testing.T) {
	// A folded value unfolds to the same string as the unfolded original.
	unfolded := "NOTE:this line was never folded at all\n"
	folded := "NOTE:this line was nev\n er folded at all\n"

	if Normalize(folded) != Normalize(unfolded) {
		t.Errorf("folded form %q != unfolded form %q after Normalize", Normalize(folded), Normalize(unfolded))
	}
}
