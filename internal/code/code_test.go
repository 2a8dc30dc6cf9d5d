package code

import (
	"errors"
	"testing"
)

func TestParseAcceptsNormalizedInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"I-MCE-169369/25", "I-MCE-169369/25"},
		{"  i-mce-169369/25 ", "I-MCE-169369/25"},
		{"c-ab-1/00", "C-AB-1/00"},
		{"C-LONGSERIES-99999999/99", "C-LONGSERIES-99999999/99"},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("Parse(%q) = %q, want %q", tc.in, got.String(), tc.want)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"X-MCE-1/25",       // wrong prefix letter
		"I-MCE-1/253",      // three-digit year
		"I-MCE-1-25",       // missing slash
		"I--1/25",          // empty series
		"I-MCE-/25",        // empty number
		"I-MCE-1/25 extra", // trailing garbage survives trimming
		"prefix I-MCE-1/25",
		"I-MC3-1/25", // digit in series
	}
	for _, in := range cases {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, want format error", in)
		}
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("Parse(%q) error %T, want *FormatError", in, err)
		}
	}
}

func TestParseReportsNormalizedOffender(t *testing.T) {
	_, err := Parse("  bad code ")
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
	if ferr.Value != "BAD CODE" {
		t.Fatalf("offender = %q, want %q", ferr.Value, "BAD CODE")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"I-MCE-169369/25", "I-MCE-169369_25"},
		{"a b/c", "a_b_c"},
		{"...", "..."},
		{"__x__", "x"},
		{"", "code"},
		{"###", "code"},
		{"///", "code"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFilenameIdempotent(t *testing.T) {
	inputs := []string{"I-MCE-169369/25", "a b/c", "", "###", "plain"}
	for _, in := range inputs {
		once := SanitizeFilename(in)
		if twice := SanitizeFilename(once); twice != once {
			t.Fatalf("sanitize not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}
