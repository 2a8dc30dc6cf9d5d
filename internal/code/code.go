// Package code implements the identifier grammar shared by every endpoint:
// normalization, validation, filename sanitizing and batch parsing.
package code

import (
	"fmt"
	"regexp"
	"strings"
)

// codePattern is the full grammar for an operator code, anchored at both
// ends: a prefix letter I or C, an uppercase series, a number and a
// two-digit year, e.g. I-MCE-169369/25.
var codePattern = regexp.MustCompile(`^(I|C)-[A-Z]+-[0-9]+/[0-9]{2}$`)

// filenameUnsafe matches every run of characters that may not appear in a
// stored artifact name.
var filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Code is a validated operator code. The zero value is invalid; construct
// one through Parse.
type Code struct {
	value string
}

// String returns the normalized code text.
func (c Code) String() string { return c.value }

// IsZero reports whether the code was never parsed.
func (c Code) IsZero() bool { return c.value == "" }

// FormatError reports a single input that failed the code grammar. Value
// holds the normalized form of the offending input.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid code format %q: expected (I|C)-[A-Z]+-<number>/<yy>, e.g. I-MCE-169369/25", e.Value)
}

// Normalize trims surrounding whitespace and upper-cases the remainder,
// matching what the entry form does client-side.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Parse normalizes raw and validates it against the code grammar.
func Parse(raw string) (Code, error) {
	normalized := Normalize(raw)
	if !codePattern.MatchString(normalized) {
		return Code{}, &FormatError{Value: normalized}
	}
	return Code{value: normalized}, nil
}

// SanitizeFilename derives a filesystem-safe base name from s. Runs of
// characters outside [A-Za-z0-9._-] collapse to a single underscore and
// surrounding underscores are stripped. Never fails: an input with no safe
// characters yields "code".
func SanitizeFilename(s string) string {
	out := strings.Trim(filenameUnsafe.ReplaceAllString(s, "_"), "_")
	if out == "" {
		return "code"
	}
	return out
}
