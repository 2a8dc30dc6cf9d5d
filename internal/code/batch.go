package code

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// batchSeparator splits a pasted blob into candidate codes on any run of
// commas and line breaks.
var batchSeparator = regexp.MustCompile(`[,\r\n]+`)

// Batch is an ordered list of validated codes with no duplicates. A Batch
// returned by ParseBatch is never empty.
type Batch []Code

// Strings returns the batch as plain strings, in order.
func (b Batch) Strings() []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = c.String()
	}
	return out
}

var (
	// ErrNoCodes means the request carried no non-empty candidates at all.
	ErrNoCodes = errors.New("no codes provided")
	// ErrNoValidCodes means every candidate vanished during filtering.
	ErrNoValidCodes = errors.New("no valid codes provided")
)

// BatchError aggregates every candidate that failed the grammar. Batch
// validation is all-or-nothing: one bad candidate fails the whole request,
// and all offenders are reported together.
type BatchError struct {
	Bad []string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("invalid code format: %s", strings.Join(e.Bad, ", "))
}

// ParseBatch collects candidate codes from the repeated values followed by
// the delimited blob, preserving order of appearance. Empty candidates are
// dropped silently. Each survivor is normalized and validated; duplicates
// (after normalization) keep their first position and later occurrences are
// skipped.
func ParseBatch(values []string, blob string) (Batch, error) {
	candidates := make([]string, 0, len(values))
	candidates = append(candidates, values...)
	if blob != "" {
		candidates = append(candidates, batchSeparator.Split(blob, -1)...)
	}

	var (
		batch        Batch
		bad          []string
		seen         = make(map[string]struct{})
		sawCandidate bool
	)
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		sawCandidate = true
		parsed, err := Parse(candidate)
		if err != nil {
			bad = append(bad, Normalize(candidate))
			continue
		}
		if _, dup := seen[parsed.String()]; dup {
			continue
		}
		seen[parsed.String()] = struct{}{}
		batch = append(batch, parsed)
	}
	if !sawCandidate {
		return nil, ErrNoCodes
	}
	if len(bad) > 0 {
		return nil, &BatchError{Bad: bad}
	}
	if len(batch) == 0 {
		return nil, ErrNoValidCodes
	}
	return batch, nil
}
