package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCorpus indicates the raw export contained no documents.
	ErrEmptyCorpus = errors.New("corpus contains no documents")
)

// SchemaMismatchError reports an expected source column missing from the
// raw export. It is fatal: no output artifact is written.
type SchemaMismatchError struct {
	// Column is the missing source column name.
	Column string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: source column %q not present in raw table", e.Column)
}

// MalformedDateError reports a date cell that could not be parsed.
// Row is the zero-based position within the raw export.
type MalformedDateError struct {
	Row   int
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("row %d: malformed date %q", e.Row, e.Value)
}

// Violation is one required-field failure found during validation.
type Violation struct {
	// Row is the zero-based position within the canonical (sorted) table.
	Row int

	// Field is the canonical column name that was empty.
	Field string
}

// ValidationError carries every required-field violation found in a run,
// so a single failure surfaces the complete repair list.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("row %d missing %s", v.Row, v.Field))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Sort orders violations by row, then field, for deterministic reporting.
func (e *ValidationError) Sort() {
	sort.Slice(e.Violations, func(i, j int) bool {
		if e.Violations[i].Row != e.Violations[j].Row {
			return e.Violations[i].Row < e.Violations[j].Row
		}
		return e.Violations[i].Field < e.Violations[j].Field
	})
}
