package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/logger"
)

// dateLayouts are the accepted occurred_on formats, tried in order.
// ISO first; the long form survives from older collaborator exports.
var dateLayouts = []string{
	domain.DateLayout,
	"January 2, 2006",
}

// Normaliser converts a raw corpus export into the canonical table.
// The steps run in a fixed order for determinism:
// rename, project, parse dates, sort, validate.
type Normaliser struct {
	mapping domain.ColumnMapping
}

// NewNormaliser creates a normaliser for a provider's column mapping.
func NewNormaliser(mapping domain.ColumnMapping) *Normaliser {
	return &Normaliser{mapping: mapping}
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Table holds the records in canonical shape and order.
	// Its length always equals the raw table's row count.
	Table domain.Table

	// DroppedColumns lists source columns outside the canonical set,
	// sorted. The drop list is part of the contract.
	DroppedColumns []string
}

// Normalise transforms a raw table into the canonical table.
// Normalisation never drops or adds documents, only reshapes and
// validates; any error means the result must not be written anywhere.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawTable) (*NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if len(raw.Rows) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	// Rename: resolve every canonical column to its source position.
	logger.Section("Normalise")
	indexes, err := n.resolveColumns(raw)
	if err != nil {
		return nil, err
	}

	dropped := droppedColumns(raw.Columns, indexes)
	if len(dropped) > 0 {
		logger.Debug("dropping source columns outside the canonical set: %s",
			strings.Join(dropped, ", "))
	}

	// Project + parse: build canonical records, dates first so a
	// malformed date is reported against the raw row position.
	table := make(domain.Table, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		occurredOn, err := parseDate(row[indexes[domain.ColumnOccurredOn]])
		if err != nil {
			return nil, &domain.MalformedDateError{
				Row:   i,
				Value: row[indexes[domain.ColumnOccurredOn]],
			}
		}

		table = append(table, domain.Record{
			SpeakerSurname:   strings.TrimSpace(row[indexes[domain.ColumnSpeakerSurname]]),
			SpeakerGivenName: strings.TrimSpace(row[indexes[domain.ColumnSpeakerGivenName]]),
			Affiliation:      strings.TrimSpace(row[indexes[domain.ColumnAffiliation]]),
			OccurredOn:       occurredOn,
			Category:         strings.TrimSpace(row[indexes[domain.ColumnCategory]]),
			DeliveryMode:     strings.TrimSpace(row[indexes[domain.ColumnDeliveryMode]]),
			Body:             cleanBody(row[indexes[domain.ColumnBody]]),
		})
	}

	// Sort: the canonical order. Stable so equal keys keep export order.
	sort.SliceStable(table, func(i, j int) bool {
		if !table[i].OccurredOn.Equal(table[j].OccurredOn) {
			return table[i].OccurredOn.Before(table[j].OccurredOn)
		}
		return table[i].SpeakerSurname < table[j].SpeakerSurname
	})

	// Validate: collect every required-field violation, not just the first.
	if err := validateRequired(table); err != nil {
		return nil, err
	}

	logger.Info("normalised %d documents", len(table))
	return &NormaliseResult{Table: table, DroppedColumns: dropped}, nil
}

// resolveColumns maps each canonical column to its index in the raw table.
func (n *Normaliser) resolveColumns(raw *domain.RawTable) (map[string]int, error) {
	indexes := make(map[string]int, len(n.mapping))
	for _, canonical := range domain.CanonicalColumns() {
		source, ok := n.mapping[canonical]
		if !ok {
			return nil, &domain.SchemaMismatchError{Column: canonical}
		}
		idx := raw.ColumnIndex(source)
		if idx < 0 {
			return nil, &domain.SchemaMismatchError{Column: source}
		}
		indexes[canonical] = idx
	}
	return indexes, nil
}

// droppedColumns returns source columns not claimed by any canonical
// column, sorted for deterministic reporting.
func droppedColumns(columns []string, indexes map[string]int) []string {
	kept := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		kept[idx] = true
	}

	var dropped []string
	for i, name := range columns {
		if !kept[i] {
			dropped = append(dropped, name)
		}
	}
	sort.Strings(dropped)
	return dropped
}

// parseDate parses an occurred_on cell. The result is midnight UTC;
// only the calendar date is meaningful.
func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// validateRequired scans the whole table and returns a ValidationError
// carrying every (row, field) violation, or nil if the table is clean.
func validateRequired(table domain.Table) error {
	var violations []domain.Violation
	for i := range table {
		for _, field := range domain.RequiredColumns() {
			if table[i].Field(field) == "" {
				violations = append(violations, domain.Violation{Row: i, Field: field})
			}
		}
	}
	if len(violations) == 0 {
		return nil
	}

	err := &domain.ValidationError{Violations: violations}
	err.Sort()
	return err
}

// cleanBody normalises body whitespace: CRLF to LF, trailing space
// stripped per line, outer whitespace trimmed. Content is untouched.
func cleanBody(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
