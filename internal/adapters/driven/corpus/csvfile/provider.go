// Package csvfile reads the collaborator's CSV export as a corpus provider.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.CorpusProvider = (*Provider)(nil)

// Source column names in the collaborator's export format.
// These names are the provider's external boundary; the rest of the
// pipeline only ever sees canonical names.
const (
	sourceSurname   = "last_name"
	sourceGivenName = "first_name"
	sourceParty     = "party"
	sourceDate      = "date"
	sourceDocType   = "doc_type"
	sourceDelivery  = "delivery"
	sourceText      = "text"
)

// Provider is a file-backed corpus provider over the collaborator's
// CSV export. The file is opened, fully consumed, and closed on every
// Fetch; row order is preserved exactly.
type Provider struct {
	path string
}

// New creates a provider for an export file.
func New(path string) *Provider {
	return &Provider{path: path}
}

// Fetch reads the export into a raw table.
func (p *Provider) Fetch(_ context.Context) (*domain.RawTable, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus export: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Bodies contain newlines; fields per record still must agree.
	reader.FieldsPerRecord = 0

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading corpus export: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	return &domain.RawTable{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// Mapping returns the canonical-to-source column mapping for this
// export format.
func (p *Provider) Mapping() domain.ColumnMapping {
	return domain.ColumnMapping{
		domain.ColumnSpeakerSurname:   sourceSurname,
		domain.ColumnSpeakerGivenName: sourceGivenName,
		domain.ColumnAffiliation:      sourceParty,
		domain.ColumnOccurredOn:       sourceDate,
		domain.ColumnCategory:         sourceDocType,
		domain.ColumnDeliveryMode:     sourceDelivery,
		domain.ColumnBody:             sourceText,
	}
}

// Path returns the export file location.
func (p *Provider) Path() string {
	return p.path
}
