package driven

import (
	"context"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

// CorpusProvider produces an ordered sequence of flat records from an
// opaque corpus export. It decouples the normaliser from any specific
// collaborator's internal representation: the provider alone knows how
// the export is laid out and which source names its columns carry.
type CorpusProvider interface {
	// Fetch reads the export once and returns it as a raw table.
	// Row order is the export's own order; Fetch never reorders.
	Fetch(ctx context.Context) (*domain.RawTable, error)

	// Mapping returns the canonical-to-source column name mapping for
	// this provider's export format.
	Mapping() domain.ColumnMapping
}
