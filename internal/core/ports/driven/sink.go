package driven

import (
	"context"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

// TableSink persists the canonical corpus table.
// Writes replace any prior artifact at the same location; writing the
// same table twice must produce byte-identical output.
type TableSink interface {
	// WriteTable writes the full table, canonical columns in canonical
	// order, one row per document.
	WriteTable(ctx context.Context, table domain.Table) error
}

// DictionarySink persists the derived data dictionary.
// Implementations preserve human-authored column descriptions from a
// previous artifact when regenerating.
type DictionarySink interface {
	// WriteDictionary writes one row per canonical column.
	WriteDictionary(ctx context.Context, schema domain.Schema) error
}
