package driven

import (
	"context"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

// DocumentStore is a queryable copy of the canonical corpus.
// It is an export target, not a source of truth: the canonical CSV
// remains authoritative and Replace mirrors it wholesale.
type DocumentStore interface {
	// Replace atomically swaps the stored corpus for the given table.
	Replace(ctx context.Context, table domain.Table) error

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying storage.
	Close() error
}
