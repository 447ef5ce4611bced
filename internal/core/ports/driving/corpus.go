package driving

import (
	"context"
	"time"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

// CorpusStats aggregates the canonical table for display.
type CorpusStats struct {
	// Documents is the total record count.
	Documents int

	// Earliest and Latest bound the occurred_on range.
	Earliest time.Time
	Latest   time.Time

	// ByAffiliation, ByCategory and ByDeliveryMode count documents per
	// observed categorical value.
	ByAffiliation  map[string]int
	ByCategory     map[string]int
	ByDeliveryMode map[string]int

	// TotalWords is the whitespace-token count across all bodies.
	TotalWords int
}

// CorpusService exposes the normalised corpus to read-only consumers
// (stats, browser, export).
type CorpusService interface {
	// Documents returns the canonical table.
	Documents(ctx context.Context) (domain.Table, error)

	// Stats aggregates the canonical table.
	Stats(ctx context.Context) (*CorpusStats, error)
}
