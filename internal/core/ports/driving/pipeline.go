package driving

import (
	"context"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

// BuildReport summarises a pipeline run for display.
type BuildReport struct {
	// RunID uniquely identifies this run in verbose logs.
	RunID string

	// Documents is the number of records in the canonical table.
	// Always equal to the raw export's row count.
	Documents int

	// DroppedColumns lists source columns outside the canonical set,
	// sorted. Dropping them is part of the contract, not a surprise.
	DroppedColumns []string

	// Schema is the derived data dictionary.
	Schema domain.Schema
}

// PipelineService runs the corpus pipeline: read the raw export,
// normalise it, derive the dictionary, and (for Build) write both
// artifacts. One-shot and idempotent; any failure means no artifact
// is written.
type PipelineService interface {
	// Build runs the full pipeline and writes the canonical table and
	// dictionary.
	Build(ctx context.Context) (*BuildReport, error)

	// Validate runs normalisation and derivation without writing
	// anything. The returned error carries every problem found.
	Validate(ctx context.Context) (*BuildReport, error)
}
