package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driving"
	"github.com/civica-labs/corpora-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.PipelineService = (*Pipeline)(nil)

// Pipeline orchestrates the corpus run: fetch the raw export, normalise
// it, derive the dictionary, and write both artifacts. The input is read
// once; outputs overwrite whatever sits at their locations, so a rerun
// over unchanged input is byte-identical.
type Pipeline struct {
	provider   driven.CorpusProvider
	tableSink  driven.TableSink
	dictSink   driven.DictionarySink
	normaliser *Normaliser
}

// NewPipeline creates a pipeline over a provider and its sinks.
// The normaliser is built from the provider's own column mapping.
func NewPipeline(
	provider driven.CorpusProvider,
	tableSink driven.TableSink,
	dictSink driven.DictionarySink,
) *Pipeline {
	return &Pipeline{
		provider:   provider,
		tableSink:  tableSink,
		dictSink:   dictSink,
		normaliser: NewNormaliser(provider.Mapping()),
	}
}

// Build runs the full pipeline and writes the canonical table and
// dictionary. Nothing is written unless every step succeeds.
func (p *Pipeline) Build(ctx context.Context) (*driving.BuildReport, error) {
	report, table, err := p.run(ctx)
	if err != nil {
		return nil, err
	}

	if p.tableSink == nil || p.dictSink == nil {
		return nil, fmt.Errorf("pipeline sinks not configured")
	}

	logger.Section("Write")
	if err := p.tableSink.WriteTable(ctx, table); err != nil {
		return nil, fmt.Errorf("writing canonical table: %w", err)
	}
	if err := p.dictSink.WriteDictionary(ctx, report.Schema); err != nil {
		return nil, fmt.Errorf("writing dictionary: %w", err)
	}

	logger.Info("run %s wrote %d documents", report.RunID, report.Documents)
	return report, nil
}

// Validate runs normalisation and derivation without writing anything.
func (p *Pipeline) Validate(ctx context.Context) (*driving.BuildReport, error) {
	report, _, err := p.run(ctx)
	return report, err
}

// run executes the read-and-transform half shared by Build and Validate.
func (p *Pipeline) run(ctx context.Context) (*driving.BuildReport, domain.Table, error) {
	if p.provider == nil {
		return nil, nil, fmt.Errorf("corpus provider not configured")
	}

	runID := uuid.New().String()
	logger.Debug("pipeline run %s starting", runID)

	raw, err := p.provider.Fetch(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching corpus: %w", err)
	}
	logger.Debug("fetched %d raw rows, %d columns", len(raw.Rows), len(raw.Columns))

	result, err := p.normaliser.Normalise(ctx, raw)
	if err != nil {
		return nil, nil, err
	}

	report := &driving.BuildReport{
		RunID:          runID,
		Documents:      len(result.Table),
		DroppedColumns: result.DroppedColumns,
		Schema:         DeriveSchema(result.Table),
	}
	return report, result.Table, nil
}
