package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driving"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService serves the normalised corpus to read-only consumers.
// It normalises on demand from the raw export, so stats and browsing
// work whether or not a build has been written to disk.
type CorpusService struct {
	provider   driven.CorpusProvider
	normaliser *Normaliser
}

// NewCorpusService creates a corpus service over a provider.
func NewCorpusService(provider driven.CorpusProvider) *CorpusService {
	return &CorpusService{
		provider:   provider,
		normaliser: NewNormaliser(provider.Mapping()),
	}
}

// Documents returns the canonical table.
func (s *CorpusService) Documents(ctx context.Context) (domain.Table, error) {
	raw, err := s.provider.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching corpus: %w", err)
	}

	result, err := s.normaliser.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}
	return result.Table, nil
}

// Stats aggregates the canonical table.
func (s *CorpusService) Stats(ctx context.Context) (*driving.CorpusStats, error) {
	table, err := s.Documents(ctx)
	if err != nil {
		return nil, err
	}

	stats := &driving.CorpusStats{
		Documents:      len(table),
		ByAffiliation:  make(map[string]int),
		ByCategory:     make(map[string]int),
		ByDeliveryMode: make(map[string]int),
	}

	for i := range table {
		r := &table[i]
		if stats.Earliest.IsZero() || r.OccurredOn.Before(stats.Earliest) {
			stats.Earliest = r.OccurredOn
		}
		if r.OccurredOn.After(stats.Latest) {
			stats.Latest = r.OccurredOn
		}
		stats.ByAffiliation[r.Affiliation]++
		stats.ByCategory[r.Category]++
		stats.ByDeliveryMode[r.DeliveryMode]++
		stats.TotalWords += len(strings.Fields(r.Body))
	}

	return stats, nil
}
