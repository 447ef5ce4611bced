package cli

import (
	"context"
	"time"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driving"
)

// fakePipeline implements driving.PipelineService.
type fakePipeline struct {
	report   *driving.BuildReport
	buildErr error
}

func (p *fakePipeline) Build(_ context.Context) (*driving.BuildReport, error) {
	if p.buildErr != nil {
		return nil, p.buildErr
	}
	return p.report, nil
}

func (p *fakePipeline) Validate(_ context.Context) (*driving.BuildReport, error) {
	if p.buildErr != nil {
		return nil, p.buildErr
	}
	return p.report, nil
}

// fakeCorpus implements driving.CorpusService.
type fakeCorpus struct {
	table domain.Table
	stats *driving.CorpusStats
	err   error
}

func (c *fakeCorpus) Documents(_ context.Context) (domain.Table, error) {
	return c.table, c.err
}

func (c *fakeCorpus) Stats(_ context.Context) (*driving.CorpusStats, error) {
	return c.stats, c.err
}

// fakeStore implements driven.DocumentStore.
type fakeStore struct {
	replaced domain.Table
}

func (s *fakeStore) Replace(_ context.Context, table domain.Table) error {
	s.replaced = table
	return nil
}

func (s *fakeStore) Count(_ context.Context) (int, error) {
	return len(s.replaced), nil
}

func (s *fakeStore) Close() error { return nil }

// fakeConfigStore implements driven.ConfigStore.
type fakeConfigStore struct {
	paths domain.PipelinePaths
}

func (s *fakeConfigStore) Paths() domain.PipelinePaths { return s.paths }

func (s *fakeConfigStore) SetPaths(paths domain.PipelinePaths) error {
	if paths.Input != "" {
		s.paths.Input = paths.Input
	}
	if paths.Table != "" {
		s.paths.Table = paths.Table
	}
	if paths.Dictionary != "" {
		s.paths.Dictionary = paths.Dictionary
	}
	if paths.Database != "" {
		s.paths.Database = paths.Database
	}
	return nil
}

func (s *fakeConfigStore) Path() string { return "/tmp/config.toml" }

func testReport() *driving.BuildReport {
	return &driving.BuildReport{
		RunID:          "run-1",
		Documents:      2,
		DroppedColumns: []string{"word_count"},
		Schema: domain.Schema{Columns: []domain.SchemaColumn{
			{Name: domain.ColumnSpeakerSurname, Type: domain.ColumnTypeText},
			{Name: domain.ColumnDeliveryMode, Type: domain.ColumnTypeCategorical, AllowedValues: []string{"spoken", "written"}},
		}},
	}
}

func cliTestTable() domain.Table {
	return domain.Table{
		{
			SpeakerSurname:   "Washington",
			SpeakerGivenName: "George",
			Affiliation:      "Unaffiliated",
			OccurredOn:       time.Date(1790, 1, 8, 0, 0, 0, 0, time.UTC),
			Category:         "address",
			DeliveryMode:     "spoken",
			Body:             "Fellow-Citizens...",
		},
	}
}

// setupTestServices installs fake dependencies and returns a cleanup
// that restores the previous state.
func setupTestServices() func() {
	prevConfig := configStore
	prevPipeline := newPipeline
	prevCorpus := newCorpus
	prevStore := newDocumentStore

	store := &fakeStore{}
	configStore = &fakeConfigStore{}
	newPipeline = func(_ domain.PipelinePaths) (driving.PipelineService, error) {
		return &fakePipeline{report: testReport()}, nil
	}
	newCorpus = func(_ domain.PipelinePaths) (driving.CorpusService, error) {
		return &fakeCorpus{
			table: cliTestTable(),
			stats: &driving.CorpusStats{
				Documents:      1,
				Earliest:       time.Date(1790, 1, 8, 0, 0, 0, 0, time.UTC),
				Latest:         time.Date(1790, 1, 8, 0, 0, 0, 0, time.UTC),
				ByAffiliation:  map[string]int{"Unaffiliated": 1},
				ByCategory:     map[string]int{"address": 1},
				ByDeliveryMode: map[string]int{"spoken": 1},
				TotalWords:     2,
			},
		}, nil
	}
	newDocumentStore = func(_ string) (driven.DocumentStore, error) {
		return store, nil
	}

	return func() {
		configStore = prevConfig
		newPipeline = prevPipeline
		newCorpus = prevCorpus
		newDocumentStore = prevStore
	}
}
