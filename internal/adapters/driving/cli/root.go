// Package cli implements the command-line driving adapter using cobra.
//
// Commands resolve file paths from flags first, then from the config
// store's defaults; nothing ever comes from ambient working-directory
// state. Service construction is injected by main through factory
// functions so tests can swap in fakes.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driving"
	"github.com/civica-labs/corpora-cli/internal/logger"
)

var (
	version = "dev"
	verbose bool

	// Injected by SetDependencies; swapped in tests.
	configStore      driven.ConfigStore
	newPipeline      func(paths domain.PipelinePaths) (driving.PipelineService, error)
	newCorpus        func(paths domain.PipelinePaths) (driving.CorpusService, error)
	newDocumentStore func(path string) (driven.DocumentStore, error)
)

var rootCmd = &cobra.Command{
	Use:   "corpora",
	Short: "Build an analysis-ready corpus of presidential addresses",
	Long: `Corpora turns a collaborator's raw corpus export into a canonical,
documented, analysis-ready table: fixed column names and order,
deterministic row order, and a generated data dictionary.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
}

// Dependencies bundles everything main injects into the CLI.
type Dependencies struct {
	// Version is the build version shown by the version command.
	Version string

	// ConfigStore supplies default paths. May be nil.
	ConfigStore driven.ConfigStore

	// NewPipeline builds a pipeline service for resolved paths.
	NewPipeline func(paths domain.PipelinePaths) (driving.PipelineService, error)

	// NewCorpus builds a read-only corpus service for resolved paths.
	NewCorpus func(paths domain.PipelinePaths) (driving.CorpusService, error)

	// NewDocumentStore opens the SQLite export store.
	NewDocumentStore func(path string) (driven.DocumentStore, error)
}

// SetDependencies installs the injected dependencies.
func SetDependencies(deps Dependencies) {
	if deps.Version != "" {
		version = deps.Version
	}
	configStore = deps.ConfigStore
	newPipeline = deps.NewPipeline
	newCorpus = deps.NewCorpus
	newDocumentStore = deps.NewDocumentStore
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolvePaths merges flag values with config store defaults.
// Flags win; the config store only fills gaps.
func resolvePaths(flags domain.PipelinePaths) domain.PipelinePaths {
	resolved := flags
	if configStore == nil {
		return resolved
	}

	defaults := configStore.Paths()
	if resolved.Input == "" {
		resolved.Input = defaults.Input
	}
	if resolved.Table == "" {
		resolved.Table = defaults.Table
	}
	if resolved.Dictionary == "" {
		resolved.Dictionary = defaults.Dictionary
	}
	if resolved.Database == "" {
		resolved.Database = defaults.Database
	}
	return resolved
}

// requirePath errors when a path is neither flagged nor configured.
func requirePath(value, flag string) error {
	if value == "" {
		return fmt.Errorf("no %s path given: pass --%s or set a default with 'corpora config set'", flag, flag)
	}
	return nil
}

// errNotConfigured is returned when main has not injected a factory.
var errNotConfigured = errors.New("service not configured")
