// Command corpora builds an analysis-ready corpus of presidential
// addresses from a collaborator's raw export.
package main

import (
	"fmt"
	"os"

	configfile "github.com/civica-labs/corpora-cli/internal/adapters/driven/config/file"
	corpuscsv "github.com/civica-labs/corpora-cli/internal/adapters/driven/corpus/csvfile"
	sinkcsv "github.com/civica-labs/corpora-cli/internal/adapters/driven/sink/csvfile"
	"github.com/civica-labs/corpora-cli/internal/adapters/driven/storage/sqlite"
	"github.com/civica-labs/corpora-cli/internal/adapters/driving/cli"
	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driving"
	"github.com/civica-labs/corpora-cli/internal/core/services"
	"github.com/civica-labs/corpora-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		// The CLI still works with explicit flags everywhere.
		logger.Warn("config store unavailable: %v", err)
		configStore = nil
	}

	deps := cli.Dependencies{
		Version: version,
		NewPipeline: func(paths domain.PipelinePaths) (driving.PipelineService, error) {
			return services.NewPipeline(
				corpuscsv.New(paths.Input),
				sinkcsv.NewTableSink(paths.Table),
				sinkcsv.NewDictionarySink(paths.Dictionary),
			), nil
		},
		NewCorpus: func(paths domain.PipelinePaths) (driving.CorpusService, error) {
			return services.NewCorpusService(corpuscsv.New(paths.Input)), nil
		},
		NewDocumentStore: func(path string) (driven.DocumentStore, error) {
			return sqlite.NewStore(path)
		},
	}
	if configStore != nil {
		deps.ConfigStore = configStore
	}
	cli.SetDependencies(deps)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
