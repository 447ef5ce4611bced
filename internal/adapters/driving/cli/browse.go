package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civica-labs/corpora-cli/internal/adapters/driving/tui"
	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the corpus in the terminal",
	Long:  `Opens a terminal browser over the canonical table: a document list and a full-text reader.`,
	RunE:  runBrowse,
}

var browseInput string

// runBrowser launches the TUI; swapped in tests.
var runBrowser = tui.Run

func init() {
	browseCmd.Flags().StringVarP(&browseInput, "input", "i", "", "Raw corpus export CSV")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	if newCorpus == nil {
		return errNotConfigured
	}

	paths := resolvePaths(domain.PipelinePaths{Input: browseInput})
	if err := requirePath(paths.Input, "input"); err != nil {
		return err
	}

	corpus, err := newCorpus(paths)
	if err != nil {
		return fmt.Errorf("configuring corpus service: %w", err)
	}

	table, err := corpus.Documents(context.Background())
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	return runBrowser(table)
}
