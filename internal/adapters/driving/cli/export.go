package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Mirror the canonical corpus into a SQLite database",
	Long: `Normalises the raw export and replaces the documents table of a local
SQLite database with the canonical corpus, for ad-hoc SQL exploration.
The canonical CSV remains the source of truth.`,
	RunE: runExport,
}

// Path flags for the export command.
var (
	exportInput string
	exportDB    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Raw corpus export CSV")
	exportCmd.Flags().StringVar(&exportDB, "db", "", "SQLite database path")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if newCorpus == nil || newDocumentStore == nil {
		return errNotConfigured
	}

	paths := resolvePaths(domain.PipelinePaths{Input: exportInput, Database: exportDB})
	if err := requirePath(paths.Input, "input"); err != nil {
		return err
	}
	if err := requirePath(paths.Database, "db"); err != nil {
		return err
	}

	corpus, err := newCorpus(paths)
	if err != nil {
		return fmt.Errorf("configuring corpus service: %w", err)
	}

	ctx := context.Background()
	table, err := corpus.Documents(ctx)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	store, err := newDocumentStore(paths.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if err := store.Replace(ctx, table); err != nil {
		return fmt.Errorf("exporting corpus: %w", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting exported documents: %w", err)
	}

	cmd.Printf("Exported %d documents to %s\n", count, paths.Database)
	return nil
}
