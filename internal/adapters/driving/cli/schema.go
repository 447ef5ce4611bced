package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the derived data dictionary",
	Long: `Normalises the raw export and prints the derived data dictionary as
CSV on stdout. Descriptions are left empty for human annotation; use
'corpora build' to write the dictionary file with annotations preserved.`,
	RunE: runSchema,
}

var schemaInput string

func init() {
	schemaCmd.Flags().StringVarP(&schemaInput, "input", "i", "", "Raw corpus export CSV")

	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	if newPipeline == nil {
		return errNotConfigured
	}

	paths := resolvePaths(domain.PipelinePaths{Input: schemaInput})
	if err := requirePath(paths.Input, "input"); err != nil {
		return err
	}

	pipeline, err := newPipeline(paths)
	if err != nil {
		return fmt.Errorf("configuring pipeline: %w", err)
	}

	report, err := pipeline.Validate(context.Background())
	if err != nil {
		return fmt.Errorf("deriving schema: %w", err)
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"column_name", "type", "description", "allowed_values"}); err != nil {
		return err
	}
	for _, col := range report.Schema.Columns {
		record := []string{
			col.Name,
			string(col.Type),
			col.Description,
			strings.Join(col.AllowedValues, ","),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
