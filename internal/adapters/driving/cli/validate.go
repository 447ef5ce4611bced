package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the raw export without writing anything",
	Long: `Runs the normalisation steps over the raw export and reports every
problem found (missing columns, malformed dates, empty required fields)
without writing any artifact.`,
	RunE: runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Raw corpus export CSV")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if newPipeline == nil {
		return errNotConfigured
	}

	paths := resolvePaths(domain.PipelinePaths{Input: validateInput})
	if err := requirePath(paths.Input, "input"); err != nil {
		return err
	}

	pipeline, err := newPipeline(paths)
	if err != nil {
		return fmt.Errorf("configuring pipeline: %w", err)
	}

	report, err := pipeline.Validate(context.Background())
	if err != nil {
		// Required-field violations get itemised output; a single run
		// surfaces the complete repair list.
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			cmd.Printf("Validation failed: %d problem(s)\n\n", len(validation.Violations))
			for _, v := range validation.Violations {
				cmd.Printf("  row %d: missing %s\n", v.Row, v.Field)
			}
			return fmt.Errorf("%d validation problem(s)", len(validation.Violations))
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	cmd.Printf("Corpus is valid: %d documents\n", report.Documents)
	return nil
}
