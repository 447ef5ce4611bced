package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the corpus",
	Long: `Normalises the raw export and prints document counts per categorical
value, the covered date range, and the total word count.`,
	RunE: runStats,
}

var statsInput string

// Styles for stats output.
var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	statsLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "Raw corpus export CSV")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if newCorpus == nil {
		return errNotConfigured
	}

	paths := resolvePaths(domain.PipelinePaths{Input: statsInput})
	if err := requirePath(paths.Input, "input"); err != nil {
		return err
	}

	corpus, err := newCorpus(paths)
	if err != nil {
		return fmt.Errorf("configuring corpus service: %w", err)
	}

	stats, err := corpus.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	cmd.Println(statsHeaderStyle.Render("Corpus"))
	cmd.Printf("  %s %d\n", statsLabelStyle.Render("Documents:"), stats.Documents)
	cmd.Printf("  %s %s to %s\n", statsLabelStyle.Render("Range:    "),
		stats.Earliest.Format(domain.DateLayout), stats.Latest.Format(domain.DateLayout))
	cmd.Printf("  %s %d\n", statsLabelStyle.Render("Words:    "), stats.TotalWords)

	printCounts(cmd, "Affiliation", stats.ByAffiliation)
	printCounts(cmd, "Category", stats.ByCategory)
	printCounts(cmd, "Delivery mode", stats.ByDeliveryMode)
	return nil
}

// printCounts prints a categorical breakdown in sorted value order.
func printCounts(cmd *cobra.Command, title string, counts map[string]int) {
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)

	cmd.Printf("\n%s\n", statsHeaderStyle.Render(title))
	for _, v := range values {
		label := v
		if label == "" {
			label = "(unknown)"
		}
		cmd.Printf("  %-24s %d\n", label, counts[v])
	}
}
