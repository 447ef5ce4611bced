package cli

import (
	"github.com/spf13/cobra"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default pipeline paths",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored default paths",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store default paths",
	Long:  `Stores default paths so commands can omit the corresponding flags.`,
	RunE:  runConfigSet,
}

// Path flags for config set.
var (
	configInput string
	configTable string
	configDict  string
	configDB    string
)

func init() {
	configSetCmd.Flags().StringVar(&configInput, "input", "", "Default raw export path")
	configSetCmd.Flags().StringVar(&configTable, "table", "", "Default canonical table path")
	configSetCmd.Flags().StringVar(&configDict, "dict", "", "Default dictionary path")
	configSetCmd.Flags().StringVar(&configDB, "db", "", "Default SQLite database path")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errNotConfigured
	}

	paths := configStore.Paths()
	cmd.Printf("Config file: %s\n\n", configStore.Path())
	cmd.Printf("  input:      %s\n", orUnset(paths.Input))
	cmd.Printf("  table:      %s\n", orUnset(paths.Table))
	cmd.Printf("  dictionary: %s\n", orUnset(paths.Dictionary))
	cmd.Printf("  database:   %s\n", orUnset(paths.Database))
	return nil
}

func runConfigSet(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errNotConfigured
	}

	err := configStore.SetPaths(domain.PipelinePaths{
		Input:      configInput,
		Table:      configTable,
		Dictionary: configDict,
		Database:   configDB,
	})
	if err != nil {
		return err
	}

	cmd.Println("Defaults saved.")
	return nil
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}
