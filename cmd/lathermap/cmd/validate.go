package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog and alias registry files",
	Long: `Validate the structure and completeness of the configured catalog and
alias registry files: every catalog entry needs a brand, a name, and a
unique identifier; every registry entry needs a canonical brand and
canonical item names.

Examples:
  lathermap validate -c catalog.yaml
  lathermap validate -c catalog.yaml -a aliases.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	registry, err := loadAliases()
	if err != nil {
		return err
	}
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("alias registry: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "catalog OK (%d entries)", len(catalog))
	if registry != nil {
		fmt.Fprintf(cmd.OutOrStdout(), ", aliases OK (%d brands)", len(registry))
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
