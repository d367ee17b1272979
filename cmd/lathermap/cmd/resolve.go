package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lathercraft/lathermap"
	"github.com/lathercraft/lathermap/pkg/logging"
)

var (
	resolveBrand string
	resolveScent string
)

// resolveCmd represents the resolve command.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a brand/scent pair to a canonical catalog identifier",
	Long: `Resolve a free-text brand and scent against the configured catalog.

The resolver tries normalized spelling variants (case, diacritics, "&" vs
"and"), aliases declared in the registry, and the virtual "Soap" suffix
variant, in a fixed most-specific-first order.

Examples:
  lathermap resolve -c catalog.yaml --brand "Barrister & Mann" --scent "Seville"
  lathermap resolve -c catalog.yaml -a aliases.yaml --brand "B&M" --scent "Sevilla"`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveBrand, "brand", "", "free-text brand")
	resolveCmd.Flags().StringVar(&resolveScent, "scent", "", "free-text scent or item name")
	_ = resolveCmd.MarkFlagRequired("brand")
	_ = resolveCmd.MarkFlagRequired("scent")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	lm, err := newLathermap()
	if err != nil {
		return err
	}

	identifier, ok := lm.Resolve(resolveBrand, resolveScent)
	if !ok {
		logging.Default().Info().
			Str("brand", resolveBrand).
			Str("scent", resolveScent).
			Msg("no catalog match")
		fmt.Fprintln(cmd.OutOrStdout(), "no match")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), identifier)
	return nil
}

// newLathermap builds a facade from the configured catalog and alias files.
func newLathermap() (lathermap.Lathermap, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	registry, err := loadAliases()
	if err != nil {
		return nil, err
	}

	return lathermap.New(
		lathermap.WithCatalog(catalog),
		lathermap.WithAliases(registry),
		lathermap.WithLogger(logging.Default()),
	)
}
