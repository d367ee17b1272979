package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lathercraft/lathermap/pkg/gear"
	"github.com/lathercraft/lathermap/pkg/reconcile"
)

// reconcileCmd represents the reconcile command.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [file]",
	Short: "Reconcile raw brush matcher output into reviewable records",
	Long: `Reconcile raw matcher output records from a YAML file (or stdin when
no file is given) and print one verdict per record.

Each record's handle and knot sub-matches are collapsed into a single
matched/unmatched/filtered status; components the matcher never attempted
are omitted from the output.

Examples:
  lathermap reconcile matches.yaml
  cat matches.yaml | lathermap reconcile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	raws, err := loadRawMatches(path)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCOUNT\tTEXT\tHANDLE\tKNOT")
	for i := range raws {
		rec := reconcile.Reconcile(&raws[i])
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			rec.Main.Status,
			rec.Main.Count,
			rec.Main.Text,
			componentCell(rec, gear.ComponentHandle),
			componentCell(rec, gear.ComponentKnot),
		)
	}
	return w.Flush()
}

// componentCell formats one component column, or "-" when the component
// was not attempted.
func componentCell(rec reconcile.Record, kind gear.ComponentKind) string {
	comp, ok := rec.Component(kind)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", comp.Text, comp.Status)
}
