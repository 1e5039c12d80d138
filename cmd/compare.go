package cmd

import (
	"fmt"

	"github.com/cottand/regexalg/rx"
	"github.com/cottand/regexalg/rxerr"
	"github.com/cottand/regexalg/rxparse"
	"github.com/spf13/cobra"
)

var CompareCmd = &cobra.Command{
	Use:          "compare <pattern-a> <pattern-b>",
	Short:        "Decide language equivalence and containment between two patterns",
	RunE:         runCompare,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

func runCompare(cmd *cobra.Command, args []string) error {
	var diags *rxerr.Errors
	a, errA := rxparse.Parse(args[0])
	if errA != nil {
		diags = diags.With(rxerr.Parse("first pattern: %s", errA))
	}
	b, errB := rxparse.Parse(args[1])
	if errB != nil {
		diags = diags.With(rxerr.Parse("second pattern: %s", errB))
	}
	if diags.HasError() {
		return fmt.Errorf("could not parse patterns: %v", diags.Errors())
	}

	cmpResult := rx.PartialCompare(a, b)
	fmt.Fprintf(cmd.OutOrStdout(), "equivalent: %t\n", cmpResult == rx.CmpEqual)
	fmt.Fprintf(cmd.OutOrStdout(), "partial compare: %s\n", cmpResult)
	fmt.Fprintf(cmd.OutOrStdout(), "a subset of b: %t\n", rx.SubsetOf(a, b))
	fmt.Fprintf(cmd.OutOrStdout(), "b subset of a: %t\n", rx.SubsetOf(b, a))
	return nil
}
