package cmd

import (
	"fmt"

	"github.com/cottand/regexalg/rx"
	"github.com/cottand/regexalg/rxerr"
	"github.com/cottand/regexalg/rxparse"
	"github.com/spf13/cobra"
)

var AlgebraCmd = &cobra.Command{
	Use:          "algebra <and|or|sub|xor|not> <pattern-a> [pattern-b]",
	Short:        "Combine patterns via the set algebra (intersect, union, difference, symmetric difference, complement)",
	RunE:         runAlgebra,
	Args:         cobra.RangeArgs(2, 3),
	SilenceUsage: true,
}

func runAlgebra(cmd *cobra.Command, args []string) error {
	op := args[0]
	var diags *rxerr.Errors
	a, errA := rxparse.Parse(args[1])
	if errA != nil {
		diags = diags.With(rxerr.Parse("first pattern: %s", errA))
	}

	var b rx.Rx
	needsSecond := op == "and" || op == "or" || op == "sub" || op == "xor"
	if needsSecond {
		if len(args) != 3 {
			return rxerr.Invalid("operator %q requires two patterns", op)
		}
		var errB error
		b, errB = rxparse.Parse(args[2])
		if errB != nil {
			diags = diags.With(rxerr.Parse("second pattern: %s", errB))
		}
	}
	if diags.HasError() {
		return fmt.Errorf("could not parse patterns: %v", diags.Errors())
	}

	var result rx.Rx
	switch op {
	case "not":
		result = rx.Not(a)
	case "and", "or", "sub", "xor":
		switch op {
		case "and":
			result = rx.And(a, b)
		case "or":
			result = rx.Or(a, b)
		case "sub":
			result = rx.Sub(a, b)
		case "xor":
			result = rx.Xor(a, b)
		}
	default:
		return rxerr.Invalid("unknown operator %q, want one of and, or, sub, xor, not", op)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", rx.Repr(rx.Canonical(result)))
	return nil
}
