package cmd

import (
	"fmt"

	"github.com/cottand/regexalg/rx"
	"github.com/cottand/regexalg/rxparse"
	"github.com/cottand/regexalg/util"
	"github.com/spf13/cobra"
)

var ParseCmd = &cobra.Command{
	Use:          "parse <pattern> [test-string ...]",
	Short:        "Parse a pattern into its term form and test it against strings",
	RunE:         runParse,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var showCanonical *bool

func init() {
	showCanonical = ParseCmd.Flags().BoolP("canonical", "c", false, "also print the canonicalized term")
}

func runParse(cmd *cobra.Command, args []string) error {
	term, err := rxparse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("could not parse pattern: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "term: %s\n", rx.Repr(term))
	if *showCanonical {
		fmt.Fprintf(cmd.OutOrStdout(), "canonical: %s\n", rx.Repr(rx.Canonical(term)))
	}

	// duplicate test strings only get reported once, in first-seen order.
	seen := util.NewEmptySet[string]()
	for _, s := range args[1:] {
		if seen.Contains(s) {
			continue
		}
		seen.Add(s)
		verdict := "rejects"
		if rx.Accepts(term, s) {
			verdict = "accepts"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", verdict, s)
	}
	return nil
}
