package commands

import (
	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

func newExpandCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <expr>",
		Short: "Distribute products over sums",
		Long: `Expand distributes every product over a sum operand, left operand first.
Differences are left as they are.

Example:
  symexpr expand "(a + b) * (c + d)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseArgs(args)
			if err != nil {
				return err
			}
			return printExpr(cmd.OutOrStdout(), opts, symexpr.Expand(e))
		},
	}
}
