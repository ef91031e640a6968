package commands

import (
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render <expr>",
		Short: "Parse an expression and print it in the chosen format",
		Long: `Render parses an expression and prints it back using --format.

Examples:
  symexpr render "x/(y+1)" --format latex
  symexpr render "2*x + 0" --simplify
  symexpr render "sin(x)" -f json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseArgs(args)
			if err != nil {
				return err
			}
			return printExpr(cmd.OutOrStdout(), opts, e)
		},
	}
}
