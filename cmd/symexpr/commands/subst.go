package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

func newSubstCmd(opts *options) *cobra.Command {
	var (
		varName string
		with    string
	)

	cmd := &cobra.Command{
		Use:   "subst <expr>",
		Short: "Replace a variable with an expression",
		Long: `Subst replaces every occurrence of --var with the expression given by --with.

Example:
  symexpr subst "x^2 + x" --var x --with "y + 1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseArgs(args)
			if err != nil {
				return err
			}
			value, err := symexpr.Parse(with)
			if err != nil {
				return fmt.Errorf("--with: %w", err)
			}
			return printExpr(cmd.OutOrStdout(), opts, symexpr.Sub(e, varName, value))
		},
	}

	cmd.Flags().StringVar(&varName, "var", "x", "Variable to replace")
	cmd.Flags().StringVar(&with, "with", "", "Replacement expression")
	_ = cmd.MarkFlagRequired("with")
	return cmd
}
