package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

func newDiffCmd(opts *options) *cobra.Command {
	var (
		vars  []string
		order int
	)

	cmd := &cobra.Command{
		Use:   "diff <expr>",
		Short: "Differentiate an expression",
		Long: `Diff prints the derivative of an expression.

With several --var values it prints the gradient, one partial derivative
per line prefixed with the variable name.

Examples:
  symexpr diff "x^3"                 # d/dx
  symexpr diff "x * y^2" -v y        # d/dy
  symexpr diff "sin(x)" -n 3 -s      # third derivative, simplified
  symexpr diff "x * y" -v x -v y     # gradient`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseArgs(args)
			if err != nil {
				return err
			}
			if order < 0 {
				return fmt.Errorf("order must be >= 0, got %d", order)
			}
			out := cmd.OutOrStdout()

			if len(vars) > 1 {
				if order != 1 {
					return fmt.Errorf("--order is not supported with several variables")
				}
				grad, err := symexpr.Gradient(e, vars)
				if err != nil {
					return err
				}
				for i, g := range grad {
					fmt.Fprintf(out, "%s: ", vars[i])
					if err := printExpr(out, opts, g); err != nil {
						return err
					}
				}
				return nil
			}

			// Higher orders are simplified between steps.
			var d symexpr.Expr
			if order == 1 {
				d, err = symexpr.Diff(e, vars[0])
			} else {
				d, err = symexpr.DiffN(e, vars[0], order)
			}
			if err != nil {
				return err
			}
			return printExpr(out, opts, d)
		},
	}

	cmd.Flags().StringArrayVarP(&vars, "var", "v", []string{"x"}, "Variable to differentiate by (repeat for a gradient)")
	cmd.Flags().IntVarP(&order, "order", "n", 1, "Derivative order")
	return cmd
}
