package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

func newEvalCmd() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "eval <expr>",
		Short: "Evaluate an expression numerically",
		Long: `Eval evaluates an expression with the variable values given by --set.

Examples:
  symexpr eval "2 + 3 * 4"
  symexpr eval "sqrt(x^2 + y^2)" --set x=3 --set y=4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseArgs(args)
			if err != nil {
				return err
			}
			b, err := parseBindings(sets)
			if err != nil {
				return err
			}
			f, err := symexpr.Compile(e)
			if err != nil {
				return err
			}
			v, err := f(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Variable binding name=value (repeatable)")
	return cmd
}

func parseBindings(sets []string) (symexpr.Bindings, error) {
	b := make(symexpr.Bindings, len(sets))
	for _, s := range sets {
		name, val, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid binding %q: want name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid binding %q: %w", s, err)
		}
		b[name] = v
	}
	return b, nil
}
