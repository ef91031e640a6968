package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars <expr>",
		Short: "List the variables and functions an expression uses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseArgs(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "variables: %s\n", strings.Join(symexpr.SortedNames(symexpr.Variables(e)), ", "))
			fmt.Fprintf(out, "functions: %s\n", strings.Join(symexpr.SortedNames(symexpr.Functions(e)), ", "))
			for _, name := range symexpr.SortedNames(symexpr.Functions(e)) {
				if !symexpr.Fn(name).Known() {
					fmt.Fprintf(out, "warning: %s has no numeric implementation\n", name)
				}
			}
			return nil
		},
	}
}
