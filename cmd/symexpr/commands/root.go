// Package commands provides the CLI commands for the symexpr tool.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr"
)

// Output formats accepted by --format.
const (
	formatText  = "text"
	formatLaTeX = "latex"
	formatRepr  = "repr"
	formatJSON  = "json"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	format   string
	simplify bool
}

// NewRootCmd builds the command tree. Each call returns fresh commands and
// flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "symexpr",
		Short: "Symbolic expression evaluator and differentiator",
		Long: `symexpr parses algebraic expressions and evaluates, differentiates,
expands, substitutes and renders them.

Expressions use infix syntax: + - * / ^ (or **), parentheses, numbers,
variables and the functions sin, cos, tan, log, ln and sqrt.

Usage:
  symexpr eval "x^2 + 1" --set x=3         Evaluate with bindings
  symexpr diff "x^3 * sin(x)" -v x -n 2    Second derivative
  symexpr expand "(a + b) * (c + d)"       Distribute products over sums
  symexpr subst "x + 1" --var x --with y^2 Substitute an expression
  symexpr render "x / 2" --format latex    Render as LaTeX
  symexpr vars "x * sin(y)"                List variables and functions
  symexpr serve --addr :8080               Run the HTTP tool server`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text, latex, repr or json")
	rootCmd.PersistentFlags().BoolVarP(&opts.simplify, "simplify", "s", false, "Simplify results before printing")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newDiffCmd(opts))
	rootCmd.AddCommand(newExpandCmd(opts))
	rootCmd.AddCommand(newSubstCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newVarsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// parseArgs joins the positional arguments so unquoted input such as
// `symexpr eval x + 1` still reads as one expression.
func parseArgs(args []string) (symexpr.Expr, error) {
	return symexpr.Parse(strings.Join(args, " "))
}

func printExpr(w io.Writer, opts *options, e symexpr.Expr) error {
	if opts.simplify {
		e = symexpr.Simplify(e)
	}
	switch opts.format {
	case formatText:
		fmt.Fprintln(w, e.String())
	case formatLaTeX:
		fmt.Fprintln(w, e.LaTeX())
	case formatRepr:
		fmt.Fprintln(w, e.GoString())
	case formatJSON:
		s, err := symexpr.ToJSON(e)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
	default:
		return fmt.Errorf("unknown format %q (want text, latex, repr or json)", opts.format)
	}
	return nil
}
