package commands

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symexpr/internal/config"
	"github.com/njchilds90/symexpr/internal/server"
)

func newServeCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP tool server",
		Long: `Serve exposes the symexpr tools over HTTP until interrupted.

Endpoints:
  POST /tool    execute a tool call {"tool": "...", "params": {...}}
  GET  /schema  tool schema for agent registration
  GET  /health  health check

The listen address and body limit default to SYMEXPR_ADDR and
SYMEXPR_MAX_BODY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := log.New(cmd.ErrOrStderr(), "symexpr: ", log.LstdFlags)
			return server.New(*cfg, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Address to listen on")
	cmd.Flags().Int64Var(&cfg.MaxBodyBytes, "max-body", cfg.MaxBodyBytes, "Maximum request body in bytes")
	return cmd
}
