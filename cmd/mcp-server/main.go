// cmd/mcp-server/main.go: Standalone HTTP MCP server for symexpr
//
// Exposes symexpr tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//
//	go run ./cmd/mcp-server -addr :8080
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/njchilds90/symexpr/internal/config"
	"github.com/njchilds90/symexpr/internal/server"
)

func main() {
	cfg := config.DefaultConfig()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Address to listen on (env SYMEXPR_ADDR)")
	flag.Int64Var(&cfg.MaxBodyBytes, "max-body", cfg.MaxBodyBytes, "Maximum request body in bytes (env SYMEXPR_MAX_BODY)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "mcp-server: ", log.LstdFlags)
	if err := server.New(*cfg, logger).Run(ctx); err != nil {
		logger.Fatal(err)
	}
}
