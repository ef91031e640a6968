// Package config holds the settings shared by the symexpr tool server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultAddr is the listen address used when SYMEXPR_ADDR is unset.
	DefaultAddr = ":8080"

	// DefaultMaxBodyBytes caps a tool request body at 1 MiB.
	DefaultMaxBodyBytes int64 = 1 << 20
)

// Config holds configuration for the tool server.
type Config struct {
	// Addr is the TCP address to listen on, e.g. ":8080".
	// Defaults to SYMEXPR_ADDR, then DefaultAddr.
	Addr string

	// MaxBodyBytes limits the size of a POST /tool body.
	// Defaults to SYMEXPR_MAX_BODY, then DefaultMaxBodyBytes.
	MaxBodyBytes int64

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds how long Run waits for in-flight requests.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:              defaultAddr(),
		MaxBodyBytes:      defaultMaxBodyBytes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

func defaultAddr() string {
	if addr := os.Getenv("SYMEXPR_ADDR"); addr != "" {
		return addr
	}
	return DefaultAddr
}

// defaultMaxBodyBytes ignores values that do not parse; Validate catches the
// ones that parse but are out of range.
func defaultMaxBodyBytes() int64 {
	if s := os.Getenv("SYMEXPR_MAX_BODY"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return DefaultMaxBodyBytes
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: listen address is empty")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	for name, d := range map[string]time.Duration{
		"read header timeout": c.ReadHeaderTimeout,
		"read timeout":        c.ReadTimeout,
		"write timeout":       c.WriteTimeout,
		"idle timeout":        c.IdleTimeout,
		"shutdown timeout":    c.ShutdownTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("config: %s must not be negative, got %s", name, d)
		}
	}
	return nil
}
