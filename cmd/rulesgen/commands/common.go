// Package commands holds the rulesgen subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevelEnv overrides the log level when set (debug, info, warn, error).
const LogLevelEnv = "RULESGEN_LOG_LEVEL"

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string `short:"c" help:"Spec file path (default: rules.yaml in the working directory)"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate rules and skills outputs from the hub (default)"`
	Init     InitCmd     `cmd:"" help:"Write an example spec file"`
	Version  VersionCmd  `cmd:"" help:"Show version and exit"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.logLevel()})))
	return nil
}

func (c *CLI) logLevel() slog.Level {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	if raw := strings.TrimSpace(os.Getenv(LogLevelEnv)); raw != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(raw)); err == nil {
			level = parsed
		}
	}
	return level
}
