package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/rulesgen/internal/config"
	"git.home.luguber.info/inful/rulesgen/internal/generate"
	"git.home.luguber.info/inful/rulesgen/internal/git"
	"git.home.luguber.info/inful/rulesgen/internal/logfields"
	"git.home.luguber.info/inful/rulesgen/internal/metrics"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Dir             string `short:"C" help:"Working directory that receives the outputs" default:"."`
	Repo            string `short:"r" help:"Hub repository URL (overrides hub.url)"`
	Branch          string `short:"b" help:"Hub branch (overrides hub.branch)"`
	Spec            string `help:"Spec file path (overrides --config)"`
	Out             string `help:"Comma separated output targets" default:"cursor,codex"`
	Kinds           string `help:"Comma separated kinds (default: rules, plus skills when the spec declares them)"`
	CursorOut       string `name:"cursor-out" help:"Rules directory for the cursor target"`
	CodexOut        string `name:"codex-out" help:"Rules bundle file or directory for the codex target"`
	AgentOut        string `name:"agent-out" help:"Canonical skills directory"`
	Depth           int    `help:"Clone depth (0 keeps the spec value, negative fetches full history)"`
	NoGitignore     bool   `name:"no-gitignore" help:"Do not update .gitignore"`
	MetricsTextfile string `name:"metrics-textfile" help:"Write run metrics to this file in textfile collector format"`
	HubDir          string `name:"hub-dir" help:"Use a local hub directory instead of cloning"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	dir, err := filepath.Abs(g.Dir)
	if err != nil {
		return err
	}
	if loaded, err := config.LoadEnv(dir); err != nil {
		return err
	} else if len(loaded) > 0 {
		slog.Debug("Loaded env files", logfields.Count(len(loaded)))
	}

	opts, err := g.options(dir, root)
	if err != nil {
		return err
	}

	var fetcher generate.Fetcher = git.NewClient("")
	if g.HubDir != "" {
		fetcher = generate.LocalFetcher{Dir: g.HubDir}
	}
	rec := metrics.NewPrometheusRecorder(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, runErr := generate.New(fetcher, generate.WithRecorder(rec)).Run(ctx, opts)
	if g.MetricsTextfile != "" {
		if err := rec.WriteTextfile(g.MetricsTextfile); err != nil {
			slog.Warn("Failed to write metrics", logfields.Path(g.MetricsTextfile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}
	_, err = fmt.Fprintf(global.stdout(), "Generated: %s\n", summary)
	return err
}

func (g *GenerateCmd) options(dir string, root *CLI) (generate.Options, error) {
	targets, err := config.ParseTargets(g.Out)
	if err != nil {
		return generate.Options{}, err
	}
	var kinds []config.Kind
	if g.Kinds != "" {
		if kinds, err = config.ParseKinds(g.Kinds); err != nil {
			return generate.Options{}, err
		}
	}
	spec := g.Spec
	if spec == "" {
		spec = root.Config
	}
	return generate.Options{
		WorkDir:  dir,
		SpecPath: spec,
		Repo:     g.Repo,
		Branch:   g.Branch,
		Depth:    g.Depth,
		Kinds:    kinds,
		Targets:  targets,
		Overrides: config.Overrides{
			CursorOut: g.CursorOut,
			CodexOut:  g.CodexOut,
			AgentOut:  g.AgentOut,
		},
		SkipGitignore: g.NoGitignore,
	}, nil
}
