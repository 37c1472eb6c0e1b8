package generate

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/rulesgen/internal/config"
	"git.home.luguber.info/inful/rulesgen/internal/output"
)

// Options configures one run. Relative paths are taken from WorkDir.
type Options struct {
	WorkDir  string // working root; empty means the process working directory
	SpecPath string // empty uses rules.yaml in WorkDir when present

	Repo   string // overrides hub.url
	Branch string // overrides hub.branch
	Depth  int    // overrides hub.depth when non-zero; negative requests full history

	Kinds     []config.Kind   // empty uses the spec's default kinds
	Targets   []config.Target // empty means every target
	Overrides config.Overrides

	SkipGitignore bool
}

// Output describes one materialized (kind, target) pair.
type Output struct {
	Kind      config.Kind
	Target    string // cursor, codex or agent (canonical skills directory)
	Shape     output.Shape
	Path      string
	Documents int
	Action    output.LinkAction // symlink shape only
}

// Summary reports a finished run.
type Summary struct {
	RunID       string
	Repo        string
	Branch      string
	Commit      string
	Outputs     []Output
	IgnoreAdded []string
	Skipped     []config.Kind // default kinds left out because the spec does not declare them
	Warnings    int
	Duration    time.Duration
}

// String lists generated targets per kind, e.g. "rules: cursor, codex; skills: agent, cursor",
// followed by any skipped kinds.
func (s Summary) String() string {
	var parts []string
	var current config.Kind
	var targets []string
	flush := func() {
		if current != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", current, strings.Join(targets, ", ")))
		}
	}
	for _, o := range s.Outputs {
		if o.Kind != current {
			flush()
			current, targets = o.Kind, nil
		}
		targets = append(targets, o.Target)
	}
	flush()
	for _, k := range s.Skipped {
		parts = append(parts, fmt.Sprintf("%s skipped (no %s entry in spec)", k, k))
	}
	return strings.Join(parts, "; ")
}
