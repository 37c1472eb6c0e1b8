package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

func TestResolveLayout_Defaults(t *testing.T) {
	layout, err := ResolveLayout(DefaultSpec(), Overrides{})
	require.NoError(t, err)
	require.Equal(t, Layout{
		RulesTree:       DefaultRulesTree,
		RulesBundle:     DefaultRulesBundle,
		SkillsCanonical: DefaultSkillsCanonical,
		SkillsCursor:    DefaultSkillsCursor,
		SkillsCodex:     DefaultSkillsCodex,
	}, layout)
}

func TestResolveLayout_Precedence(t *testing.T) {
	spec := DefaultSpec()
	spec.Rules.Outputs = &OutputSpec{
		Cursor: &PathSpec{Path: "spec/rules"},
		Codex:  &PathSpec{Path: "spec/AGENTS.md"},
	}
	spec.Skills.Outputs = &OutputSpec{Agent: &PathSpec{Path: "spec/skills"}}

	layout, err := ResolveLayout(spec, Overrides{})
	require.NoError(t, err)
	require.Equal(t, "spec/rules", layout.RulesTree)
	require.Equal(t, "spec/AGENTS.md", layout.RulesBundle)
	require.Equal(t, "spec/skills", layout.SkillsCanonical)

	layout, err = ResolveLayout(spec, Overrides{CursorOut: "cli/rules", CodexOut: "cli/", AgentOut: "cli/skills"})
	require.NoError(t, err)
	require.Equal(t, "cli/rules", layout.RulesTree)
	require.Equal(t, filepath.Join("cli", "AGENTS.md"), layout.RulesBundle)
	require.Equal(t, "cli/skills", layout.SkillsCanonical)
}

func TestResolveLayout_DotNamedDirectories(t *testing.T) {
	spec := DefaultSpec()
	spec.Skills.Outputs = &OutputSpec{Codex: &PathSpec{Path: ".codex"}, Agent: &PathSpec{Path: "out/.agents"}}

	layout, err := ResolveLayout(spec, Overrides{CodexOut: ".codex"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(".codex", "AGENTS.md"), layout.RulesBundle)
	require.Equal(t, ".codex", layout.SkillsCodex)
	require.Equal(t, "out/.agents", layout.SkillsCanonical)
}

func TestResolveLayout_SkillsMustBeDirectories(t *testing.T) {
	spec := DefaultSpec()
	spec.Skills.Outputs = &OutputSpec{Cursor: &PathSpec{Path: ".cursor/skills.md"}}

	_, err := ResolveLayout(spec, Overrides{})
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestIsDirPath(t *testing.T) {
	cases := map[string]bool{
		".cursor/rules":   true,
		"out/":            true,
		`out\win\`:        true,
		"AGENTS.md":       false,
		"docs/agents.txt": false,
		"skills":          true,
		".codex":          true,
		".cursor":         true,
		"out/.agents":     true,
		".cursor/.rules":  true,
		".env.local":      false,
		"out/.notes.md":   false,
	}
	for in, want := range cases {
		require.Equal(t, want, IsDirPath(in), in)
	}
}
