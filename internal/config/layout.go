package config

import (
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

// Default output locations, relative to the working root.
const (
	DefaultRulesTree       = ".cursor/rules"
	DefaultRulesBundle     = "AGENTS.md"
	DefaultSkillsCanonical = ".agents/skills"
	DefaultSkillsCursor    = ".cursor/skills"
	DefaultSkillsCodex     = ".codex/skills"

	bundleFileName = "AGENTS.md"
)

// Overrides carries command-line output path overrides. Empty fields defer to the spec.
type Overrides struct {
	CursorOut string // rules mirrored tree directory
	CodexOut  string // rules bundle file or directory
	AgentOut  string // canonical skills directory
}

// Layout is the resolved set of output paths for one run.
type Layout struct {
	RulesTree       string // directory, one .mdc per rule
	RulesBundle     string // file, concatenated rules
	SkillsCanonical string // directory holding the materialized skills
	SkillsCursor    string // symlink to SkillsCanonical
	SkillsCodex     string // symlink to SkillsCanonical
}

// ResolveLayout applies precedence CLI override > spec outputs > default.
func ResolveLayout(spec GenerationSpec, ov Overrides) (Layout, error) {
	rules := spec.Rules.OutputOverrides()
	skills := spec.Skills.OutputOverrides()

	bundle := firstNonEmpty(ov.CodexOut, pathOf(rules.Codex), DefaultRulesBundle)
	if IsDirPath(bundle) {
		bundle = filepath.Join(bundle, bundleFileName)
	}

	layout := Layout{
		RulesTree:       firstNonEmpty(ov.CursorOut, pathOf(rules.Cursor), DefaultRulesTree),
		RulesBundle:     bundle,
		SkillsCanonical: firstNonEmpty(ov.AgentOut, pathOf(skills.Agent), DefaultSkillsCanonical),
		SkillsCursor:    firstNonEmpty(pathOf(skills.Cursor), DefaultSkillsCursor),
		SkillsCodex:     firstNonEmpty(pathOf(skills.Codex), DefaultSkillsCodex),
	}

	for _, f := range []struct{ key, path string }{
		{"skills.outputs.agent.path", layout.SkillsCanonical},
		{"skills.outputs.cursor.path", layout.SkillsCursor},
		{"skills.outputs.codex.path", layout.SkillsCodex},
	} {
		if !IsDirPath(f.path) {
			return Layout{}, errors.ConfigError("skills output must be a directory: "+f.path).
				WithContext("field", f.key).
				WithContext("path", f.path).
				Build()
		}
	}
	return layout, nil
}

// IsDirPath reports whether p denotes a directory: it ends with a
// separator or its last element has no extension. A leading dot does not start
// an extension, so ".codex" is a directory.
func IsDirPath(p string) bool {
	norm := strings.ReplaceAll(p, `\`, "/")
	if strings.HasSuffix(norm, "/") {
		return true
	}
	base := path.Base(norm)
	if base == "." || base == ".." {
		return true
	}
	if len(base) > 1 && base[0] == '.' {
		base = base[1:]
	}
	return path.Ext(base) == ""
}

func pathOf(p *PathSpec) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
