package output

import (
	"path"
	"strings"
)

// PathMapping rewrites a source-relative path into an output-relative path.
//
// Prefix is stripped when present. Then CompoundSuffix and Suffix are tried in
// that order (case-insensitive); the first that matches is replaced by
// Replacement and no further rewrite is applied.
type PathMapping struct {
	Prefix         string
	CompoundSuffix string
	Suffix         string
	Replacement    string
}

// RulesMapping maps rules/x.rules.md and rules/x.md to x.mdc.
var RulesMapping = PathMapping{
	Prefix:         "rules/",
	CompoundSuffix: ".rules.md",
	Suffix:         ".md",
	Replacement:    ".mdc",
}

// SkillsMapping strips the skills/ prefix and keeps the extension.
var SkillsMapping = PathMapping{Prefix: "skills/"}

// Map applies the mapping to rel.
func (m PathMapping) Map(rel string) string {
	out := rel
	if m.Prefix != "" && strings.HasPrefix(out, m.Prefix) && len(out) > len(m.Prefix) {
		out = out[len(m.Prefix):]
	}
	for _, suffix := range []string{m.CompoundSuffix, m.Suffix} {
		if suffix == "" || len(out) < len(suffix) {
			continue
		}
		if strings.EqualFold(out[len(out)-len(suffix):], suffix) {
			return out[:len(out)-len(suffix)] + m.Replacement
		}
	}
	return out
}

// Within joins a mapped path under an output directory using forward slashes.
func (m PathMapping) Within(dir, rel string) string {
	return path.Join(strings.ReplaceAll(dir, `\`, "/"), m.Map(rel))
}
