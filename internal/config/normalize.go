package config

import (
	"strings"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

// Normalize converts a raw spec into the two-entry GenerationSpec.
//
// A nil raw spec yields the built-in defaults. A legacy flat spec (non-empty
// root sources) is promoted to the rules entry; an explicit rules entry wins
// over it. The legacy shape never applies to skills.
func Normalize(raw *RawSpec) GenerationSpec {
	if raw == nil {
		return DefaultSpec()
	}

	var legacy *EntrySpec
	if len(raw.Sources) > 0 {
		legacy = &EntrySpec{Sources: raw.Sources, Overlays: raw.Overlays, Outputs: raw.Outputs}
	}

	rulesBase := raw.Rules
	if rulesBase == nil {
		rulesBase = legacy
	}

	return GenerationSpec{
		Rules:  normalizeEntry(rulesBase, KindRules),
		Skills: normalizeEntry(raw.Skills, KindSkills),
		Hub:    normalizeHub(raw.Hub),

		skillsDeclared: raw.Skills != nil,
	}
}

func normalizeEntry(base *EntrySpec, kind Kind) EntrySpec {
	if base == nil {
		return EntrySpec{Sources: DefaultSources(kind), Overlays: []string{}}
	}
	entry := EntrySpec{
		Sources:  trimStringSlice(base.Sources),
		Overlays: trimStringSlice(base.Overlays),
		Outputs:  base.Outputs,
	}
	if len(entry.Sources) == 0 {
		entry.Sources = DefaultSources(kind)
	}
	if entry.Overlays == nil {
		entry.Overlays = []string{}
	}
	return entry
}

// Validate reports a ConfigError when a requested kind has no source patterns.
// Specs produced by Normalize always pass; hand-built specs may not.
func (s GenerationSpec) Validate(kinds []Kind) error {
	for _, kind := range kinds {
		if len(s.Entry(kind).Sources) == 0 {
			return errors.ConfigError("no source patterns declared for " + string(kind)).
				WithContext("kind", string(kind)).
				Build()
		}
	}
	return nil
}

// trimStringSlice removes empty entries (after trimming whitespace) from a string slice.
// Does not dedupe or sort; order is significant for patterns and overlays.
func trimStringSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, p := range in {
		if tp := strings.TrimSpace(p); tp != "" {
			out = append(out, tp)
		}
	}
	return out
}
