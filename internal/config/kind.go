package config

import (
	"strings"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

// Kind is a document category with independent sources and output shapes.
type Kind string

const (
	KindRules  Kind = "rules"
	KindSkills Kind = "skills"
)

// Target is a consumer of generated output.
type Target string

const (
	TargetCursor Target = "cursor"
	TargetCodex  Target = "codex"
)

// AllKinds lists kinds in generation order.
var AllKinds = []Kind{KindRules, KindSkills}

// AllTargets lists targets in generation order.
var AllTargets = []Target{TargetCursor, TargetCodex}

// ParseKinds parses a comma separated kind list ("rules,skills").
func ParseKinds(raw string) ([]Kind, error) {
	var out []Kind
	for _, item := range splitList(raw) {
		switch k := Kind(strings.ToLower(item)); k {
		case KindRules, KindSkills:
			out = appendUnique(out, k)
		default:
			return nil, errors.ConfigError("unknown kind "+item).
				WithContext("allowed", "rules,skills").
				Build()
		}
	}
	if len(out) == 0 {
		return nil, errors.ConfigError("no kinds selected").Build()
	}
	return out, nil
}

// ParseTargets parses a comma separated target list ("cursor,codex").
func ParseTargets(raw string) ([]Target, error) {
	var out []Target
	for _, item := range splitList(raw) {
		switch t := Target(strings.ToLower(item)); t {
		case TargetCursor, TargetCodex:
			out = appendUnique(out, t)
		default:
			return nil, errors.ConfigError("unknown output target "+item).
				WithContext("allowed", "cursor,codex").
				Build()
		}
	}
	if len(out) == 0 {
		return nil, errors.ConfigError("no output targets selected").Build()
	}
	return out, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func appendUnique[T comparable](in []T, v T) []T {
	for _, existing := range in {
		if existing == v {
			return in
		}
	}
	return append(in, v)
}
