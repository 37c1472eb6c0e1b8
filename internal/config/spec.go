package config

// DefaultSpecFile is the spec file looked up in the working root when no path is given.
const DefaultSpecFile = "rules.yaml"

var (
	defaultRulesSources  = []string{"rules/**/*.rules.md", "rules/**/*.md"}
	defaultSkillsSources = []string{"skills/**/*.md"}
)

// PathSpec holds a single output path override.
type PathSpec struct {
	Path string `yaml:"path"`
}

// OutputSpec carries per-consumer output path overrides for one kind.
type OutputSpec struct {
	Cursor *PathSpec `yaml:"cursor,omitempty"`
	Codex  *PathSpec `yaml:"codex,omitempty"`
	Agent  *PathSpec `yaml:"agent,omitempty"`
}

// EntrySpec configures one document kind.
type EntrySpec struct {
	Sources  []string    `yaml:"sources,omitempty"`  // glob patterns in the hub repository
	Overlays []string    `yaml:"overlays,omitempty"` // local files appended to every document
	Outputs  *OutputSpec `yaml:"outputs,omitempty"`
}

// RawSpec is the on-disk shape of rules.yaml. It accepts both the legacy
// flat rules shape (sources/overlays/outputs at the root) and the
// multi-entry shape (rules/skills).
type RawSpec struct {
	Sources  []string    `yaml:"sources,omitempty"`
	Overlays []string    `yaml:"overlays,omitempty"`
	Outputs  *OutputSpec `yaml:"outputs,omitempty"`

	Rules  *EntrySpec `yaml:"rules,omitempty"`
	Skills *EntrySpec `yaml:"skills,omitempty"`

	Hub *HubConfig `yaml:"hub,omitempty"`
}

// GenerationSpec is the normalized configuration for one invocation.
// It is not modified after Normalize returns.
type GenerationSpec struct {
	Rules  EntrySpec
	Skills EntrySpec
	Hub    HubConfig

	skillsDeclared bool
}

// DefaultKinds returns the kinds generated when none are requested: rules,
// plus skills when the spec declares a skills entry.
func (s GenerationSpec) DefaultKinds() []Kind {
	if s.skillsDeclared {
		return []Kind{KindRules, KindSkills}
	}
	return []Kind{KindRules}
}

// Entry returns the entry for a kind.
func (s GenerationSpec) Entry(kind Kind) EntrySpec {
	if kind == KindSkills {
		return s.Skills
	}
	return s.Rules
}

// OutputOverrides returns the entry's output overrides, never nil.
func (e EntrySpec) OutputOverrides() OutputSpec {
	if e.Outputs == nil {
		return OutputSpec{}
	}
	return *e.Outputs
}

// DefaultSpec returns the built-in configuration used when no spec file exists.
func DefaultSpec() GenerationSpec {
	return GenerationSpec{
		Rules:  EntrySpec{Sources: cloneStrings(defaultRulesSources), Overlays: []string{}},
		Skills: EntrySpec{Sources: cloneStrings(defaultSkillsSources), Overlays: []string{}},
		Hub:    normalizeHub(nil),
	}
}

// DefaultSources returns the default source patterns for a kind.
func DefaultSources(kind Kind) []string {
	if kind == KindSkills {
		return cloneStrings(defaultSkillsSources)
	}
	return cloneStrings(defaultRulesSources)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
