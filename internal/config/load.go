package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

var envFiles = []string{".env", ".env.local"}

// LoadEnv loads environment variables from .env/.env.local in root.
// Existing process environment variables are not overwritten and missing files are skipped.
func LoadEnv(root string) ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, errors.WrapError(err, errors.CategoryConfig, "failed to load env file").
				Fatal().
				WithContext("path", path).
				Build()
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}

// Read parses a spec file. Environment variables in the YAML content are expanded.
func Read(path string) (*RawSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("spec file not found: " + path).
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read spec file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return Parse(data, path)
}

// Parse decodes spec YAML. The document must be a mapping.
func Parse(data []byte, source string) (*RawSpec, error) {
	expanded := os.ExpandEnv(string(data))

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(expanded), &node); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid spec: failed to parse YAML").
			Fatal().
			WithContext("path", source).
			Build()
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return nil, errors.ConfigError("invalid spec: expected an object").
			WithContext("path", source).
			Build()
	}

	var raw RawSpec
	if err := node.Decode(&raw); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid spec: unexpected field types").
			Fatal().
			WithContext("path", source).
			Build()
	}
	return &raw, nil
}

// Load resolves and normalizes the spec for a working root.
//
// An explicit path must exist (relative paths are taken from root). With no
// path, rules.yaml in root is used when present; otherwise the defaults apply.
func Load(root, path string) (GenerationSpec, error) {
	if path == "" {
		candidate := filepath.Join(root, DefaultSpecFile)
		if _, err := os.Stat(candidate); err != nil {
			return DefaultSpec(), nil
		}
		path = candidate
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	raw, err := Read(path)
	if err != nil {
		return GenerationSpec{}, err
	}
	return Normalize(raw), nil
}

// Init creates a new spec file with example content.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError(fmt.Sprintf("spec file already exists: %s (use --force to overwrite)", path)).
			WithContext("path", path).
			Build()
	}

	example := RawSpec{
		Hub: &HubConfig{
			URL:    "https://github.com/example/rules-hub.git",
			Branch: DefaultBranch,
		},
		Rules: &EntrySpec{
			Sources:  DefaultSources(KindRules),
			Overlays: []string{"docs/project-rules.md"},
			Outputs: &OutputSpec{
				Cursor: &PathSpec{Path: DefaultRulesTree},
				Codex:  &PathSpec{Path: DefaultRulesBundle},
			},
		},
		Skills: &EntrySpec{
			Sources: DefaultSources(KindSkills),
			Outputs: &OutputSpec{
				Agent:  &PathSpec{Path: DefaultSkillsCanonical},
				Cursor: &PathSpec{Path: DefaultSkillsCursor},
				Codex:  &PathSpec{Path: DefaultSkillsCodex},
			},
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&example); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example spec").Fatal().Build()
	}
	if err := enc.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example spec").Fatal().Build()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to create spec directory").
				Fatal().
				WithContext("path", dir).
				Build()
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write spec file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
