// Package sources expands hub glob patterns into the ordered document list of one kind.
package sources

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
	"git.home.luguber.info/inful/rulesgen/internal/util/sets"
)

// Resolve expands patterns against root and returns the union as forward-slash
// relative paths, deduplicated and sorted ascending. Directories never match.
//
// An empty union is fatal for the kind named by label.
func Resolve(patterns []string, root, label string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := sets.New[string]()
	var out []string

	for _, raw := range patterns {
		pattern := normalizePattern(raw)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.ConfigError("invalid source pattern: "+raw).
				WithContext("label", label).
				WithContext("pattern", raw).
				Build()
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to expand source pattern").
				Fatal().
				WithContext("label", label).
				WithContext("pattern", raw).
				WithContext("root", root).
				Build()
		}
		for _, m := range matches {
			if rel := filepath.ToSlash(m); seen.Insert(rel) {
				out = append(out, rel)
			}
		}
	}

	if len(out) == 0 {
		joined := strings.Join(patterns, ", ")
		return nil, errors.NoSourcesError("no source files matched for " + label + " (patterns: " + joined + ")").
			WithContext("label", label).
			WithContext("patterns", joined).
			Build()
	}
	sort.Strings(out)
	return out, nil
}

// normalizePattern makes a pattern usable against an fs.FS rooted at the content root.
func normalizePattern(raw string) string {
	p := filepath.ToSlash(strings.TrimSpace(raw))
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return ""
	}
	return path.Clean(p)
}
