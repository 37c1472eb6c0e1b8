// Package gitignore keeps generated output roots listed in a project's .gitignore.
package gitignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/rulesgen/internal/config"
	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
	"git.home.luguber.info/inful/rulesgen/internal/util/sets"
)

// FileName is the ignore file maintained in the working root.
const FileName = ".gitignore"

var lineBreak = regexp.MustCompile(`\r?\n`)

// Patterns converts output paths into ignore patterns relative to root.
// Directory-like paths get a trailing slash. Duplicates are dropped.
func Patterns(root string, targets []string) []string {
	seen := sets.New[string]()
	var out []string
	for _, target := range targets {
		if strings.TrimSpace(target) == "" {
			continue
		}
		p := relativeTo(root, target)
		if config.IsDirPath(p) && !strings.HasSuffix(p, "/") {
			p += "/"
		}
		if seen.Insert(p) {
			out = append(out, p)
		}
	}
	return out
}

// EnsurePatterns appends the patterns for targets missing from root/.gitignore.
//
// A pattern counts as present only when it appears verbatim as a line. When
// nothing is missing the file is not touched. Otherwise one blank separator
// line is added after existing content that does not already end with one,
// then the missing patterns, and the file ends with exactly one newline.
func EnsurePatterns(root string, targets []string) ([]string, error) {
	path := filepath.Join(root, FileName)

	var existing []string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		existing = lineBreak.Split(string(data), -1)
		if n := len(existing); n > 0 && existing[n-1] == "" {
			existing = existing[:n-1]
		}
	case !os.IsNotExist(err):
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read ignore file").
			Fatal().WithContext("path", path).Build()
	}

	missing := sets.New(existing...).Keep(Patterns(root, targets))
	if len(missing) == 0 {
		return nil, nil
	}

	next := append([]string{}, existing...)
	if n := len(next); n > 0 && strings.TrimSpace(next[n-1]) != "" {
		next = append(next, "")
	}
	next = append(next, missing...)
	text := strings.TrimRight(strings.Join(next, "\n"), "\n") + "\n"

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil { //nolint:gosec // .gitignore is a tracked project file
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to write ignore file").
			Fatal().WithContext("path", path).Build()
	}
	return missing, nil
}

func relativeTo(root, target string) string {
	abs := target
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, target)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." {
		rel = target
	}
	rel = filepath.ToSlash(rel)
	if strings.HasSuffix(target, "/") || strings.HasSuffix(target, `\`) {
		rel = strings.TrimSuffix(rel, "/") + "/"
	}
	return rel
}
