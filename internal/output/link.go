package output

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

// LinkAction reports what ConvergeLink did.
type LinkAction string

const (
	LinkCreated   LinkAction = "created"
	LinkUnchanged LinkAction = "unchanged"
	LinkReplaced  LinkAction = "replaced"
)

// ConvergeLink makes linkPath a symlink to canonicalDir.
//
// A missing link is created and a link to another location is replaced. A
// link already resolving to canonicalDir is left alone. Any other entry at
// linkPath is a PathConflictError and is never removed. The link target is
// stored relative to the link's directory.
func ConvergeLink(linkPath, canonicalDir string) (LinkAction, error) {
	linkAbs, err := filepath.Abs(linkPath)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve link path").
			Fatal().WithContext("path", linkPath).Build()
	}
	canonicalAbs, err := filepath.Abs(canonicalDir)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve canonical directory").
			Fatal().WithContext("path", canonicalDir).Build()
	}

	action := LinkCreated
	info, err := os.Lstat(linkAbs)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink == 0:
		return "", errors.PathConflictError("refusing to replace non-symlink at "+linkPath).
			WithContext("path", linkPath).
			WithContext("canonical", canonicalDir).
			Build()
	case err == nil:
		if resolvesTo(linkAbs, canonicalAbs) {
			return LinkUnchanged, nil
		}
		if rmErr := os.Remove(linkAbs); rmErr != nil {
			return "", errors.WrapError(rmErr, errors.CategoryFileSystem, "failed to remove stale symlink").
				Fatal().WithContext("path", linkPath).Build()
		}
		action = LinkReplaced
	case !os.IsNotExist(err):
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to inspect link path").
			Fatal().WithContext("path", linkPath).Build()
	}

	if mkErr := os.MkdirAll(filepath.Dir(linkAbs), dirMode); mkErr != nil {
		return "", errors.WrapError(mkErr, errors.CategoryFileSystem, "failed to create link parent").
			Fatal().WithContext("path", filepath.Dir(linkPath)).Build()
	}
	target, err := filepath.Rel(filepath.Dir(linkAbs), canonicalAbs)
	if err != nil {
		target = canonicalAbs
	}
	if err := os.Symlink(target, linkAbs); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to create symlink").
			Fatal().
			WithContext("path", linkPath).
			WithContext("target", target).
			Build()
	}
	return action, nil
}

func resolvesTo(linkAbs, canonicalAbs string) bool {
	current, err := os.Readlink(linkAbs)
	if err != nil {
		return false
	}
	if !filepath.IsAbs(current) {
		current = filepath.Join(filepath.Dir(linkAbs), current)
	}
	return filepath.Clean(current) == filepath.Clean(canonicalAbs)
}
