package output

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// WriteFile creates parent directories and overwrites path with data.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			Fatal().
			WithContext("path", filepath.Dir(path)).
			Build()
	}
	if err := os.WriteFile(path, data, fileMode); err != nil { //nolint:gosec // generated artifacts are read by editor tooling
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write artifact").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}

// TreeWriter writes mirrored-tree artifacts under Root.
type TreeWriter struct {
	Root    string
	Mapping PathMapping
}

// Write maps rel and writes text. It returns the written path.
func (w TreeWriter) Write(rel, text string) (string, error) {
	target := filepath.Join(w.Root, filepath.FromSlash(w.Mapping.Map(rel)))
	if err := WriteFile(target, []byte(text)); err != nil {
		return "", err
	}
	return target, nil
}
