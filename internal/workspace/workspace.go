package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
	"git.home.luguber.info/inful/rulesgen/internal/logfields"
)

// Prefix names the temporary content roots created by Manager.
const Prefix = "rulesgen"

// Manager owns one ephemeral content root for a generation run.
type Manager struct {
	baseDir string
	dir     string
}

// NewManager creates a manager rooted at baseDir (the system temp dir when empty).
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// Create makes a fresh timestamped directory. Calling it again without
// Cleanup is an error.
func (m *Manager) Create() error {
	if m.dir != "" {
		return errors.InternalError("workspace already created").WithContext("path", m.dir).Build()
	}
	timestamp := time.Now().Format("20060102-150405")
	dir, err := os.MkdirTemp(m.baseDir, fmt.Sprintf("%s-%s-*", Prefix, timestamp))
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create workspace directory").
			Fatal().
			WithContext("path", m.baseDir).
			Build()
	}
	m.dir = dir
	slog.Debug("Created workspace", logfields.Path(dir))
	return nil
}

// Path returns the workspace directory, empty before Create.
func (m *Manager) Path() string {
	return m.dir
}

// Cleanup removes the workspace directory. It is safe to call more than once.
func (m *Manager) Cleanup() error {
	if m.dir == "" {
		return nil
	}
	if err := os.RemoveAll(m.dir); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to cleanup workspace").
			WithContext("path", m.dir).
			Build()
	}
	slog.Debug("Cleaned up workspace", logfields.Path(m.dir))
	m.dir = ""
	return nil
}
