package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "config error", err: ConfigError("bad spec").Build(), expected: 7},
		{name: "no sources", err: NoSourcesError("nothing matched").Build(), expected: 3},
		{name: "path conflict", err: PathConflictError("occupied").Build(), expected: 4},
		{name: "auth", err: AuthError("unauthorized").Build(), expected: 5},
		{name: "filesystem", err: FileSystemError("write failed").Build(), expected: 11},
		{name: "wrapped git error", err: fmt.Errorf("fetch: %w", GitError("clone failed").Build()), expected: 8},
		{name: "unclassified error", err: errors.New("unknown error"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	cause := errors.New("permission denied")
	err := WrapError(cause, CategoryFileSystem, "failed to write artifact").
		WithContext("path", ".cursor/rules/a.mdc").
		Build()

	t.Run("non-verbose shows message and cause", func(t *testing.T) {
		got := NewCLIErrorAdapter(false, nil).FormatError(err)
		if got != "Error: failed to write artifact: permission denied" {
			t.Errorf("unexpected format: %q", got)
		}
	})

	t.Run("verbose adds category and context", func(t *testing.T) {
		got := NewCLIErrorAdapter(true, nil).FormatError(err)
		if !strings.HasPrefix(got, "Error [filesystem]: failed to write artifact") {
			t.Errorf("unexpected format: %q", got)
		}
		if !strings.Contains(got, "path: .cursor/rules/a.mdc") {
			t.Errorf("expected context in verbose output: %q", got)
		}
	})

	t.Run("unclassified", func(t *testing.T) {
		got := NewCLIErrorAdapter(false, nil).FormatError(errors.New("boom"))
		if got != "Error: boom" {
			t.Errorf("unexpected format: %q", got)
		}
	})
}
