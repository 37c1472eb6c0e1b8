package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Kind", KeyKind, "rules", Kind("rules")},
		{"Target", KeyTarget, "cursor", Target("cursor")},
		{"Shape", KeyShape, "bundle", Shape("bundle")},
		{"Path", KeyPath, ".cursor/rules", Path(".cursor/rules")},
		{"File", KeyFile, "rules/a.md", File("rules/a.md")},
		{"URL", KeyURL, "https://example.com/hub.git", URL("https://example.com/hub.git")},
		{"Branch", KeyBranch, "main", Branch("main")},
		{"Commit", KeyCommit, "abc12345", Commit("abc12345")},
		{"Action", KeyAction, "created", Action("created")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Fatalf("%s key mismatch: got %s want %s", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Fatalf("%s value mismatch: got %s want %s", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestNumericAndErrorHelpers(t *testing.T) {
	if a := Count(3); a.Key != KeyCount || a.Value.Int64() != 3 {
		t.Fatalf("unexpected count attr: %v", a)
	}
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("expected empty error value, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("unexpected error attr: %v", a)
	}
}
