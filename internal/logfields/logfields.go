package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID    = "run_id"
	KeyKind     = "kind"
	KeyTarget   = "target"
	KeyShape    = "shape"
	KeyPath     = "path"
	KeyFile     = "file"
	KeyURL      = "url"
	KeyBranch   = "branch"
	KeyCommit   = "commit"
	KeyPattern  = "patterns"
	KeyCount    = "count"
	KeyAction   = "action"
	KeyError    = "error"
	KeyDuration = "duration_ms"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr         { return slog.String(KeyRunID, id) }
func Kind(k string) slog.Attr           { return slog.String(KeyKind, k) }
func Target(t string) slog.Attr         { return slog.String(KeyTarget, t) }
func Shape(s string) slog.Attr          { return slog.String(KeyShape, s) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func File(f string) slog.Attr           { return slog.String(KeyFile, f) }
func URL(u string) slog.Attr            { return slog.String(KeyURL, u) }
func Branch(b string) slog.Attr         { return slog.String(KeyBranch, b) }
func Commit(c string) slog.Attr         { return slog.String(KeyCommit, c) }
func Patterns(p []string) slog.Attr     { return slog.Any(KeyPattern, p) }
func Count(n int) slog.Attr             { return slog.Int(KeyCount, n) }
func Action(a string) slog.Attr         { return slog.String(KeyAction, a) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDuration, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
