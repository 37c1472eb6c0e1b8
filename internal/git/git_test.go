package git

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/rulesgen/internal/config"
	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
	"git.home.luguber.info/inful/rulesgen/internal/retry"
)

// initHubRepo creates a repository on branch main with the given files committed.
func initHubRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName("main")},
	})
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		_, err = wt.Add(rel)
		require.NoError(t, err)
	}
	_, err = wt.Commit("seed hub", &git.CommitOptions{
		Author: &object.Signature{Name: "hub", Email: "hub@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func listWorkspaces(t *testing.T, base string) []string {
	t.Helper()
	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "rulesgen-") {
			out = append(out, e.Name())
		}
	}
	return out
}

func TestFetch_ClonesBranchAndReleases(t *testing.T) {
	hub := initHubRepo(t, map[string]string{
		"rules/base.md":    "# Base\n",
		"skills/deploy.md": "# Deploy\n",
	})
	base := t.TempDir()

	snap, err := NewClient(base).Fetch(context.Background(), config.HubConfig{URL: hub, Branch: "main"})
	require.NoError(t, err)
	require.Equal(t, "main", snap.Branch)
	require.Equal(t, hub, snap.URL)
	require.Len(t, snap.Commit, 8)
	require.FileExists(t, filepath.Join(snap.Root, "rules", "base.md"))
	require.Len(t, listWorkspaces(t, base), 1)

	require.NoError(t, snap.Release())
	require.NoDirExists(t, snap.Root)
	require.Empty(t, listWorkspaces(t, base))
}

func TestFetch_MissingBranchCleansUp(t *testing.T) {
	hub := initHubRepo(t, map[string]string{"rules/a.md": "a"})
	base := t.TempDir()

	_, err := NewClient(base).Fetch(context.Background(), config.HubConfig{URL: hub, Branch: "release"})
	require.Error(t, err)
	require.True(t, errors.IsClassified(err))
	require.Empty(t, listWorkspaces(t, base))
}

func TestFetch_MissingRepository(t *testing.T) {
	base := t.TempDir()

	_, err := NewClient(base).Fetch(context.Background(), config.HubConfig{URL: filepath.Join(base, "nope"), Branch: "main"})
	require.Error(t, err)
	require.True(t, errors.IsClassified(err))
	require.Empty(t, listWorkspaces(t, base))
}

func TestFetch_RequiresURL(t *testing.T) {
	_, err := NewClient(t.TempDir()).Fetch(context.Background(), config.HubConfig{})
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestCheck(t *testing.T) {
	client := NewClient("")
	require.True(t, errors.HasCategory(client.Check(config.HubConfig{}), errors.CategoryConfig))
	require.NoError(t, client.Check(config.HubConfig{URL: "https://example.com/hub.git"}))
}

func TestSnapshot_ZeroReleaseIsNoop(t *testing.T) {
	require.NoError(t, Snapshot{}.Release())
}

func TestClassifyGitError(t *testing.T) {
	cases := []struct {
		msg      string
		category errors.ErrorCategory
		retry    errors.RetryStrategy
	}{
		{"authentication required", errors.CategoryAuth, errors.RetryUserAction},
		{"couldn't find remote ref refs/heads/main", errors.CategoryNotFound, errors.RetryNever},
		{"repository not found", errors.CategoryNotFound, errors.RetryNever},
		{"read: connection reset by peer", errors.CategoryNetwork, errors.RetryBackoff},
		{"429 Too Many Requests", errors.CategoryNetwork, errors.RetryRateLimit},
		{"unsupported protocol scheme", errors.CategoryConfig, errors.RetryNever},
		{"object corrupt", errors.CategoryGit, errors.RetryNever},
	}
	for _, tc := range cases {
		err := ClassifyGitError(stderrors.New(tc.msg), "clone", "https://example.com/hub.git")
		ce, ok := errors.AsClassified(err)
		require.True(t, ok, tc.msg)
		require.Equal(t, tc.category, ce.Category(), tc.msg)
		require.Equal(t, tc.retry, ce.RetryStrategy(), tc.msg)
		url, _ := ce.Context().GetString("url")
		require.Equal(t, "https://example.com/hub.git", url)
	}

	require.NoError(t, ClassifyGitError(nil, "clone", ""))
	already := errors.ConfigError("x").Build()
	require.Same(t, already, ClassifyGitError(already, "clone", ""))
}

func TestWithRetry_RetriesTransientOnly(t *testing.T) {
	pol := retry.NewPolicy(config.RetryBackoffFixed, time.Millisecond, time.Millisecond, 2)

	calls := 0
	out, err := withRetry(context.Background(), pol, "clone", "u", func() (string, error) {
		calls++
		if calls < 3 {
			return "", ClassifyGitError(stderrors.New("connection reset"), "clone", "u")
		}
		return "abc", nil
	})
	require.NoError(t, err)
	require.Equal(t, "abc", out)
	require.Equal(t, 3, calls)

	calls = 0
	_, err = withRetry(context.Background(), pol, "clone", "u", func() (string, error) {
		calls++
		return "", ClassifyGitError(stderrors.New("authentication required"), "clone", "u")
	})
	require.True(t, errors.HasCategory(err, errors.CategoryAuth))
	require.Equal(t, 1, calls)
}

func TestWithRetry_ExhaustedReportsAttempts(t *testing.T) {
	pol := retry.NewPolicy(config.RetryBackoffFixed, time.Millisecond, time.Millisecond, 1)

	_, err := withRetry(context.Background(), pol, "clone", "u", func() (string, error) {
		return "", ClassifyGitError(stderrors.New("i/o timeout"), "clone", "u")
	})
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	attempts, _ := ce.Context().Get("attempts")
	require.Equal(t, 2, attempts)
}

func TestAuthMethod(t *testing.T) {
	m, err := authMethod(&config.AuthConfig{Type: config.AuthTypeToken, Token: "t"})
	require.NoError(t, err)
	require.NotNil(t, m)

	_, err = authMethod(&config.AuthConfig{Type: config.AuthTypeToken})
	require.True(t, errors.HasCategory(err, errors.CategoryAuth))

	_, err = authMethod(&config.AuthConfig{Type: config.AuthTypeBasic, Username: "u"})
	require.True(t, errors.HasCategory(err, errors.CategoryAuth))

	_, err = authMethod(&config.AuthConfig{Type: config.AuthTypeSSH, KeyPath: filepath.Join(t.TempDir(), "missing")})
	require.True(t, errors.HasCategory(err, errors.CategoryAuth))

	_, err = authMethod(&config.AuthConfig{Type: "kerberos"})
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}
