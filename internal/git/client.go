package git

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/rulesgen/internal/config"
	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
	"git.home.luguber.info/inful/rulesgen/internal/logfields"
	"git.home.luguber.info/inful/rulesgen/internal/retry"
	"git.home.luguber.info/inful/rulesgen/internal/workspace"
)

const checkoutDir = "hub"

// Snapshot is an immutable checkout of one hub branch.
type Snapshot struct {
	Root   string // content root documents are resolved against
	URL    string
	Branch string
	Commit string // short hash, empty when unknown

	release func() error
}

// NewSnapshot describes an existing content root. release may be nil.
func NewSnapshot(root, url, branch, commit string, release func() error) Snapshot {
	return Snapshot{Root: root, URL: url, Branch: branch, Commit: commit, release: release}
}

// Release removes the snapshot's workspace. It is safe to call on a zero Snapshot.
func (s Snapshot) Release() error {
	if s.release == nil {
		return nil
	}
	return s.release()
}

// Client fetches hub snapshots into workspaces under baseDir.
type Client struct {
	baseDir string
}

// NewClient creates a client. An empty baseDir means the system temp dir.
func NewClient(baseDir string) *Client { return &Client{baseDir: baseDir} }

// Check reports configuration a fetch of hub would reject.
func (c *Client) Check(hub config.HubConfig) error {
	if hub.URL == "" {
		return errors.ConfigError("hub repository URL is required (set hub.url or --repo)").
			WithContext("field", "hub.url").
			Build()
	}
	return nil
}

// Fetch clones hub.Branch of hub.URL into a fresh workspace.
// On error the workspace is already removed.
func (c *Client) Fetch(ctx context.Context, hub config.HubConfig) (Snapshot, error) {
	if err := c.Check(hub); err != nil {
		return Snapshot{}, err
	}
	branch := hub.Branch
	if branch == "" {
		branch = config.DefaultBranch
	}

	ws := workspace.NewManager(c.baseDir)
	if err := ws.Create(); err != nil {
		return Snapshot{}, err
	}
	root := filepath.Join(ws.Path(), checkoutDir)

	commit, err := withRetry(ctx, retry.ForHub(hub), "clone", hub.URL, func() (string, error) {
		return cloneOnce(ctx, hub, branch, root)
	})
	if err != nil {
		if cerr := ws.Cleanup(); cerr != nil {
			slog.Warn("Failed to clean up workspace", logfields.Path(ws.Path()), logfields.Error(cerr))
		}
		return Snapshot{}, err
	}

	return NewSnapshot(root, hub.URL, branch, commit, ws.Cleanup), nil
}

func cloneOnce(ctx context.Context, hub config.HubConfig, branch, root string) (string, error) {
	slog.Debug("Cloning hub repository", logfields.URL(hub.URL), logfields.Branch(branch), logfields.Path(root))
	if err := os.RemoveAll(root); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to reset checkout directory").
			Fatal().
			WithContext("path", root).
			Build()
	}

	opts := &git.CloneOptions{
		URL:           hub.URL,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Tags:          git.NoTags,
	}
	if hub.Depth > 0 {
		opts.Depth = hub.Depth
	}
	if !hub.Auth.IsZero() {
		auth, err := authMethod(hub.Auth)
		if err != nil {
			return "", err
		}
		opts.Auth = auth
	}

	repository, err := git.PlainCloneContext(ctx, root, false, opts)
	if err != nil {
		return "", ClassifyGitError(err, "clone", hub.URL)
	}

	commit := ""
	if ref, herr := repository.Head(); herr == nil {
		commit = ref.Hash().String()[:8]
	}
	slog.Info("Hub repository cloned", logfields.URL(hub.URL), logfields.Branch(branch), logfields.Commit(commit))
	return commit, nil
}
