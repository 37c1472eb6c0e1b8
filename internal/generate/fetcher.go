package generate

import (
	"context"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/rulesgen/internal/config"
	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
	"git.home.luguber.info/inful/rulesgen/internal/git"
)

// Fetcher acquires the content root for a run. The returned snapshot must be released.
type Fetcher interface {
	Fetch(ctx context.Context, hub config.HubConfig) (git.Snapshot, error)
}

// HubChecker is implemented by fetchers that can reject a hub configuration
// before anything is written.
type HubChecker interface {
	Check(hub config.HubConfig) error
}

var (
	_ Fetcher    = (*git.Client)(nil)
	_ HubChecker = (*git.Client)(nil)
)

// LocalFetcher serves an existing hub checkout. Nothing is copied or removed.
type LocalFetcher struct {
	Dir string
}

// Fetch returns a snapshot rooted at Dir. Provenance uses hub.URL when set.
func (f LocalFetcher) Fetch(_ context.Context, hub config.HubConfig) (git.Snapshot, error) {
	dir, err := filepath.Abs(f.Dir)
	if err != nil {
		return git.Snapshot{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve hub directory").
			Fatal().WithContext("path", f.Dir).Build()
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return git.Snapshot{}, errors.ConfigError("hub directory not found: "+f.Dir).
			WithContext("path", dir).
			Build()
	}
	repo := hub.URL
	if repo == "" {
		repo = f.Dir
	}
	return git.NewSnapshot(dir, repo, hub.Branch, "", nil), nil
}
