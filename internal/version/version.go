// Package version carries build information injected at link time:
// go build -ldflags "-X git.home.luguber.info/inful/rulesgen/internal/version.Version=v0.3.0".
package version

import "fmt"

var (
	Version   = "unknown"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the build information on one line.
func String() string {
	return fmt.Sprintf("rulesgen %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
