// Package workspace manages the ephemeral directory a hub snapshot is fetched into.
//
// Directories are named rulesgen-<timestamp>-<random> under the system temp dir
// and are removed by Cleanup, which callers defer right after Create.
package workspace
