// Package output materializes transformed documents on disk.
//
// Three shapes are supported: a mirrored tree with one artifact per document,
// a single bundle concatenating a kind, and a canonical directory shared by
// consumers through symlinks. Every write overwrites; a failed run is repaired
// by running again with the same inputs.
package output
