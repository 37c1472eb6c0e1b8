// Package git fetches the hub repository that rule and skill documents are read from.
//
// A fetch is a single-branch clone into an ephemeral workspace:
//   - shallow by default (depth 1), full history when depth is 0
//   - authentication via SSH key, token or basic credentials
//   - go-git failures classified into foundation errors
//   - optional retry with backoff for transient network failures
//
// The returned Snapshot owns the workspace; callers must Release it on every path.
package git
