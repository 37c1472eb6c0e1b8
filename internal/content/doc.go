// Package content turns raw hub documents into audience-specific text.
//
// Everything here is pure: no filesystem access, no shared state between calls.
// The pipeline is overlay merge, header split, then segment filtering.
package content
