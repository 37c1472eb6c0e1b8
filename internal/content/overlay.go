package content

import "strings"

// JoinOverlays concatenates overlay file contents, separated by blank lines.
func JoinOverlays(texts []string) string {
	return strings.Join(texts, "\n\n")
}

// MergeOverlay appends a non-empty overlay to raw after a blank line.
func MergeOverlay(raw, overlay string) string {
	if overlay == "" {
		return raw
	}
	return raw + "\n\n" + overlay
}
