package output

import (
	"strconv"
	"strings"

	"git.home.luguber.info/inful/rulesgen/internal/content"
	"git.home.luguber.info/inful/rulesgen/internal/frontmatter"
)

const bundleTitle = "# AGENTS"

// Bundle accumulates documents of one kind into a single file. Sections keep
// the order in which they are added.
type Bundle struct {
	buf      strings.Builder
	sections int
}

// NewBundle starts a bundle with the provenance line and title.
func NewBundle(prov Provenance) *Bundle {
	b := &Bundle{}
	b.buf.WriteString(prov.Comment())
	b.buf.WriteString("\n")
	b.buf.WriteString(bundleTitle)
	b.buf.WriteString("\n")
	return b
}

// Add appends a section for rel. The filtered body is inlined when the header
// sets alwaysApply; otherwise the section points at treePath.
func (b *Bundle) Add(rel string, res content.Result, treePath string) {
	b.buf.WriteString("\n---\n\n## ")
	b.buf.WriteString(rel)
	b.buf.WriteString("\n\n")

	if meta := metadataLines(res.Header); len(meta) > 0 {
		for _, line := range meta {
			b.buf.WriteString(line)
			b.buf.WriteString("\n")
		}
		b.buf.WriteString("\n")
	}

	if res.Header.Applies() {
		b.buf.WriteString(res.Body)
	} else {
		b.buf.WriteString("See `")
		b.buf.WriteString(treePath)
		b.buf.WriteString("`.\n")
	}
	b.sections++
}

// Len returns the number of sections.
func (b *Bundle) Len() int { return b.sections }

// String returns the bundle text.
func (b *Bundle) String() string { return b.buf.String() }

// WriteFile writes the bundle to path in one write.
func (b *Bundle) WriteFile(path string) error {
	return WriteFile(path, []byte(b.buf.String()))
}

func metadataLines(h frontmatter.Header) []string {
	var lines []string
	if h.Description != nil {
		lines = append(lines, "- description: "+strings.Join(strings.Fields(*h.Description), " "))
	}
	if h.Globs != nil {
		lines = append(lines, "- globs: "+strings.Join(h.Globs, " "))
	}
	if h.AlwaysApply != nil {
		lines = append(lines, "- alwaysApply: "+strconv.FormatBool(*h.AlwaysApply))
	}
	return lines
}
