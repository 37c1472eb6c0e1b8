package content

import (
	"git.home.luguber.info/inful/rulesgen/internal/frontmatter"
)

// Document is a prepared document: overlay merged, header parsed, body unfiltered.
// One Document serves every audience of the same source file.
type Document struct {
	Header    frontmatter.Header
	RawHeader string
	HasHeader bool
	Style     frontmatter.Style
	Body      string
}

// Result is the output of transforming a document for one audience set.
type Result struct {
	Header    frontmatter.Header
	RawHeader string
	HasHeader bool
	Style     frontmatter.Style
	Body      string // filtered
}

// Prepare merges the overlay and splits off the header.
func Prepare(raw, overlay string) Document {
	merged := MergeOverlay(raw, overlay)
	rawHeader, body, had := frontmatter.Split(merged)

	doc := Document{RawHeader: rawHeader, HasHeader: had, Style: frontmatter.DetectStyle(raw), Body: body}
	if had {
		doc.Header = frontmatter.Parse(rawHeader)
	} else {
		doc.Header = frontmatter.FromFields(nil)
	}
	return doc
}

// Render filters the body for audiences.
func (d Document) Render(audiences Audiences) Result {
	return Result{
		Header:    d.Header,
		RawHeader: d.RawHeader,
		HasHeader: d.HasHeader,
		Style:     d.Style,
		Body:      Filter(d.Body, audiences),
	}
}

// Transform is Prepare followed by Render.
func Transform(raw, overlay string, audiences Audiences) Result {
	return Prepare(raw, overlay).Render(audiences)
}
