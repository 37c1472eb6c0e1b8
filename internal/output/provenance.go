package output

import (
	"fmt"

	"git.home.luguber.info/inful/rulesgen/internal/content"
	"git.home.luguber.info/inful/rulesgen/internal/frontmatter"
)

// Provenance identifies where generated artifacts came from.
type Provenance struct {
	Repo   string
	Branch string
}

// Comment renders the provenance line.
func (p Provenance) Comment() string {
	return fmt.Sprintf("<!-- GENERATED: do not edit. repo=%s branch=%s -->", p.Repo, p.Branch)
}

// Artifact composes a per-document file. A header block stays first so the
// file remains machine-parseable; the provenance line follows it in the
// header's line ending.
func Artifact(res content.Result, prov Provenance) string {
	if !res.HasHeader {
		return prov.Comment() + "\n" + res.Body
	}
	return frontmatter.Block(res.RawHeader, res.Style) + prov.Comment() + res.Style.NL() + res.Body
}
