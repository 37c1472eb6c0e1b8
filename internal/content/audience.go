package content

import (
	"regexp"

	"git.home.luguber.info/inful/rulesgen/internal/util/sets"
)

// Audience labels a segment of a document body.
type Audience string

const (
	AudienceAll    Audience = "all"
	AudienceCursor Audience = "cursor"
	AudienceCodex  Audience = "codex"
)

// Audiences is the set of labels kept by a filtering pass.
type Audiences = sets.Set[Audience]

// NewAudiences builds an audience set.
func NewAudiences(labels ...Audience) Audiences {
	return sets.New(labels...)
}

var (
	markerPattern     = regexp.MustCompile(`<!--\s*target:(all|cursor|codex)\s*-->`)
	standalonePattern = regexp.MustCompile(`^\s*<!--\s*target:(all|cursor|codex)\s*-->\s*$`)
)

// ParseMarker reports whether line carries a segment marker and returns its
// label. The marker may sit anywhere on the line; the first one wins.
func ParseMarker(line string) (Audience, bool) {
	m := markerPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return Audience(m[1]), true
}

// IsStandaloneMarker reports whether line holds a marker and nothing else.
func IsStandaloneMarker(line string) bool {
	return standalonePattern.MatchString(line)
}
