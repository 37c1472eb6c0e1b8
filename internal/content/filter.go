package content

import (
	"strings"
	"unicode"
)

// segmentState is the running value of the line fold in Filter.
type segmentState struct {
	active Audience
	kept   []string
}

func (s segmentState) step(line string, audiences Audiences) segmentState {
	if label, ok := ParseMarker(line); ok {
		s.active = label
		return s
	}
	if audiences.Has(s.active) {
		s.kept = append(s.kept, line)
	}
	return s
}

// Filter keeps the lines whose active label is in audiences.
//
// Lines carrying a marker switch the active label and are always dropped,
// including any text that shares the line with the marker. The label
// before the first marker is "all". The result ends with exactly one newline.
func Filter(body string, audiences Audiences) string {
	lines := strings.Split(body, "\n")
	state := segmentState{active: AudienceAll, kept: make([]string, 0, len(lines))}
	for _, line := range lines {
		state = state.step(line, audiences)
	}
	return strings.TrimRightFunc(strings.Join(state.kept, "\n"), unicode.IsSpace) + "\n"
}
