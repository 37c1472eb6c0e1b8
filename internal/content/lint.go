package content

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkerWarning describes an HTML comment that looks like a segment marker
// but is not one. Such comments are kept as ordinary content.
type MarkerWarning struct {
	Line   int // 1-based, relative to the linted body
	Text   string
	Reason string
}

var (
	markerCandidate = regexp.MustCompile(`(?i)<!--\s*target\b`)
	labeledComment  = regexp.MustCompile(`(?i)^\s*<!--\s*target\s*:?\s*(\S*?)\s*-->\s*$`)
)

// LintMarkers reports malformed segment markers in a Markdown body.
// Comments inside code blocks are not inspected.
func LintMarkers(body string) []MarkerWarning {
	src := []byte(body)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	byLine := map[int]MarkerWarning{}
	check := func(offset int) {
		line, lineText := lineAt(src, offset)
		if _, seen := byLine[line]; seen {
			return
		}
		if reason, bad := classifyMarker(lineText); bad {
			byLine[line] = MarkerWarning{Line: line, Text: lineText, Reason: reason}
		}
	}

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.HTMLBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				check(lines.At(i).Start)
			}
			if node.HasClosure() {
				check(node.ClosureLine.Start)
			}
		case *gmast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				check(node.Segments.At(i).Start)
			}
		}
		return gmast.WalkContinue, nil
	})

	out := make([]MarkerWarning, 0, len(byLine))
	for _, w := range byLine {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}

func classifyMarker(line string) (reason string, bad bool) {
	if IsStandaloneMarker(line) {
		return "", false
	}
	if _, ok := ParseMarker(line); ok {
		return "target marker shares its line with content; the whole line is dropped", true
	}
	if !markerCandidate.MatchString(line) {
		return "", false
	}
	if m := labeledComment.FindStringSubmatch(line); m != nil {
		label := strings.ToLower(m[1])
		switch {
		case label == "":
			return "target marker has no label", true
		case label == string(AudienceAll) || label == string(AudienceCursor) || label == string(AudienceCodex):
			return fmt.Sprintf("malformed target marker, expected <!-- target:%s -->", label), true
		default:
			return fmt.Sprintf("unknown target label %q", m[1]), true
		}
	}
	return "target marker must be alone on its line", true
}

func lineAt(src []byte, offset int) (int, string) {
	if offset > len(src) {
		offset = len(src)
	}
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := bytes.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	return bytes.Count(src[:start], []byte("\n")) + 1, string(bytes.TrimRight(src[start:end], "\r"))
}
