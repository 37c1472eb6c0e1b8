// Package frontmatter splits and interprets the optional `---` header block of a document.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Split separates a leading `---` delimited header from the body.
//
// The header opens with a first line of exactly `---` and closes at the next
// line of exactly `---` (a trailing CR is ignored on both). raw is the text
// between the delimiters, including its final newline. One blank line after
// the closer is consumed. Without a closer the document has no header and
// body is the full input.
func Split(text string) (raw string, body string, had bool) {
	open, rest, ok := cutLine(text)
	if !ok || open != delimiter {
		return "", text, false
	}

	offset := 0
	for offset < len(rest) {
		line, next, _ := cutLine(rest[offset:])
		if line == delimiter {
			return rest[:offset], consumeBlankLine(next), true
		}
		offset = len(rest) - len(next)
	}
	return "", text, false
}

// Style captures the line ending of a source document so rewritten header
// delimiters match the header text they surround.
type Style struct {
	Newline string
}

// NL returns the line ending, "\n" when unset.
func (s Style) NL() string {
	if s.Newline == "" {
		return "\n"
	}
	return s.Newline
}

// DetectStyle reports the line ending of the first line of text.
func DetectStyle(text string) Style {
	i := strings.IndexByte(text, '\n')
	if i > 0 && text[i-1] == '\r' {
		return Style{Newline: "\r\n"}
	}
	return Style{Newline: "\n"}
}

// Block renders raw header text back into its delimited form using the
// line ending of style.
func Block(raw string, style Style) string {
	nl := style.NL()
	if raw != "" && !strings.HasSuffix(raw, "\n") {
		raw += nl
	}
	return delimiter + nl + raw + delimiter + nl
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// cutLine returns the first line of s without its line ending, the remainder
// after the newline, and whether a newline was found.
func cutLine(s string) (line, rest string, ok bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return strings.TrimSuffix(s, "\r"), "", false
	}
	return strings.TrimSuffix(s[:i], "\r"), s[i+1:], true
}

func consumeBlankLine(s string) string {
	if line, rest, ok := cutLine(s); ok && line == "" {
		return rest
	}
	return s
}
