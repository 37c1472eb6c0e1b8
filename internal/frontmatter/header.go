package frontmatter

import (
	"strings"
)

// Recognized header keys.
const (
	KeyAlwaysApply = "alwaysApply"
	KeyDescription = "description"
	KeyGlobs       = "globs"
)

// Header is the typed view of a document header. Nil fields are absent.
// Values are normalized once here and never re-interpreted downstream.
type Header struct {
	AlwaysApply *bool
	Description *string
	Globs       []string
	Fields      map[string]any
}

// Parse interprets raw header text. Empty or invalid YAML yields an empty header.
func Parse(raw string) Header {
	fields, err := ParseYAML(raw)
	if err != nil {
		fields = map[string]any{}
	}
	return FromFields(fields)
}

// FromFields normalizes recognized keys of a parsed header mapping.
//
// alwaysApply accepts a boolean or the strings "true"/"false" (trimmed,
// case-insensitive). globs accepts a list of strings or a single string.
// Keys with unusable values are treated as absent.
func FromFields(fields map[string]any) Header {
	h := Header{Fields: fields}
	if h.Fields == nil {
		h.Fields = map[string]any{}
	}

	switch v := h.Fields[KeyAlwaysApply].(type) {
	case bool:
		h.AlwaysApply = &v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			b := true
			h.AlwaysApply = &b
		case "false":
			b := false
			h.AlwaysApply = &b
		}
	}

	if v, ok := h.Fields[KeyDescription].(string); ok {
		h.Description = &v
	}

	switch v := h.Fields[KeyGlobs].(type) {
	case string:
		if g := strings.TrimSpace(v); g != "" {
			h.Globs = []string{g}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				h.Globs = append(h.Globs, strings.TrimSpace(s))
			}
		}
	}
	return h
}

// Applies reports whether the document is always applied. Absent means false.
func (h Header) Applies() bool {
	return h.AlwaysApply != nil && *h.AlwaysApply
}
