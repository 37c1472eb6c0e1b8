package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_RecognizedKeys(t *testing.T) {
	h := Parse("alwaysApply: true\ndescription: Go style\nglobs:\n  - \"**/*.go\"\n  - go.mod\nowner: platform\n")

	require.NotNil(t, h.AlwaysApply)
	require.True(t, *h.AlwaysApply)
	require.True(t, h.Applies())
	require.NotNil(t, h.Description)
	require.Equal(t, "Go style", *h.Description)
	require.Equal(t, []string{"**/*.go", "go.mod"}, h.Globs)
	require.Equal(t, "platform", h.Fields["owner"])
}

func TestParse_AlwaysApplyStringForms(t *testing.T) {
	cases := map[string]*bool{
		`alwaysApply: "true"`:   boolPtr(true),
		`alwaysApply: " TRUE "`: boolPtr(true),
		`alwaysApply: "false"`:  boolPtr(false),
		`alwaysApply: false`:    boolPtr(false),
		`alwaysApply: "yes"`:    nil,
		`alwaysApply: 1`:        nil,
	}
	for raw, want := range cases {
		h := Parse(raw)
		if want == nil {
			require.Nil(t, h.AlwaysApply, raw)
			require.False(t, h.Applies(), raw)
			continue
		}
		require.NotNil(t, h.AlwaysApply, raw)
		require.Equal(t, *want, *h.AlwaysApply, raw)
	}
}

func TestParse_SingleStringGlob(t *testing.T) {
	h := Parse("globs: \"*.ts\"\n")
	require.Equal(t, []string{"*.ts"}, h.Globs)
}

func TestParse_InvalidYAMLYieldsEmptyHeader(t *testing.T) {
	h := Parse("alwaysApply: [true")

	require.Nil(t, h.AlwaysApply)
	require.Nil(t, h.Description)
	require.Nil(t, h.Globs)
	require.NotNil(t, h.Fields)
	require.Empty(t, h.Fields)
}

func TestParse_NonMappingYieldsEmptyHeader(t *testing.T) {
	h := Parse("- a\n- b\n")
	require.Empty(t, h.Fields)
}

func boolPtr(b bool) *bool { return &b }
