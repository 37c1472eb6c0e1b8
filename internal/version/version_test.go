package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require.Equal(t, "rulesgen unknown (commit unknown, built unknown)", String())
}

func TestString_LinkTimeValues(t *testing.T) {
	orig := [3]string{Version, GitCommit, BuildTime}
	t.Cleanup(func() { Version, GitCommit, BuildTime = orig[0], orig[1], orig[2] })

	Version, GitCommit, BuildTime = "v0.3.0", "abc12345", "2026-01-02"
	require.Equal(t, "rulesgen v0.3.0 (commit abc12345, built 2026-01-02)", String())
}
