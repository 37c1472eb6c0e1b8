package sets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	s := New("a")
	require.True(t, s.Has("a"))
	require.False(t, s.Insert("a"))
	require.True(t, s.Insert("b"))
	require.True(t, s.Has("b"))
	require.Len(t, s, 2)
}

func TestKeep(t *testing.T) {
	s := New("seen")
	require.Equal(t, []string{"x", "y"}, s.Keep([]string{"x", "seen", "y", "x"}))
	require.Nil(t, s.Keep([]string{"x", "y"}))
}

func TestNewEmpty(t *testing.T) {
	s := New[int]()
	require.False(t, s.Has(0))
}
