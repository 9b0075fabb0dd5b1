package treesitter_test

import (
	"testing"

	treesitter "github.com/eye-make/tree-sitter"
	"github.com/stretchr/testify/require"
)

func TestStackPushPopTo(t *testing.T) {
	s := treesitter.NewStack()
	require.Equal(t, 0, s.Len())
	require.EqualValues(t, 0, s.TopState())
	require.Nil(t, s.TopNode())

	n1 := treesitter.NewLeaf(2, treesitter.ZeroLength, treesitter.Length{Chars: 1})
	n2 := treesitter.NewLeaf(2, treesitter.ZeroLength, treesitter.Length{Chars: 2})
	s.Push(1, n1)
	s.Push(2, n2)
	require.Equal(t, 2, s.Len())
	require.EqualValues(t, 2, s.TopState())
	require.Same(t, n2, s.TopNode())

	popped := s.PopTo(1)
	require.Len(t, popped, 1)
	require.Same(t, n2, popped[0].Node)
	require.Equal(t, 1, s.Len())
	require.Same(t, n1, s.TopNode())
}

func TestStackRightPosition(t *testing.T) {
	s := treesitter.NewStack()
	s.Push(0, treesitter.NewLeaf(2, treesitter.ZeroLength, treesitter.Length{Chars: 3}))
	s.Push(1, treesitter.NewLeaf(2, treesitter.Length{Chars: 1}, treesitter.Length{Chars: 2}))
	require.Equal(t, treesitter.Length{Chars: 6}, s.RightPosition())
}

func TestStackClearReleases(t *testing.T) {
	s := treesitter.NewStack()
	n := treesitter.NewLeaf(2, treesitter.ZeroLength, treesitter.Length{Chars: 1})
	s.Push(0, n)
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.EqualValues(t, 0, n.RefCount())
}
