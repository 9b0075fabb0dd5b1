package treesitter_test

import (
	"testing"

	treesitter "github.com/eye-make/tree-sitter"
	"github.com/stretchr/testify/require"
)

func TestNewLeafTotalSize(t *testing.T) {
	n := treesitter.NewLeaf(2, treesitter.Length{Chars: 1}, treesitter.Length{Chars: 3})
	require.Equal(t, treesitter.Length{Chars: 4}, n.TotalSize())
}

func TestNilNodeIsNilSafe(t *testing.T) {
	var n *treesitter.Node
	require.Equal(t, treesitter.ZeroLength, n.TotalSize())
	require.False(t, n.IsExtra())
	require.False(t, n.IsHidden())
	require.EqualValues(t, 0, n.RefCount())
	n.Retain()   // must not panic
	n.Release()  // must not panic
}

func TestRetainReleaseRecursive(t *testing.T) {
	leaf1 := treesitter.NewLeaf(2, treesitter.ZeroLength, treesitter.Length{Chars: 1})
	leaf2 := treesitter.NewLeaf(2, treesitter.ZeroLength, treesitter.Length{Chars: 1})
	parent := treesitter.NewParentForTest(5, []*treesitter.Node{leaf1, leaf2}, false)

	require.EqualValues(t, 1, parent.RefCount())
	require.EqualValues(t, 1, leaf1.RefCount())

	parent.Retain()
	require.EqualValues(t, 2, parent.RefCount())

	parent.Release()
	require.EqualValues(t, 1, parent.RefCount())
	require.EqualValues(t, 1, leaf1.RefCount())

	parent.Release()
	require.EqualValues(t, 0, parent.RefCount())
	require.EqualValues(t, 0, leaf1.RefCount())
	require.EqualValues(t, 0, leaf2.RefCount())
}

func TestNewParentSizeIsSumMinusFirstPadding(t *testing.T) {
	a := treesitter.NewLeaf(2, treesitter.Length{Chars: 1}, treesitter.Length{Chars: 2})
	b := treesitter.NewLeaf(3, treesitter.ZeroLength, treesitter.Length{Chars: 1})
	parent := treesitter.NewParentForTest(4, []*treesitter.Node{a, b}, false)

	require.Equal(t, treesitter.Length{Chars: 1}, parent.Padding)
	require.Equal(t, treesitter.Length{Chars: 3}, parent.Size)
	require.Equal(t, treesitter.Length{Chars: 4}, parent.TotalSize())
}

func TestChildByFieldName(t *testing.T) {
	lang := &treesitter.Language{
		FieldNames: []string{"", "left", "right"},
		FieldMap: map[treesitter.FieldKey]treesitter.FieldID{
			{Symbol: 4, ChildIndex: 0}: 1,
			{Symbol: 4, ChildIndex: 1}: 2,
		},
	}
	a := treesitter.NewLeaf(2, treesitter.ZeroLength, treesitter.Length{Chars: 1})
	b := treesitter.NewLeaf(2, treesitter.ZeroLength, treesitter.Length{Chars: 1})
	parent := treesitter.NewParentForTest(4, []*treesitter.Node{a, b}, false)

	require.Same(t, a, parent.ChildByFieldName("left", lang))
	require.Same(t, b, parent.ChildByFieldName("right", lang))
	require.Nil(t, parent.ChildByFieldName("missing", lang))
}
