package treesitter_test

import (
	"testing"

	treesitter "github.com/eye-make/tree-sitter"
	"github.com/eye-make/tree-sitter/arithmetic"
	"github.com/stretchr/testify/require"
)

// TestRecoverPreservesPriorSiblings: an unrecognized character between
// two otherwise-valid expressions yields one SYM_ERROR node, with both
// expressions intact on either side of it.
func TestRecoverPreservesPriorSiblings(t *testing.T) {
	p, root := parseString(t, "1@2")
	defer p.Destroy()

	require.Len(t, root.Children, 3)
	require.Equal(t, arithmetic.SymExpr, root.Children[0].Symbol)
	require.Equal(t, arithmetic.SymError, root.Children[1].Symbol)
	require.Equal(t, arithmetic.SymExpr, root.Children[2].Symbol)

	errNode := root.Children[1]
	require.Equal(t, treesitter.Length{Chars: 1}, errNode.Size)
}

// TestRecoverAtTrailingOperator: a dangling trailing operator with no
// right-hand operand still yields a tree covering the whole input, with
// exactly one SYM_ERROR child.
func TestRecoverAtTrailingOperator(t *testing.T) {
	p, root := parseString(t, "1+")
	defer p.Destroy()

	require.Equal(t, treesitter.Length{Chars: 2}, root.TotalSize())

	var errCount int
	for _, c := range root.Children {
		if c.Symbol == arithmetic.SymError {
			errCount++
		}
	}
	require.Equal(t, 1, errCount)
}

// TestFailToRecoverStillCoversInput exercises the "no sync state found,
// ran off the end of input" path: a run of nothing but unrecognized
// characters must still produce a tree whose root covers the full input.
func TestFailToRecoverStillCoversInput(t *testing.T) {
	p, root := parseString(t, "@@@")
	defer p.Destroy()

	require.Equal(t, treesitter.Length{Chars: 3}, root.TotalSize())
}

func TestParseLeakFreeAcrossRecovery(t *testing.T) {
	p := treesitter.New(arithmetic.Language())
	root := p.Parse(arithmetic.NewLexer([]byte("1@2")), nil)
	require.EqualValues(t, 1, root.RefCount())

	p.Destroy()
	require.EqualValues(t, 0, root.RefCount())
}
