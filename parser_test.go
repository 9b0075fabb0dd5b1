package treesitter_test

import (
	"testing"

	treesitter "github.com/eye-make/tree-sitter"
	"github.com/eye-make/tree-sitter/arithmetic"
	"github.com/stretchr/testify/require"
)

// shape reduces a tree to its non-extra symbol structure, so trees that
// only differ by inserted whitespace can be compared directly.
func shape(n *treesitter.Node) any {
	if n == nil {
		return nil
	}
	if n.IsExtra() {
		return "<extra>"
	}
	if len(n.Children) == 0 {
		return n.Symbol
	}
	var kids []any
	for _, c := range n.Children {
		if c.IsExtra() {
			continue
		}
		kids = append(kids, shape(c))
	}
	return []any{n.Symbol, kids}
}

func parseString(t *testing.T, src string) (*treesitter.Parser, *treesitter.Node) {
	t.Helper()
	p := treesitter.New(arithmetic.Language())
	root := p.Parse(arithmetic.NewLexer([]byte(src)), nil)
	require.NotNil(t, root)
	return p, root
}

func TestParseSimpleAddition(t *testing.T) {
	p, root := parseString(t, "1+2")
	defer p.Destroy()

	require.Equal(t, treesitter.Length{Chars: 3}, root.TotalSize())

	// document( expr( expr(number "1"), "+", expr(number "2") ) )
	require.Equal(t, arithmetic.SymDocument, root.Symbol)
	require.Len(t, root.Children, 1)

	combined := root.Children[0]
	require.Equal(t, arithmetic.SymExpr, combined.Symbol)
	require.Len(t, combined.Children, 3)
	require.Equal(t, arithmetic.SymExpr, combined.Children[0].Symbol)
	require.Equal(t, arithmetic.SymPlus, combined.Children[1].Symbol)
	require.Equal(t, arithmetic.SymExpr, combined.Children[2].Symbol)

	left := combined.Children[0]
	require.Len(t, left.Children, 1)
	require.Equal(t, arithmetic.SymNumber, left.Children[0].Symbol)
}

func TestParseWithWhitespaceExtraTransparency(t *testing.T) {
	p1, plain := parseString(t, "1+2")
	defer p1.Destroy()
	p2, spaced := parseString(t, "1 + 2")
	defer p2.Destroy()

	require.Equal(t, shape(plain), shape(spaced))
	require.Equal(t, treesitter.Length{Chars: 5}, spaced.TotalSize())

	// At least one extra-flagged whitespace node is present somewhere.
	require.True(t, containsExtra(spaced))
}

func containsExtra(n *treesitter.Node) bool {
	if n == nil {
		return false
	}
	if n.IsExtra() {
		return true
	}
	for _, c := range n.Children {
		if containsExtra(c) {
			return true
		}
	}
	return false
}

func TestParseEmptyInput(t *testing.T) {
	p, root := parseString(t, "")
	defer p.Destroy()

	require.Equal(t, treesitter.ZeroLength, root.TotalSize())
	require.Len(t, root.Children, 1)
	require.Equal(t, arithmetic.SymError, root.Children[0].Symbol)
}

func TestParseRecoversAroundUnrecognizedCharacter(t *testing.T) {
	p, root := parseString(t, "1@2")
	defer p.Destroy()

	// Coverage: the whole input is accounted for regardless of exactly
	// how the skipped span is shaped.
	require.Equal(t, treesitter.Length{Chars: 3}, root.TotalSize())

	var symbols []treesitter.Symbol
	for _, c := range root.Children {
		symbols = append(symbols, c.Symbol)
	}
	require.Contains(t, symbols, arithmetic.SymError)
	require.Contains(t, symbols, arithmetic.SymExpr)
}

func TestParseIsDeterministic(t *testing.T) {
	p1, a := parseString(t, "1+2+3")
	defer p1.Destroy()
	p2, b := parseString(t, "1+2+3")
	defer p2.Destroy()

	require.Equal(t, shape(a), shape(b))
}

func TestDestroyReleasesEverything(t *testing.T) {
	p := treesitter.New(arithmetic.Language())
	root := p.Parse(arithmetic.NewLexer([]byte("1+2")), nil)
	require.EqualValues(t, 1, root.RefCount())

	p.Destroy()
	require.EqualValues(t, 0, root.RefCount())
}
