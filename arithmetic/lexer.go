package arithmetic

import treesitter "github.com/eye-make/tree-sitter"

// Lexer scans a fixed, in-memory byte slice. It is the fixture lexer used
// by the driver's test suite and by cmd/lrdump; it makes no attempt at
// being a general-purpose DFA (that is the out-of-scope external
// collaborator the driver itself never implements) but it satisfies
// treesitter.Lexer's contract exactly, including always making forward
// progress on an unrecognized character.
type Lexer struct {
	src []byte
	pos int
}

// NewLexer wraps src for a single parse (or a sequence of incremental
// reparses against the same or an edited buffer).
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src}
}

// SetSource swaps in a new buffer, e.g. the post-edit text for an
// incremental reparse, while keeping the Lexer reusable.
func (l *Lexer) SetSource(src []byte) {
	l.src = src
	l.pos = 0
}

// Reset implements treesitter.Lexer.
func (l *Lexer) Reset(pos treesitter.Length) {
	l.pos = int(pos.Chars)
	if l.pos > len(l.src) {
		l.pos = len(l.src)
	}
}

// Source returns the buffer currently being scanned, for callers that
// want to slice out a node's text by its Padding/Size.
func (l *Lexer) Source() []byte { return l.src }

// Position implements treesitter.Lexer.
func (l *Lexer) Position() treesitter.Length {
	return treesitter.Length{Chars: uint32(l.pos)}
}

// Advance implements treesitter.Lexer: consumes exactly one byte, used
// only by the driver's panic-mode recovery when re-lexing made no
// progress.
func (l *Lexer) Advance() {
	if l.pos < len(l.src) {
		l.pos++
	}
}

// Lex implements treesitter.Lexer. The lex state argument is unused: this
// grammar has a single lexer mode regardless of parser state.
func (l *Lexer) Lex(treesitter.LexStateID) *treesitter.Node {
	if l.pos >= len(l.src) {
		return treesitter.NewLeaf(SymEOF, treesitter.ZeroLength, treesitter.ZeroLength)
	}

	c := l.src[l.pos]
	switch {
	case isSpace(c):
		start := l.pos
		for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
			l.pos++
		}
		n := uint32(l.pos - start)
		return treesitter.NewLeaf(SymWhitespace, treesitter.ZeroLength, treesitter.Length{Chars: n})

	case isDigit(c):
		start := l.pos
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		n := uint32(l.pos - start)
		return treesitter.NewLeaf(SymNumber, treesitter.ZeroLength, treesitter.Length{Chars: n})

	case c == '+':
		l.pos++
		return treesitter.NewLeaf(SymPlus, treesitter.ZeroLength, treesitter.Length{Chars: 1})

	default:
		l.pos++
		return treesitter.NewErrorLeaf(treesitter.ZeroLength, treesitter.Length{Chars: 1})
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
