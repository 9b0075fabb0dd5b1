package treesitter

// Input is a pull-based byte source, as consumed by a Lexer implementation
// (the character-level DFA itself is an external collaborator — out of
// scope for this package). Read returning n==0 signals end
// of input. Source text is UTF-8; decoding is the Lexer's responsibility.
type Input interface {
	Seek(pos Length)
	Read() (buf []byte, n int)
}

// Edit describes an incremental reparse's byte-level change. The driver
// only reads Position: the full shape exists so a Lexer can
// remap any positions it cached from the previous parse.
type Edit struct {
	Position      Length
	CharsInserted uint32
	CharsRemoved  uint32
}

// Lexer is the driver's view of a tokenizer: reset to an absolute
// position, lex the next token in a given lex state, report the current
// cursor position, and advance by exactly one character (used only during
// panic-mode recovery).
//
// Lex returns a leaf *Node whose Padding covers any skipped leading trivia
// and whose Size covers the token's own content; its Symbol is SymError
// when the input at the cursor cannot be tokenized at all. A Lexer
// implementation may satisfy this interface directly, or bridge an
// existing scanner (e.g. a host language's own tokenizer) that cannot be
// tabulated as a single DFA.
type Lexer interface {
	Reset(pos Length)
	Position() Length
	Lex(state LexStateID) *Node
	Advance()
}
