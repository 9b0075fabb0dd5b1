// Package treesitter implements the core of an incremental LR parser
// driver: a table-driven shift/reduce automaton with ubiquitous ("extra")
// tokens, panic-mode error recovery, and stack breakdown for incremental
// reparsing.
//
// The lexer's character-level DFA and the parse-table generator are
// external collaborators: this package only consumes the interfaces they
// expose (Lexer, Language).
package treesitter

// Symbol is a grammar symbol id (terminal or nonterminal). Symbol 0 is
// reserved for the error pseudo-token; the implicit document root's symbol
// is whichever one Language.SymDocument names.
type Symbol uint16

// SymError is the reserved error pseudo-token.
const SymError Symbol = 0

// StateID is a parser automaton state, indexing into a Language's parse
// table.
type StateID uint32

// FieldID names a grammar field (e.g. "left", "operator", "right") a
// production assigns to one of its children. FieldID 0 means "no field".
// Supplemental metadata, not load-bearing for any parse invariant.
type FieldID uint16

// LexStateID selects which row of a Language's lexer DFA the driver asks
// the Lexer to run from. It is looked up from the parser state via
// Language.LexStates.
type LexStateID uint16

// ParseActionKind tags the variant held by an Action. The meaning of
// Action's other fields depends on this tag; fields must not be read
// under a mismatched tag (sum type emulated as a tagged struct).
type ParseActionKind uint8

const (
	// ActionError is the default, zero-value action for unfilled table
	// cells: no valid transition exists for this (state, symbol) pair.
	ActionError ParseActionKind = iota
	// ActionShift pushes the lookahead and moves to ToState.
	ActionShift
	// ActionShiftExtra shifts the lookahead as a ubiquitous/trivia token;
	// the effective target state is always the current top state.
	ActionShiftExtra
	// ActionReduce pops ChildCount (plus absorbed extras) entries and
	// constructs a Symbol node from them.
	ActionReduce
	// ActionReduceExtra reduces a single child into a Symbol node and
	// marks the result extra (used for trivia productions like wrapped
	// comments).
	ActionReduceExtra
	// ActionAccept ends the parse successfully.
	ActionAccept
)

// Action is a single entry of a Language's action table. Go has no sum
// types, so Action carries every case's payload behind the Kind tag; a
// field is only meaningful when Kind says so.
type Action struct {
	Kind       ParseActionKind
	ToState    StateID // valid when Kind == ActionShift
	Symbol     Symbol  // valid when Kind == ActionReduce or ActionReduceExtra
	ChildCount uint16  // valid when Kind == ActionReduce (nominal arity)
}

// Language is the read-only, immutable table bundle produced by the
// (out-of-scope) parse-table generator. A single Language may be shared
// freely across threads and Parser instances for reads.
type Language struct {
	Name string

	// SymbolCount is the width of each ParseTable row. SymDocument is
	// conventionally SymbolCount-1 (the generator's contract); it is also
	// stored explicitly here so the driver never has to special-case
	// "the last symbol".
	SymbolCount uint32
	SymDocument Symbol

	// ParseTable is dense and row-major: ParseTable[state*SymbolCount+symbol].
	// Implementers may swap in a sparse representation without changing
	// the contract; this port keeps the dense form since the
	// grammars this core targets are hand-built and small.
	ParseTable []Action

	// LexStates maps a parser state to the lexer DFA state the driver
	// should resume lexing from.
	LexStates []LexStateID

	// LexErrorState is the dedicated DFA state used during recovery:
	// skip-to-any-token-start.
	LexErrorState LexStateID

	// HiddenSymbols reports, per symbol, whether a reduction to that
	// symbol should be folded into its parent's child list rather than
	// appear as its own subtree.
	HiddenSymbols []bool

	// SymbolNames is debug-only metadata.
	SymbolNames []string

	// NamedSymbols distinguishes grammar-meaningful symbols from
	// anonymous punctuation leaves. Supplemental metadata, not
	// load-bearing for any parse invariant.
	NamedSymbols []bool

	// FieldNames is debug/accessor metadata: index 0 is "" (no field).
	FieldNames []string

	// FieldMap assigns a FieldID to a (symbol, child index) pair, for
	// productions whose children are field-named. A missing entry means
	// no field. Supplemental accessor metadata.
	FieldMap map[FieldKey]FieldID
}

// FieldKey is the lookup key into Language.FieldMap.
type FieldKey struct {
	Symbol     Symbol
	ChildIndex int
}

// FieldNameFor returns the field name assigned to the i'th child of a
// reduction to sym, or "" if none.
func (l *Language) FieldNameFor(sym Symbol, i int) string {
	if l.FieldMap == nil {
		return ""
	}
	fid, ok := l.FieldMap[FieldKey{Symbol: sym, ChildIndex: i}]
	if !ok {
		return ""
	}
	return l.SymbolNameAt(l.FieldNames, int(fid))
}

// SymbolNameAt is a small bounds-checked slice accessor shared by the
// Language's various name lookups.
func (l *Language) SymbolNameAt(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// ActionFor implements §4.1: action_for(state, symbol) = parse_table[state *
// symbol_count + symbol]. Out-of-range lookups behave as unfilled cells
// (ActionError).
func (l *Language) ActionFor(state StateID, sym Symbol) Action {
	if l.SymbolCount == 0 {
		return Action{}
	}
	idx := uint64(state)*uint64(l.SymbolCount) + uint64(sym)
	if idx >= uint64(len(l.ParseTable)) {
		return Action{}
	}
	return l.ParseTable[idx]
}

// IsHidden reports whether sym is folded into its parent on reduction.
func (l *Language) IsHidden(sym Symbol) bool {
	if int(sym) < len(l.HiddenSymbols) {
		return l.HiddenSymbols[sym]
	}
	return false
}

// IsNamed reports whether sym is a grammar-meaningful symbol.
func (l *Language) IsNamed(sym Symbol) bool {
	if int(sym) < len(l.NamedSymbols) {
		return l.NamedSymbols[sym]
	}
	return false
}

// SymbolName returns sym's debug name, or "" if unknown.
func (l *Language) SymbolName(sym Symbol) string {
	if int(sym) < len(l.SymbolNames) {
		return l.SymbolNames[sym]
	}
	return ""
}

// LexStateFor returns the lexer DFA state to use from the given parser
// state, or 0 if the table has no entry (a defective language table).
func (l *Language) LexStateFor(state StateID) LexStateID {
	if int(state) < len(l.LexStates) {
		return l.LexStates[state]
	}
	return 0
}
