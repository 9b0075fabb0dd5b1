// Package arithmetic is a hand-built LR(1) language for the driver's test
// suite and its cmd/lrdump demo: expr -> NUMBER | expr '+' expr, with
// whitespace as an extra token.
package arithmetic

import treesitter "github.com/eye-make/tree-sitter"

// Symbol ids. 0 and 1 are reserved by the driver's conventions (error,
// and this grammar's own EOF terminal); the rest are this grammar's.
const (
	SymError      = treesitter.SymError // 0
	SymEOF        = treesitter.Symbol(1)
	SymNumber     = treesitter.Symbol(2)
	SymPlus       = treesitter.Symbol(3)
	SymExpr       = treesitter.Symbol(4)
	SymDocument   = treesitter.Symbol(5)
	SymWhitespace = treesitter.Symbol(6)

	symbolCount = 7
)

// Parser automaton states.
const (
	stateStart        treesitter.StateID = 0 // expect NUMBER (or a prior error) to begin an expr
	stateNumber       treesitter.StateID = 1 // just shifted NUMBER
	stateExpr         treesitter.StateID = 2 // have a complete expr; expect '+', EOF, or recover
	statePlus         treesitter.StateID = 3 // just shifted '+'; expect the right operand
	stateExprPlusExpr treesitter.StateID = 4 // have expr '+' expr; reduce on anything

	stateCount = 5
)

// Language returns the grammar's table bundle.
func Language() *treesitter.Language {
	t := make([]treesitter.Action, stateCount*symbolCount)
	set := func(state treesitter.StateID, sym treesitter.Symbol, a treesitter.Action) {
		t[uint32(state)*symbolCount+uint32(sym)] = a
	}
	shift := func(to treesitter.StateID) treesitter.Action {
		return treesitter.Action{Kind: treesitter.ActionShift, ToState: to}
	}
	reduce := func(sym treesitter.Symbol, n uint16) treesitter.Action {
		return treesitter.Action{Kind: treesitter.ActionReduce, Symbol: sym, ChildCount: n}
	}
	shiftExtra := treesitter.Action{Kind: treesitter.ActionShiftExtra}
	accept := treesitter.Action{Kind: treesitter.ActionAccept}

	// stateStart: begin a fresh expr, or resync after a discarded error span.
	set(stateStart, SymNumber, shift(stateNumber))
	set(stateStart, SymExpr, shift(stateExpr)) // goto after the first reduce
	set(stateStart, SymError, shift(stateStart))

	// stateNumber: expr -> NUMBER reduces regardless of what follows.
	for _, sym := range []treesitter.Symbol{SymError, SymEOF, SymNumber, SymPlus} {
		set(stateNumber, sym, reduce(SymExpr, 1))
	}

	// stateExpr: a complete expr sits on top. '+' continues it, EOF ends
	// the parse, and the state also resyncs past an error span (keeping
	// the expr already built) and accepts a fresh NUMBER or reduced expr
	// immediately after one.
	set(stateExpr, SymPlus, shift(statePlus))
	set(stateExpr, SymEOF, accept)
	set(stateExpr, SymError, shift(stateExpr))
	set(stateExpr, SymNumber, shift(stateNumber))
	set(stateExpr, SymExpr, shift(stateExpr))

	// statePlus: expect the right-hand operand.
	set(statePlus, SymNumber, shift(stateNumber))
	set(statePlus, SymExpr, shift(stateExprPlusExpr)) // goto
	set(statePlus, SymError, shift(statePlus))

	// stateExprPlusExpr: expr -> expr '+' expr reduces regardless of lookahead.
	for _, sym := range []treesitter.Symbol{SymError, SymEOF, SymNumber, SymPlus} {
		set(stateExprPlusExpr, sym, reduce(SymExpr, 3))
	}

	// Whitespace is transparent in every state.
	for s := treesitter.StateID(0); s < stateCount; s++ {
		set(s, SymWhitespace, shiftExtra)
	}

	lexStates := make([]treesitter.LexStateID, stateCount)

	return &treesitter.Language{
		Name:          "arithmetic",
		SymbolCount:   symbolCount,
		SymDocument:   SymDocument,
		ParseTable:    t,
		LexStates:     lexStates,
		LexErrorState: 0,
		HiddenSymbols: make([]bool, symbolCount),
		SymbolNames: []string{
			"ERROR", "EOF", "NUMBER", "+", "expr", "document", "WHITESPACE",
		},
		NamedSymbols: []bool{
			false, false, true, false, true, true, false,
		},
	}
}
