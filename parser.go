package treesitter

import "github.com/google/uuid"

// Parser is a single-threaded LR(1) parser driver bound to a Language. It
// is reused across parses: construct once with New, call Parse any number
// of times (optionally with an Edit for incremental reparse), and release
// with Destroy when done.
//
// A Parser owns exactly one Stack, which persists across Parse calls so
// that an incremental reparse can break it down (see incremental.go)
// instead of starting from nothing.
type Parser struct {
	Language *Language
	Stack    *Stack

	lookahead     *Node
	nextLookahead *Node

	// Debug, when true, routes one line per significant event to Sink.
	// Sink defaults to DiscardSink so Debug can be flipped
	// without nil-checking call sites.
	Debug bool
	Sink  Sink

	sessionID string
}

// New creates a Parser bound to lang.
func New(lang *Language) *Parser {
	return &Parser{
		Language: lang,
		Stack:    NewStack(),
		Sink:     DiscardSink{},
	}
}

// Destroy releases the parser's held references: the lookahead slots and
// every node still on the stack. After Destroy the Parser must not be
// reused.
func (p *Parser) Destroy() {
	p.lookahead.Release()
	p.nextLookahead.Release()
	p.lookahead = nil
	p.nextLookahead = nil
	if p.Stack != nil {
		p.Stack.Clear()
	}
}

// Parse consumes source via lexer and returns the root of a concrete
// syntax tree covering the whole input. When edit is non-nil, the parser
// first breaks down its existing stack (left over from a previous Parse)
// to the deepest trusted prefix before resuming; when edit is nil the
// stack is cleared and the parse starts fresh at position zero.
//
// Parse never returns an error for malformed input — panic-mode recovery
// (see recovery.go) always produces a tree that covers the full input.
// It returns nil only if lang is a defective table that this driver
// cannot interpret — this happens before any input is consumed, so there
// is nothing to destroy or roll back.
func (p *Parser) Parse(lexer Lexer, edit *Edit) *Node {
	if p.Language == nil || p.Language.SymbolCount == 0 {
		return nil
	}

	p.sessionID = shortSessionID()
	resume := p.breakdownStack(edit)
	lexer.Reset(resume)
	p.lookahead.Release()
	p.nextLookahead.Release()
	p.lookahead = nil
	p.nextLookahead = nil

	p.logf("RESUME %d [%s]", resume.Chars, p.sessionID)

	needToken := true
	for {
		state := p.Stack.TopState()

		if needToken {
			if p.lookahead == nil {
				if p.nextLookahead != nil {
					p.lookahead, p.nextLookahead = p.nextLookahead, nil
					p.logf("PUT BACK sym=%d", p.lookahead.Symbol)
				} else {
					lexState := p.Language.LexStateFor(state)
					p.lookahead = lexer.Lex(lexState)
					p.logf("LOOKAHEAD sym=%d", p.lookahead.Symbol)
				}
			}
			needToken = false
		}

		act := p.Language.ActionFor(state, p.lookahead.Symbol)

		switch act.Kind {
		case ActionShift:
			if p.lookahead.Symbol == SymError {
				if !p.recover(lexer) {
					return p.getRoot()
				}
				needToken = p.lookahead == nil
				continue
			}
			p.shift(act.ToState)
			needToken = true

		case ActionShiftExtra:
			p.shiftExtra()
			needToken = true

		case ActionReduce:
			p.reduce(act.Symbol, act.ChildCount)
			needToken = true // the reduced node is now p.lookahead; re-dispatch it

		case ActionReduceExtra:
			p.reduceExtra(act.Symbol)
			needToken = true

		case ActionAccept:
			p.logf("ACCEPT")
			return p.getRoot()

		default: // ActionError
			p.logf("ERROR sym=%d", p.lookahead.Symbol)
			if !p.recover(lexer) {
				return p.getRoot()
			}
			needToken = p.lookahead == nil
		}
	}
}

// shift pushes the lookahead and advances to target. If the current
// lookahead is itself marked extra (pushed here via a prior ShiftExtra
// call that this Shift is completing), the target state is overridden to
// the current top state — extras never change parser state.
func (p *Parser) shift(target StateID) {
	state := target
	if p.lookahead.IsExtra() {
		state = p.Stack.TopState()
	}
	p.logf("SHIFT %d", state)
	p.Stack.Push(state, p.lookahead)
	p.lookahead = p.nextLookahead
	p.nextLookahead = nil
}

// shiftExtra marks the lookahead extra, then shifts it (the override rule
// in shift then pins the push state to the current top).
func (p *Parser) shiftExtra() {
	p.lookahead.Flags |= FlagExtra
	p.logf("SHIFT EXTRA")
	p.shift(0)
}

// reduce pops nominalChildCount real children off the stack (absorbing
// any extra-flagged entries interleaved among them into the same
// reduction), and constructs a Symbol node from them.
func (p *Parser) reduce(sym Symbol, nominalChildCount uint16) {
	effective, i := int(nominalChildCount), 0
	real := 0
	for real < int(nominalChildCount) {
		idx := p.Stack.TopIndex() - i
		if idx < 0 {
			break
		}
		if p.Stack.At(idx).Node.IsExtra() {
			effective++
		} else {
			real++
		}
		i++
		if effective >= p.Stack.Len() {
			break
		}
	}
	if effective > p.Stack.Len() {
		effective = p.Stack.Len()
	}

	popped := p.Stack.PopTo(p.Stack.Len() - effective)
	children := make([]*Node, len(popped))
	for idx, e := range popped {
		children[idx] = e.Node
	}

	node := newParent(sym, children, p.Language.IsHidden(sym))

	// The current lookahead is offered again as the next action's input,
	// after the newly reduced node is consumed as if it were a token.
	p.nextLookahead = p.lookahead
	p.lookahead = node

	p.logf("REDUCE %s %d", p.Language.SymbolName(sym), nominalChildCount)
}

// reduceExtra reduces with nominal arity 1, then marks the result extra
// (used for trivia productions like a comment wrapped as a single-child
// extra node).
func (p *Parser) reduceExtra(sym Symbol) {
	p.reduce(sym, 1)
	p.lookahead.Flags |= FlagExtra
	p.logf("REDUCE EXTRA")
}

// getRoot finalizes the parse: collapses the remaining stack into a
// single document root. If the stack is empty, it first pushes a
// zero-length error leaf so the document has a child. Empty input does not
// take that branch: the stack still holds the bottom sentinel, and the
// zero-length error leaf comes from recover's end-of-input path.
func (p *Parser) getRoot() *Node {
	if p.Stack.Len() == 0 {
		p.Stack.Push(0, NewErrorLeaf(ZeroLength, ZeroLength))
	}

	popped := p.Stack.PopTo(0)
	children := make([]*Node, 0, len(popped))
	for _, e := range popped {
		// The bottom sentinel entry (pushed by breakdownStack before any
		// token is shifted) carries no node; skip it rather than hand
		// newParent a nil child.
		if e.Node == nil {
			continue
		}
		children = append(children, e.Node)
	}
	doc := newParent(p.Language.SymDocument, children, false)
	// A document is never hidden, so both option bits are cleared
	// unconditionally rather than inherited from HiddenSymbols.
	doc.Flags = 0

	p.Stack.Push(0, doc)
	return p.Stack.TopNode()
}

func shortSessionID() string {
	id := uuid.New().String()
	return id[:8]
}
