package treesitter

// findRecoveryState searches the stack from top to bottom for a state S
// such that action_for(S, SymError) is a Shift to some S', and
// action_for(S', current lookahead symbol) is not itself an error. idx is
// S's position on the stack (0 = bottom).
func (p *Parser) findRecoveryState() (idx int, resumeState StateID, ok bool) {
	for i := p.Stack.TopIndex(); i >= 0; i-- {
		s := p.Stack.At(i).State
		act := p.Language.ActionFor(s, SymError)
		if act.Kind != ActionShift {
			continue
		}
		next := p.Language.ActionFor(act.ToState, p.lookahead.Symbol)
		if next.Kind == ActionError {
			continue
		}
		return i, act.ToState, true
	}
	return 0, 0, false
}

// recover implements panic-mode error recovery. It returns true if it
// found a state to resume from (having pushed a SymError node
// covering the skipped span), or false if recovery exhausted the input
// without finding one — in which case the caller must finalize.
func (p *Parser) recover(lexer Lexer) bool {
	tokenStart := p.Stack.RightPosition().Add(p.lookahead.Padding)

	for {
		if idx, resumeState, ok := p.findRecoveryState(); ok {
			popped := p.Stack.PopTo(idx + 1)
			for _, e := range popped {
				e.Node.Release()
			}

			size := tokenStart.Sub(p.Stack.RightPosition())
			if p.lookahead.Symbol == SymError {
				// The lookahead is itself the malformed span: it has no
				// valid action anywhere, so fold its own content (not
				// just the gap before it) into the error node and
				// discard it rather than keeping it around to retry.
				size = size.Add(p.lookahead.Size)
				p.lookahead.Release()
				p.lookahead = nil
			} else {
				// The lookahead is some other, merely-unexpected token;
				// it is retried as-is against the resume state, so only
				// clear its padding (the gap itself becomes the error
				// node's span).
				p.lookahead.Padding = ZeroLength
			}

			errNode := NewErrorLeaf(ZeroLength, size)
			p.Stack.Push(resumeState, errNode)
			p.logf("RECOVER %d", resumeState)
			return true
		}

		before := lexer.Position()
		p.lookahead.Release()
		p.lookahead = lexer.Lex(p.Language.LexErrorState)
		p.logf("LEX AGAIN")

		if lexer.Position() == before {
			lexer.Advance()
			if lexer.Position() == before {
				// No progress possible: end of input reached while
				// still unable to recover. Attach the error at state 0
				// and report failure so the driver finalizes.
				size := lexer.Position().Sub(p.Stack.RightPosition())
				p.Stack.Push(0, NewErrorLeaf(ZeroLength, size))
				p.lookahead.Release()
				p.lookahead = nil
				p.logf("FAIL TO RECOVER")
				return false
			}
			p.lookahead.Release()
			p.lookahead = lexer.Lex(p.Language.LexErrorState)
		}
		// Every token skipped so far belongs to the error span, which now
		// reaches up to where the new lookahead's content begins.
		tokenStart = lexer.Position().Sub(p.lookahead.Size)
	}
}
