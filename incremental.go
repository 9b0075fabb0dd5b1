package treesitter

// breakdownStack decomposes the stack left over from a previous parse
// down to the deepest prefix still trusted after an edit. With no edit,
// the stack is cleared and the parse resumes at position zero. With an edit, the
// parser repeatedly pops the top node; an internal node whose left edge
// lies before edit.Position is decomposed (its children pushed back,
// each under the state the table's shift action dictates, falling back
// to the popped parent's own state), while a leaf or a node that starts
// at or after edit.Position is simply discarded. This continues until
// the stack's right position no longer crosses the edit and the old
// document root has been unwrapped, yielding the
// deepest prefix of the previous parse that is still trusted. It returns
// that right position as the resume point for the lexer.
func (p *Parser) breakdownStack(edit *Edit) Length {
	if edit == nil {
		p.Stack.Clear()
		p.Stack.Push(0, nil)
		return ZeroLength
	}

	for {
		if p.Stack.Len() == 0 {
			break
		}
		top := p.Stack.TopNode()
		if top == nil {
			break
		}
		right := p.Stack.RightPosition()
		// The previous parse's document root is always unwrapped, even
		// when the edit lies at or past its right edge, so the resumed
		// parse never shifts new tokens on top of the old root.
		if right.Chars <= edit.Position.Chars && top.Symbol != p.Language.SymDocument {
			break
		}

		entry := p.Stack.Pop()
		node := entry.Node
		left := right.Sub(node.TotalSize())

		if len(node.Children) > 0 && left.Chars < edit.Position.Chars {
			parentState := entry.State
			for _, child := range node.Children {
				topState := p.Stack.TopState()
				act := p.Language.ActionFor(topState, child.Symbol)
				target := parentState
				if act.Kind == ActionShift {
					target = act.ToState
				}
				p.Stack.Push(target, child.Retain())
			}
			node.Release()
		} else {
			node.Release()
		}
	}

	if p.Stack.Len() == 0 {
		p.Stack.Push(0, nil)
	}
	return p.Stack.RightPosition()
}
