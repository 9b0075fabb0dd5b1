package treesitter

// StackEntry pairs a parser state with the tree node shifted or reduced
// into that state. Index 0 is the bottom of the stack.
type StackEntry struct {
	State StateID
	Node  *Node
}

// Stack is the parser's LR stack: an ordered sequence of (state, node)
// entries.
type Stack struct {
	entries []StackEntry
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len reports the number of entries.
func (s *Stack) Len() int { return len(s.entries) }

// Push appends a new entry.
func (s *Stack) Push(state StateID, node *Node) {
	s.entries = append(s.entries, StackEntry{State: state, Node: node})
}

// TopState returns the state at the top of the stack, or 0 for an empty
// stack (the caller is expected to have just pushed an initial state in
// that case — see Parse's setup).
func (s *Stack) TopState() StateID {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[len(s.entries)-1].State
}

// TopNode returns the node at the top of the stack, or nil if empty or
// the top entry has no node (the initial sentinel entry).
func (s *Stack) TopNode() *Node {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].Node
}

// At returns the entry at index i (0 = bottom).
func (s *Stack) At(i int) StackEntry { return s.entries[i] }

// Entries returns the live entries, bottom to top. Callers must not
// retain the returned slice across a Push/PopTo that may reallocate it.
func (s *Stack) Entries() []StackEntry { return s.entries }

// PopTo truncates the stack to length n and returns the popped entries in
// their original bottom-to-top order. The caller takes ownership of the
// returned nodes' references (it must either Release them or transfer
// them into a new parent).
func (s *Stack) PopTo(n int) []StackEntry {
	popped := make([]StackEntry, len(s.entries)-n)
	copy(popped, s.entries[n:])
	s.entries = s.entries[:n]
	return popped
}

// Pop removes and returns the top entry, or the zero StackEntry if empty.
func (s *Stack) Pop() StackEntry {
	if len(s.entries) == 0 {
		return StackEntry{}
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e
}

// Clear empties the stack, releasing every node it held.
func (s *Stack) Clear() {
	for _, e := range s.entries {
		e.Node.Release()
	}
	s.entries = s.entries[:0]
}

// RightPosition is the cumulative span of every node on the stack: the
// input position at which the next token will be lexed.
func (s *Stack) RightPosition() Length {
	var total Length
	for _, e := range s.entries {
		total = total.Add(e.Node.TotalSize())
	}
	return total
}

// TopIndex returns the index of the top entry, or -1 if empty. Used by
// reduce and recovery to reason about "how far above index X".
func (s *Stack) TopIndex() int { return len(s.entries) - 1 }
