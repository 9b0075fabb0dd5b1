package treesitter

// NodeFlags holds the option bits carried by a tree node.
type NodeFlags uint8

const (
	// FlagExtra marks a ubiquitous/trivia node (whitespace, comments):
	// invisible to shift/reduce arity counting, but still present in the
	// tree as a child.
	FlagExtra NodeFlags = 1 << iota
	// FlagHidden marks a node whose reduction folds it into its parent's
	// child list instead of appearing as its own subtree.
	FlagHidden
)

// Node is a concrete syntax tree node: reference-counted, with a symbol,
// a leading-trivia padding span, a content size span, and ordered
// children. Children are owned by their parent; every pop from a Stack
// transfers exactly one reference, either into a new parent's children
// (via Reduce) or into Release.
//
// Invariant: when len(Children) > 0, Padding equals the first child's
// Padding and Padding+Size equals the sum of the children's TotalSize.
type Node struct {
	Symbol   Symbol
	Padding  Length
	Size     Length
	Children []*Node
	Flags    NodeFlags

	refs int32
}

// NewLeaf creates a terminal node with no children.
func NewLeaf(sym Symbol, padding, size Length) *Node {
	return &Node{Symbol: sym, Padding: padding, Size: size, refs: 1}
}

// NewErrorLeaf creates a SymError leaf of the given size at the given
// padding (used for both panic-mode recovery and the empty-stack case in
// getRoot).
func NewErrorLeaf(padding, size Length) *Node {
	n := NewLeaf(SymError, padding, size)
	return n
}

// IsExtra reports whether n is a ubiquitous/trivia node.
func (n *Node) IsExtra() bool { return n != nil && n.Flags&FlagExtra != 0 }

// IsHidden reports whether n folds into its parent on reduction.
func (n *Node) IsHidden() bool { return n != nil && n.Flags&FlagHidden != 0 }

// TotalSize is padding+size: the full span this node occupies in the
// input, including its leading trivia. A nil node (the sentinel bottom-
// of-stack entry with no node yet) contributes zero.
func (n *Node) TotalSize() Length {
	if n == nil {
		return ZeroLength
	}
	return n.Padding.Add(n.Size)
}

// Retain increments n's reference count and returns n, so it can be used
// inline (e.g. `children[i] = entry.node.Retain()`).
func (n *Node) Retain() *Node {
	if n == nil {
		return nil
	}
	n.refs++
	return n
}

// Release decrements n's reference count, recursively releasing children
// and freeing n once the count reaches zero. Releasing a nil node, or a
// node whose count is already zero, is a no-op rather than a double-free
// panic: the driver's recovery and breakdown paths release defensively at
// several points and a language table bug should not crash the process.
func (n *Node) Release() {
	if n == nil || n.refs <= 0 {
		return
	}
	n.refs--
	if n.refs > 0 {
		return
	}
	for _, c := range n.Children {
		c.Release()
	}
	n.Children = nil
}

// ChildByFieldName returns n's first child assigned to the named field by
// lang's field map, or nil if n has no such field (or no children at all).
// Supplemental accessor; not consulted anywhere in the parse driver itself.
func (n *Node) ChildByFieldName(name string, lang *Language) *Node {
	if n == nil || lang == nil {
		return nil
	}
	for i, c := range n.Children {
		if lang.FieldNameFor(n.Symbol, i) == name {
			return c
		}
	}
	return nil
}

// RefCount reports n's current reference count. Exposed for leak-freedom
// tests; production code has no reason to inspect it.
func (n *Node) RefCount() int32 {
	if n == nil {
		return 0
	}
	return n.refs
}

// newParent constructs a reduced node: symbol sym, the given children
// (already in bottom-to-top order), and hidden carried from the
// language's symbol metadata. Its padding is the first child's padding;
// its size is the sum of every child's TotalSize minus that same leading
// padding. newParent takes ownership of the
// children slice — it does not retain them again, since Reduce already
// holds the references it popped off the stack.
func newParent(sym Symbol, children []*Node, hidden bool) *Node {
	n := &Node{Symbol: sym, Children: children, refs: 1}
	if hidden {
		n.Flags |= FlagHidden
	}
	if len(children) == 0 {
		return n
	}
	n.Padding = children[0].Padding
	var total Length
	for _, c := range children {
		total = total.Add(c.TotalSize())
	}
	n.Size = total.Sub(n.Padding)
	return n
}
