package treesitter

// Length is a two-component position/size: a character count paired with
// a row/column (or byte) extent, matching tree-sitter's own TSLength/TSPoint
// split between "how far" and "where". Add is componentwise, so it is
// associative and commutative in both components, with the zero value as
// its identity. Sub saturates at zero (see Sub), so it undoes Add only when
// neither component of the subtrahend exceeds the minuend's.
type Length struct {
	Chars    uint32
	Extended uint32
}

// ZeroLength is the additive identity.
var ZeroLength = Length{}

// Add returns a+b componentwise.
func (a Length) Add(b Length) Length {
	return Length{Chars: a.Chars + b.Chars, Extended: a.Extended + b.Extended}
}

// Sub returns a-b componentwise, saturating each component to zero rather
// than wrapping if b is larger than a. Callers that need to detect an
// underflow should compare components directly instead of relying on Sub.
func (a Length) Sub(b Length) Length {
	return Length{Chars: satSub(a.Chars, b.Chars), Extended: satSub(a.Extended, b.Extended)}
}

func satSub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

// IsZero reports whether l is the identity length.
func (l Length) IsZero() bool {
	return l.Chars == 0 && l.Extended == 0
}
