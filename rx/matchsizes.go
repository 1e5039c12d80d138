package rx

import "github.com/cottand/regexalg/internal/size"

// MatchSizes returns the [lo,hi] bound on accepted-string length, and
// false if r accepts no string at all (the empty language).
func MatchSizes(r Rx) (size.Range, bool) {
	switch n := r.(type) {
	case phiNode:
		return size.Range{}, false
	case emptyNode:
		return size.Single(size.Zero), true
	case letterNode, lettersNode:
		return size.Single(size.One), true
	case choiceNode:
		l, lok := MatchSizes(n.l)
		rr, rok := MatchSizes(n.r)
		switch {
		case !lok && !rok:
			return size.Range{}, false
		case !lok:
			return rr, true
		case !rok:
			return l, true
		default:
			return l.Join(rr), true
		}
	case concatNode:
		l, lok := MatchSizes(n.l)
		rr, rok := MatchSizes(n.r)
		if !lok || !rok {
			return size.Range{}, false
		}
		return l.Add(rr), true
	case starNode:
		inner, ok := MatchSizes(n.r)
		if !ok {
			return size.Single(size.Zero), true
		}
		return size.Range{Lo: size.Zero, Hi: inner.Hi.Mul(size.Unbounded)}, true
	case repeatNode:
		inner, ok := MatchSizes(n.r)
		if !ok {
			if n.m > 0 {
				return size.Range{}, false
			}
			return size.Single(size.Zero), true
		}
		return size.Range{Lo: inner.Lo.MulInt(n.m), Hi: inner.Hi.MulInt(n.n)}, true
	case varNode:
		internalVarEscape("MatchSizes")
		panic("unreachable")
	default:
		internalInvariant("MatchSizes: unhandled term variant %T", r)
		panic("unreachable")
	}
}
