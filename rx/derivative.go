package rx

// PartialDeriv returns the Antimirov partial derivative of r with respect
// to the character c: a set of terms whose union denotes the Brzozowski
// derivative, kept apart so that fixed-point computations over a term
// terminate on a finite number of distinct residues.
func PartialDeriv(r Rx, c rune) []Rx {
	switch n := r.(type) {
	case phiNode, emptyNode:
		return nil
	case letterNode:
		if n.c == c {
			return []Rx{Empty}
		}
		return nil
	case lettersNode:
		if n.s.Contains(c) {
			return []Rx{Empty}
		}
		return nil
	case choiceNode:
		return append(PartialDeriv(n.l, c), PartialDeriv(n.r, c)...)
	case concatNode:
		var out []Rx
		for _, d := range PartialDeriv(n.l, c) {
			if isPhiStrict(d) {
				continue
			}
			out = append(out, Concat(d, n.r))
		}
		if AcceptsEmpty(n.l) {
			out = append(out, PartialDeriv(n.r, c)...)
		}
		return out
	case starNode:
		var out []Rx
		for _, d := range PartialDeriv(n.r, c) {
			if isPhiStrict(d) {
				continue
			}
			out = append(out, Concat(d, Star(n.r)))
		}
		return out
	case repeatNode:
		var out []Rx
		tail, err := Repeat(n.r, max(0, n.m-1), n.n-1)
		if err != nil {
			internalInvariant("PartialDeriv: repeat tail construction failed: %v", err)
		}
		for _, d := range PartialDeriv(n.r, c) {
			if isPhiStrict(d) {
				continue
			}
			out = append(out, Concat(d, tail))
		}
		return out
	case varNode:
		internalVarEscape("PartialDeriv")
		panic("unreachable")
	default:
		internalInvariant("PartialDeriv: unhandled term variant %T", r)
		panic("unreachable")
	}
}

// Deriv returns the union of PartialDeriv's result set as a single term,
// via Choice-reduction.
func Deriv(r Rx, c rune) Rx {
	residues := PartialDeriv(r, c)
	var out Rx = Phi
	for _, d := range residues {
		out = Or(out, d)
	}
	return out
}
