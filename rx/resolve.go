package rx

// resolve eliminates a self-referential recursion variable Var(k) from r
// via Arden's rule: if r can be written as R·Var(k) + B with R and B free
// of Var(k), then the fixed point of "X = r with Var(k) bound to X" is
// R*·B. split walks r's Choice/Concat spine to find every additive term
// that ends in Var(k) and isolates its prefix into R; everything else
// accumulates into B.
func resolve(r Rx, k int) Rx {
	R, B := split(r, k)
	return Concat(Star(R), B)
}

// split decomposes r into (R, B) such that r denotes the same language as
// Concat(R, Var(k)) `Or` B, with neither R nor B containing a free Var(k).
func split(r Rx, k int) (R, B Rx) {
	switch n := r.(type) {
	case varNode:
		if n.k == k {
			return Empty, Phi
		}
		return Phi, r
	case choiceNode:
		rl, bl := split(n.l, k)
		rr, br := split(n.r, k)
		return Or(rl, rr), Or(bl, br)
	case concatNode:
		if v, ok := isVar(n.r); ok && v.k == k {
			return n.l, Phi
		}
		rr, br := split(n.r, k)
		return Concat(n.l, rr), Concat(n.l, br)
	default:
		return Phi, r
	}
}
