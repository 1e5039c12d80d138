package rx

import "github.com/cottand/regexalg/internal/log"

// canonicalBuilder walks the derivative automaton of a single term,
// allocating one Var per distinct residue reached, then solves the
// resulting equation system exactly as combine does for binary
// operators. Residues are merged by Equiv rather than by Hash: two
// syntactically different residues that denote the same language become
// the same automaton state.
type canonicalBuilder struct {
	terms []Rx
	eqs   []Rx
}

// Canonical returns a term denoting the same language as r, built
// deterministically from r's derivative automaton, with states merged up
// to Equiv by register below. Each state's transitions are labelled by
// the pieces of that state's own FirstSet, in FirstSet order, so two
// equivalent terms give Equal results only when their states split and
// order their first characters alike; otherwise the results denote the
// same language but can differ in structure (for example [ab]x and
// ax|bx).
func Canonical(r Rx) Rx {
	b := &canonicalBuilder{}
	root := b.register(r)
	for i := 0; i < len(b.terms); i++ {
		b.eqs = append(b.eqs, b.buildEq(b.terms[i]))
	}
	result := solveSystem(b.eqs, root)
	log.DefaultLogger.Info("canonicalized", "section", "algebra", "input", Repr(r), "states", len(b.terms), "result", Repr(result))
	return result
}

// register returns the Var index for r's residue, merging it into an
// already-discovered state whenever that state's language coincides with
// r's (checked via Equiv, which subsumes plain structural equality) so the
// automaton built has exactly one state per distinct residue language.
func (b *canonicalBuilder) register(r Rx) int {
	for k, existing := range b.terms {
		if Equiv(existing, r) {
			return k
		}
	}
	k := len(b.terms)
	b.terms = append(b.terms, r)
	return k
}

func (b *canonicalBuilder) buildEq(r Rx) Rx {
	log.DefaultLogger.Debug("canonical state", "section", "algebra", "term", Repr(r))
	var sum Rx = Phi
	if AcceptsEmpty(r) {
		sum = Empty
	}
	for _, s := range FirstSet(r) {
		c, ok := s.Min()
		if !ok {
			continue
		}
		child := b.register(Deriv(r, c))
		sum = Or(sum, Concat(Letters(s), newVar(child)))
	}
	return sum
}
