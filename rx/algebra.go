package rx

import (
	"github.com/cottand/regexalg/internal/letterset"
	"github.com/cottand/regexalg/internal/log"
)

// algebraOp selects which boolean combination combine builds an automaton
// for. The three set operations share the same construction: only the
// base-case nullability rule differs between them.
type algebraOp int

const (
	opIntersect algebraOp = iota
	opDifference
	opXor
)

func (op algebraOp) String() string {
	switch op {
	case opIntersect:
		return "intersect"
	case opDifference:
		return "difference"
	case opXor:
		return "xor"
	default:
		return "unknown"
	}
}

func combineNullable(op algebraOp, lNull, rNull bool) bool {
	switch op {
	case opIntersect:
		return lNull && rNull
	case opDifference:
		return lNull && !rNull
	case opXor:
		return lNull != rNull
	default:
		internalInvariant("combineNullable: unknown op %d", op)
		panic("unreachable")
	}
}

// pairTerms is the pair of residues a recursion variable stands for while
// combine is building the equation system.
type pairTerms struct {
	lhs, rhs Rx
}

// combineBuilder constructs a system of regular equations over the pairs
// of residues reachable from (lhs, rhs) under simultaneous derivation,
// one Var per reachable pair, then solves it by eliminating variables in
// reverse discovery order (state elimination / Gaussian elimination on a
// regular equation system), applying Arden's rule (resolve) to remove
// each variable's self-loop before substituting it into the equations
// that still mention it.
type combineBuilder struct {
	op      algebraOp
	pairVar map[pairKey]int
	terms   []pairTerms
	eqs     []Rx
}

// combine builds the automaton for lhs op rhs over the shared derivative
// alphabet and resolves it down to a single term.
func combine(op algebraOp, lhs, rhs Rx) Rx {
	b := &combineBuilder{op: op, pairVar: make(map[pairKey]int)}
	root := b.register(lhs, rhs)
	for i := 0; i < len(b.terms); i++ {
		b.eqs = append(b.eqs, b.buildEq(b.terms[i].lhs, b.terms[i].rhs))
	}
	result := b.solve(root)
	log.DefaultLogger.Info("set algebra resolved", "section", "algebra", "op", op, "lhs", Repr(lhs), "rhs", Repr(rhs), "states", len(b.terms), "result", Repr(result))
	return result
}

func (b *combineBuilder) register(lhs, rhs Rx) int {
	key := pairKey{a: lhs.Hash(), b: rhs.Hash()}
	if k, ok := b.pairVar[key]; ok {
		return k
	}
	k := len(b.terms)
	b.pairVar[key] = k
	b.terms = append(b.terms, pairTerms{lhs: lhs, rhs: rhs})
	return k
}

// buildEq assembles the right-hand side for the pair (a, b): the base
// case contributes Empty when the combined nullability holds, and every
// Venn piece of FirstSet(a) ∪ FirstSet(b) contributes a term of the shape
// Letters(piece) · Var(child), where child is the pair reached by
// deriving both sides on a witness character of the piece. Pieces are
// congruence classes, so any witness character represents the whole
// piece's transition.
func (b *combineBuilder) buildEq(a, rhs Rx) Rx {
	log.DefaultLogger.Debug("algebra state", "section", "algebra", "op", b.op, "lhs", Repr(a), "rhs", Repr(rhs))
	var sum Rx = Phi
	if combineNullable(b.op, AcceptsEmpty(a), AcceptsEmpty(rhs)) {
		sum = Empty
	}
	pieces := letterset.Venn(FirstSet(a), FirstSet(rhs))
	for _, p := range pieces {
		c, ok := p.Set.Min()
		if !ok {
			continue
		}
		child := b.register(Deriv(a, c), Deriv(rhs, c))
		sum = Or(sum, Concat(Letters(p.Set), newVar(child)))
	}
	return sum
}

func (b *combineBuilder) solve(root int) Rx {
	return solveSystem(b.eqs, root)
}

// solveSystem eliminates the variables of a regular equation system
// (eqs[k] is the right-hand side defining Var(k), possibly mentioning any
// Var including itself) in reverse discovery order and returns the term
// that Var(root) resolves to. Processing from the last index down
// guarantees that, by the time Var(k) is eliminated, every Var(j) with
// j>k has already been substituted out of eqs[k], so resolve only has to
// remove Var(k) itself; references to lower-indexed variables stay in
// the result and are substituted when those variables are eliminated.
func solveSystem(eqs []Rx, root int) Rx {
	n := len(eqs)
	work := make([]Rx, n)
	copy(work, eqs)
	resolved := make([]Rx, n)
	for k := n - 1; k >= 0; k-- {
		resolved[k] = resolve(work[k], k)
		for j := 0; j < k; j++ {
			work[j] = substVar(work[j], k, resolved[k])
		}
	}
	return resolved[root]
}

// substVar replaces every occurrence of Var(k) in r with repl, rebuilding
// the surrounding structure through the smart constructors so the result
// keeps the same normalization invariants as freshly-built terms.
func substVar(r Rx, k int, repl Rx) Rx {
	switch n := r.(type) {
	case varNode:
		if n.k == k {
			return repl
		}
		return r
	case choiceNode:
		return Or(substVar(n.l, k, repl), substVar(n.r, k, repl))
	case concatNode:
		return Concat(substVar(n.l, k, repl), substVar(n.r, k, repl))
	case starNode:
		return Star(substVar(n.r, k, repl))
	case repeatNode:
		inner := substVar(n.r, k, repl)
		out, err := Repeat(inner, n.m, n.n)
		if err != nil {
			internalInvariant("substVar: repeat reconstruction failed: %v", err)
		}
		return out
	default:
		return r
	}
}

// Intersect returns the term denoting the language accepted by both lhs
// and rhs.
func Intersect(lhs, rhs Rx) Rx {
	return combine(opIntersect, lhs, rhs)
}

// And is an alias for Intersect.
func And(lhs, rhs Rx) Rx { return Intersect(lhs, rhs) }

// Difference returns the term denoting strings lhs accepts that rhs does
// not.
func Difference(lhs, rhs Rx) Rx {
	return combine(opDifference, lhs, rhs)
}

// Sub is an alias for Difference.
func Sub(lhs, rhs Rx) Rx { return Difference(lhs, rhs) }

// Xor returns the term denoting the symmetric difference of lhs and rhs.
func Xor(lhs, rhs Rx) Rx {
	return combine(opXor, lhs, rhs)
}

// Not returns the complement of r over the universal language Σ*.
func Not(r Rx) Rx {
	return Difference(Universe, r)
}
