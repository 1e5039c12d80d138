// Package rx implements the decision engine for regular expressions as
// language-set values: the Antimirov term algebra, partial derivatives,
// coinductive equivalence/containment, and the derivative-driven set
// algebra (intersection, difference, XOR, canonicalization) built around
// Arden's rule.
//
// The package is purely functional: every Rx value is immutable, every
// operation is a deterministic function of its inputs, and nothing here
// performs I/O. See rxerr for the error kinds raised at construction time.
package rx

import (
	"github.com/cottand/regexalg/internal/letterset"
)

// Rx is an immutable regular-expression term: a language-set value, not a
// matcher. Values are constructed exclusively through the smart
// constructors in this file, which enforce the normalization invariants
// the rest of the package relies on (the closed set of variants is Phi,
// Empty, Letter, Letters, Choice, Concat, Star, Repeat, and the internal
// Var recursion marker).
type Rx interface {
	// rxNode seals the interface to this package's variant types.
	rxNode()
	// Hash returns a structural hash. Two terms built via the same smart
	// constructors from equal inputs hash identically; this package treats
	// hash equality as term equality throughout (see Equal), the same
	// trade-off ile's type-checker makes for its SimpleType.Hash.
	Hash() uint64
}

// Equal reports whether a and b are the same term, by structural hash.
func Equal(a, b Rx) bool {
	return a.Hash() == b.Hash()
}

const (
	hashOffset uint64 = 14695981039346656037
	hashPrime  uint64 = 1099511628211
)

func mixHash(h uint64, v uint64) uint64 {
	return (h ^ v) * hashPrime
}

// phiNode is the empty language ∅.
type phiNode struct{}

func (phiNode) rxNode()        {}
func (phiNode) Hash() uint64   { return mixHash(hashOffset, 0x9e3779b97f4a7c15) }

// emptyNode is the language {""}.
type emptyNode struct{}

func (emptyNode) rxNode()      {}
func (emptyNode) Hash() uint64 { return mixHash(hashOffset, 0xbf58476d1ce4e5b9) }

// letterNode is the language {c}.
type letterNode struct{ c rune }

func (letterNode) rxNode() {}
func (n letterNode) Hash() uint64 {
	return mixHash(mixHash(hashOffset, 1), uint64(n.c))
}

// lettersNode is the language {c : c ∈ s}, with |s| ≥ 2 (singletons
// normalize to letterNode via the Letters smart constructor).
type lettersNode struct{ s letterset.LetterSet }

func (lettersNode) rxNode() {}
func (n lettersNode) Hash() uint64 {
	return mixHash(mixHash(hashOffset, 2), n.s.Hash())
}

// choiceNode is r1 ∪ r2.
type choiceNode struct{ l, r Rx }

func (choiceNode) rxNode() {}
func (n choiceNode) Hash() uint64 {
	return mixHash(mixHash(mixHash(hashOffset, 3), n.l.Hash()), n.r.Hash())
}

// concatNode is { xy : x ∈ r1, y ∈ r2 }.
type concatNode struct{ l, r Rx }

func (concatNode) rxNode() {}
func (n concatNode) Hash() uint64 {
	return mixHash(mixHash(mixHash(hashOffset, 4), n.l.Hash()), n.r.Hash())
}

// starNode is r*.
type starNode struct{ r Rx }

func (starNode) rxNode() {}
func (n starNode) Hash() uint64 {
	return mixHash(mixHash(hashOffset, 5), n.r.Hash())
}

// repeatNode is r repeated between m and n times inclusive, 0 ≤ m ≤ n, n ≥ 1.
type repeatNode struct {
	r    Rx
	m, n int
}

func (repeatNode) rxNode() {}
func (n repeatNode) Hash() uint64 {
	h := mixHash(hashOffset, 6)
	h = mixHash(h, n.r.Hash())
	h = mixHash(h, uint64(n.m))
	h = mixHash(h, uint64(n.n))
	return h
}

// varNode is a recursion marker used only inside a single activation of
// resolve/Intersect/Difference/Xor/Canonical. It never appears in a term
// returned to a caller of this package; encountering one outside an
// activation is an InternalInvariant (see nullability.go / AcceptsEmpty).
type varNode struct{ k int }

func (varNode) rxNode() {}
func (n varNode) Hash() uint64 {
	return mixHash(mixHash(hashOffset, 7), uint64(n.k))
}

// newVar allocates a fresh recursion marker; only the set-algebra and
// canonicalization activations in algebra.go and canonical.go are allowed
// to call this.
func newVar(k int) Rx { return varNode{k: k} }

// isVar reports whether r is a raw recursion marker, and unwraps it.
func isVar(r Rx) (varNode, bool) {
	v, ok := r.(varNode)
	return v, ok
}

// Phi is the empty language ∅: the unique term matching no string.
var Phi Rx = phiNode{}

// Empty is the language {""}: the unique term matching only the empty string.
var Empty Rx = emptyNode{}

// Dot is the language of any single character: Letters(Full).
var Dot = Letters(letterset.Full)

// Universe is the language of all finite strings: Dot.Star().
var Universe = Star(Dot)

func isPhiStrict(r Rx) bool {
	_, ok := r.(phiNode)
	return ok
}

func isEmptyStrict(r Rx) bool {
	_, ok := r.(emptyNode)
	return ok
}

// Letter returns the language {c}.
func Letter(c rune) Rx { return letterNode{c: c} }

// Letters returns the language {c : c ∈ s}. An empty s normalizes to Phi;
// a singleton s normalizes to Letter, maintaining the |S| ≥ 2 invariant on
// lettersNode.
func Letters(s letterset.LetterSet) Rx {
	if s.IsEmpty() {
		return Phi
	}
	if c, ok := s.SingleValue(); ok {
		return Letter(c)
	}
	return lettersNode{s: s}
}

// Range returns the language of any single character in [lo,hi].
func Range(lo, hi rune) Rx {
	return Letters(letterset.FromRange(lo, hi))
}

// Literal returns the language {s}: the concatenation of each of s's
// characters as a Letter.
func Literal(s string) Rx {
	var out Rx = Empty
	for _, c := range s {
		out = Concat(out, Letter(c))
	}
	return out
}

// letterSetOf extracts the LetterSet a letter-ish leaf denotes, for the
// Choice-fusion rule (two letter-ish leaves fuse into one Letters node).
func letterSetOf(r Rx) (letterset.LetterSet, bool) {
	switch n := r.(type) {
	case letterNode:
		return letterset.Single(n.c), true
	case lettersNode:
		return n.s, true
	default:
		return letterset.LetterSet{}, false
	}
}

// Or returns r1 ∪ r2, normalizing per the Choice invariants: Phi is the
// identity, equal terms collapse to one, and two letter-ish leaves fuse
// into a single Letters via LetterSet union.
func Or(r1, r2 Rx) Rx {
	if isPhiStrict(r1) {
		return r2
	}
	if isPhiStrict(r2) {
		return r1
	}
	if Equal(r1, r2) {
		return r1
	}
	if s1, ok1 := letterSetOf(r1); ok1 {
		if s2, ok2 := letterSetOf(r2); ok2 {
			return Letters(s1.Union(s2))
		}
	}
	return choiceNode{l: r1, r: r2}
}

// Concat returns { xy : x ∈ r1, y ∈ r2 }, normalizing Phi-annihilation and
// Empty-identity: x·∅ = ∅ = ∅·x, ε·x = x, x·ε = x (ε here is Empty).
func Concat(r1, r2 Rx) Rx {
	if isPhiStrict(r1) || isPhiStrict(r2) {
		return Phi
	}
	if isEmptyStrict(r1) {
		return r2
	}
	if isEmptyStrict(r2) {
		return r1
	}
	return concatNode{l: r1, r: r2}
}

// Star returns r*, collapsing Star(Star(r)) to Star(r) and Star(Phi) /
// Star(Empty) to Empty.
func Star(r Rx) Rx {
	if isPhiStrict(r) || isEmptyStrict(r) {
		return Empty
	}
	if s, ok := r.(starNode); ok {
		return s
	}
	return starNode{r: r}
}

// Repeat returns r repeated between m and n times inclusive. It fails with
// an InvalidArgument-coded error if 0 ≤ m ≤ n and n ≥ 1 does not hold (n =
// 0 is explicitly allowed and normalizes to Empty). Repeat of Phi is Phi;
// of Empty is Empty.
func Repeat(r Rx, m, n int) (Rx, error) {
	if m < 0 || n < m {
		return nil, invalidRepeat(m, n)
	}
	if n == 0 {
		return Empty, nil
	}
	if isPhiStrict(r) {
		return Phi, nil
	}
	if isEmptyStrict(r) {
		return Empty, nil
	}
	return repeatNode{r: r, m: m, n: n}, nil
}

// The variant list below exists purely as a compile-time reminder of the
// closed set of node types: touch it whenever a new one is added so every
// exhaustive switch in the package gets revisited.
var (
	_ Rx = phiNode{}
	_ Rx = emptyNode{}
	_ Rx = letterNode{}
	_ Rx = lettersNode{}
	_ Rx = choiceNode{}
	_ Rx = concatNode{}
	_ Rx = starNode{}
	_ Rx = repeatNode{}
	_ Rx = varNode{}
)

// Pow returns r repeated exactly k times; negative k yields Empty.
func Pow(r Rx, k int) Rx {
	if k < 0 {
		return Empty
	}
	result, err := Repeat(r, k, k)
	if err != nil {
		// k >= 0 always satisfies Repeat's precondition.
		panic(err)
	}
	return result
}
