package rx

import (
	"github.com/cottand/regexalg/internal/letterset"
	"github.com/cottand/regexalg/internal/log"
	"github.com/cottand/regexalg/internal/size"
	set "github.com/hashicorp/go-set/v3"
)

// pairKey is the coinduction-hypothesis key for Equiv/PartialCompare,
// shaped like ile's constraintPair: a hashed pair of terms backing a
// *set.HashSet, so re-encountering a pair during the bisimulation walk is
// a cheap membership check rather than a recomputation.
type pairKey struct {
	a, b uint64
}

func (p *pairKey) Hash() uint64 {
	return 31*p.a ^ p.b
}

// Equiv decides language equality of lhs and rhs via a coinductive
// bisimulation: it assumes a pair equivalent as soon as it is
// re-encountered (the env set is the coinduction hypothesis), and
// terminates because Antimirov derivatives reach only finitely many
// distinct residues.
func Equiv(lhs, rhs Rx) bool {
	env := set.NewHashSet[*pairKey, uint64](0)
	result := equivRec(lhs, rhs, env)
	log.DefaultLogger.Info("equiv decided", "section", "decide", "lhs", Repr(lhs), "rhs", Repr(rhs), "equal", result)
	return result
}

func equivRec(r1, r2 Rx, env *set.HashSet[*pairKey, uint64]) bool {
	log.DefaultLogger.Debug("equiv step", "section", "decide", "lhs", Repr(r1), "rhs", Repr(r2))
	if AcceptsEmpty(r1) != AcceptsEmpty(r2) {
		return false
	}
	if IsPhi(r1) != IsPhi(r2) {
		return false
	}
	pair := &pairKey{a: r1.Hash(), b: r2.Hash()}
	if env.Contains(pair) {
		return true
	}

	s1, ok1 := MatchSizes(r1)
	s2, ok2 := MatchSizes(r2)
	if ok1 != ok2 || (ok1 && !s1.Equal(s2)) {
		return false
	}

	pieces := letterset.Venn(FirstSet(r1), FirstSet(r2))
	for _, p := range pieces {
		if p.Tag != letterset.Both {
			return false
		}
	}

	env.Insert(pair)
	for _, p := range pieces {
		c, _ := p.Set.Min()
		if !equivRec(Deriv(r1, c), Deriv(r2, c), env) {
			return false
		}
	}
	return true
}

// Cmp is the result of PartialCompare: a three-valued order plus an
// incomparable case, playing the role of the spec's {-1,0,+1,NaN}.
type Cmp int

const (
	// CmpLess means lhs is a proper or improper subset of rhs.
	CmpLess Cmp = -1
	// CmpEqual means lhs and rhs denote the same language.
	CmpEqual Cmp = 0
	// CmpGreater means lhs is a proper or improper superset of rhs.
	CmpGreater Cmp = 1
	// CmpIncomparable means neither side contains the other.
	CmpIncomparable Cmp = 2
)

func (c Cmp) String() string {
	switch c {
	case CmpLess:
		return "<"
	case CmpEqual:
		return "="
	case CmpGreater:
		return ">"
	default:
		return "NaN"
	}
}

// acc is the lattice-join used to fold partial results together while
// walking the bisimulation; see the spec's acc truth table.
func acc(x, y Cmp) Cmp {
	if x == CmpIncomparable || y == CmpIncomparable {
		return CmpIncomparable
	}
	if x == y {
		return x
	}
	if x == CmpEqual {
		return y
	}
	if y == CmpEqual {
		return x
	}
	return CmpIncomparable
}

func withinRange(inner, outer size.Range) bool {
	return outer.Lo.LessEq(inner.Lo) && inner.Hi.LessEq(outer.Hi)
}

// rangeSubset compares two match-size ranges, treating an absent range
// (the empty language) as a subset of everything and a superset of
// nothing but itself.
func rangeSubset(a size.Range, aOk bool, b size.Range, bOk bool) Cmp {
	switch {
	case !aOk && !bOk:
		return CmpEqual
	case !aOk:
		return CmpLess
	case !bOk:
		return CmpGreater
	}
	switch {
	case a.Equal(b):
		return CmpEqual
	case withinRange(a, b):
		return CmpLess
	case withinRange(b, a):
		return CmpGreater
	default:
		return CmpIncomparable
	}
}

// PartialCompare decides the containment relation between lhs and rhs:
// CmpEqual for equivalent languages, CmpLess/CmpGreater for proper-or-
// improper subset/superset, CmpIncomparable when neither side contains
// the other.
func PartialCompare(lhs, rhs Rx) Cmp {
	env := set.NewHashSet[*pairKey, uint64](0)
	result := partialCompareRec(lhs, rhs, env)
	log.DefaultLogger.Info("partial compare decided", "section", "decide", "lhs", Repr(lhs), "rhs", Repr(rhs), "cmp", result.String())
	return result
}

func partialCompareRec(lhs, rhs Rx, env *set.HashSet[*pairKey, uint64]) Cmp {
	if IsPhi(lhs) {
		if IsPhi(rhs) {
			return CmpEqual
		}
		return CmpLess
	}
	if IsPhi(rhs) {
		return CmpGreater
	}
	if IsEmpty(lhs) {
		switch {
		case IsEmpty(rhs):
			return CmpEqual
		case AcceptsEmpty(rhs):
			return CmpLess
		default:
			return CmpIncomparable
		}
	}
	if IsEmpty(rhs) {
		if AcceptsEmpty(lhs) {
			return CmpGreater
		}
		return CmpIncomparable
	}

	pair := &pairKey{a: lhs.Hash(), b: rhs.Hash()}
	if env.Contains(pair) {
		return CmpEqual
	}

	lNull, rNull := AcceptsEmpty(lhs), AcceptsEmpty(rhs)
	var res Cmp
	switch {
	case lNull == rNull:
		res = CmpEqual
	case lNull:
		res = CmpGreater
	default:
		res = CmpLess
	}

	lSizes, lOk := MatchSizes(lhs)
	rSizes, rOk := MatchSizes(rhs)
	res = acc(res, rangeSubset(lSizes, lOk, rSizes, rOk))
	if res == CmpIncomparable {
		return CmpIncomparable
	}

	env.Insert(pair)

	pieces := letterset.Venn(FirstSet(lhs), FirstSet(rhs))
	var bothPieces []letterset.Piece
	for _, p := range pieces {
		switch p.Tag {
		case letterset.Left:
			res = acc(res, CmpGreater)
		case letterset.Right:
			res = acc(res, CmpLess)
		case letterset.Both:
			bothPieces = append(bothPieces, p)
		}
		if res == CmpIncomparable {
			return CmpIncomparable
		}
	}

	for _, p := range bothPieces {
		c, _ := p.Set.Min()
		sub := partialCompareRec(Deriv(lhs, c), Deriv(rhs, c), env)
		res = acc(res, sub)
		if res == CmpIncomparable {
			return CmpIncomparable
		}
	}
	return res
}

// Less reports whether lhs is a proper subset of rhs.
func Less(lhs, rhs Rx) bool { return PartialCompare(lhs, rhs) == CmpLess }

// LessOrEqual reports whether lhs ⊆ rhs.
func LessOrEqual(lhs, rhs Rx) bool {
	c := PartialCompare(lhs, rhs)
	return c == CmpLess || c == CmpEqual
}

// Greater reports whether lhs is a proper superset of rhs.
func Greater(lhs, rhs Rx) bool { return PartialCompare(lhs, rhs) == CmpGreater }

// GreaterOrEqual reports whether lhs ⊇ rhs.
func GreaterOrEqual(lhs, rhs Rx) bool {
	c := PartialCompare(lhs, rhs)
	return c == CmpGreater || c == CmpEqual
}

// SubsetOf reports whether lhs ⊆ rhs.
func SubsetOf(lhs, rhs Rx) bool { return LessOrEqual(lhs, rhs) }

// SupersetOf reports whether lhs ⊇ rhs.
func SupersetOf(lhs, rhs Rx) bool { return GreaterOrEqual(lhs, rhs) }

// ProperSubsetOf reports whether lhs ⊊ rhs.
func ProperSubsetOf(lhs, rhs Rx) bool { return Less(lhs, rhs) }

// ProperSupersetOf reports whether lhs ⊋ rhs.
func ProperSupersetOf(lhs, rhs Rx) bool { return Greater(lhs, rhs) }
