// Package letterset implements the LetterSet collaborator named in the
// spec: a finite ordered union of disjoint [lo,hi] character ranges over
// the full rune alphabet, plus the n-way Venn partition used to keep the
// derivative automaton's alphabet finite.
//
// Values are immutable; every operation returns a new LetterSet backed by
// github.com/benbjohnson/immutable, the same persistent-collection library
// ile's util.MSet.Immutable converts into.
package letterset

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/benbjohnson/immutable"
)

// Range is an inclusive, closed character range [Lo, Hi].
type Range struct {
	Lo, Hi rune
}

func (r Range) overlapsOrAdjacent(other Range) bool {
	return r.Lo <= other.Hi+1 && other.Lo <= r.Hi+1
}

// FullLo and FullHi bound the alphabet this package assumes: the complete
// rune range, as the spec requires ("the alphabet is Char, including the
// full code-unit range; no Unicode-category awareness").
const (
	FullLo rune = 0
	FullHi rune = utf8.MaxRune
)

// LetterSet is an ordered union of disjoint, non-adjacent [lo,hi] ranges.
// The zero value is the empty set.
type LetterSet struct {
	ranges *immutable.List[Range]
}

// Full is the LetterSet covering the entire alphabet.
var Full = FromRange(FullLo, FullHi)

// Empty is the LetterSet covering no characters.
var Empty = LetterSet{}

func (s LetterSet) list() *immutable.List[Range] {
	if s.ranges == nil {
		return immutable.NewList[Range]()
	}
	return s.ranges
}

// Single returns the LetterSet containing exactly c.
func Single(c rune) LetterSet {
	return FromRange(c, c)
}

// FromRange returns the LetterSet covering [lo,hi] inclusive. If hi < lo
// the result is Empty.
func FromRange(lo, hi rune) LetterSet {
	if hi < lo {
		return Empty
	}
	b := immutable.NewListBuilder[Range]()
	b.Append(Range{Lo: lo, Hi: hi})
	return LetterSet{ranges: b.List()}
}

// FromRanges builds a LetterSet from arbitrary (possibly overlapping,
// unsorted) ranges, normalizing them into the canonical sorted,
// disjoint, non-adjacent form.
func FromRanges(rs []Range) LetterSet {
	filtered := make([]Range, 0, len(rs))
	for _, r := range rs {
		if r.Hi >= r.Lo {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return Empty
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Lo < filtered[j].Lo })

	b := immutable.NewListBuilder[Range]()
	cur := filtered[0]
	for _, r := range filtered[1:] {
		if cur.overlapsOrAdjacent(r) {
			if r.Hi > cur.Hi {
				cur.Hi = r.Hi
			}
			continue
		}
		b.Append(cur)
		cur = r
	}
	b.Append(cur)
	return LetterSet{ranges: b.List()}
}

// Ranges returns the set's canonical sorted, disjoint ranges.
func (s LetterSet) Ranges() []Range {
	l := s.list()
	out := make([]Range, 0, l.Len())
	itr := l.Iterator()
	for !itr.Done() {
		_, r := itr.Next()
		out = append(out, r)
	}
	return out
}

// IsEmpty reports whether the set contains no characters.
func (s LetterSet) IsEmpty() bool {
	return s.list().Len() == 0
}

// Len returns the total number of distinct characters covered.
func (s LetterSet) Len() int {
	total := 0
	for _, r := range s.Ranges() {
		total += int(r.Hi-r.Lo) + 1
	}
	return total
}

// SingleValue returns the set's lone character and true, if |S| = 1.
func (s LetterSet) SingleValue() (rune, bool) {
	rs := s.Ranges()
	if len(rs) == 1 && rs[0].Lo == rs[0].Hi {
		return rs[0].Lo, true
	}
	return 0, false
}

// Min returns the smallest character in the set, if any.
func (s LetterSet) Min() (rune, bool) {
	rs := s.Ranges()
	if len(rs) == 0 {
		return 0, false
	}
	return rs[0].Lo, true
}

// Max returns the largest character in the set, if any.
func (s LetterSet) Max() (rune, bool) {
	rs := s.Ranges()
	if len(rs) == 0 {
		return 0, false
	}
	return rs[len(rs)-1].Hi, true
}

// Contains reports whether c belongs to the set.
func (s LetterSet) Contains(c rune) bool {
	rs := s.Ranges()
	lo, hi := 0, len(rs)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case c < rs[mid].Lo:
			hi = mid - 1
		case c > rs[mid].Hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// Union returns s ∪ other.
func (s LetterSet) Union(other LetterSet) LetterSet {
	return FromRanges(append(s.Ranges(), other.Ranges()...))
}

// Intersect returns s ∩ other.
func (s LetterSet) Intersect(other LetterSet) LetterSet {
	a, b := s.Ranges(), other.Ranges()
	var out []Range
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max(a[i].Lo, b[j].Lo)
		hi := min(a[i].Hi, b[j].Hi)
		if lo <= hi {
			out = append(out, Range{Lo: lo, Hi: hi})
		}
		if a[i].Hi < b[j].Hi {
			i++
		} else {
			j++
		}
	}
	return FromRanges(out)
}

// Diff returns s − other.
func (s LetterSet) Diff(other LetterSet) LetterSet {
	a, b := s.Ranges(), other.Ranges()
	var out []Range
	for _, r := range a {
		lo := r.Lo
		for _, cut := range b {
			if cut.Hi < lo || cut.Lo > r.Hi {
				continue
			}
			if cut.Lo > lo {
				out = append(out, Range{Lo: lo, Hi: cut.Lo - 1})
			}
			if cut.Hi+1 > lo {
				lo = cut.Hi + 1
			}
			if lo > r.Hi {
				break
			}
		}
		if lo <= r.Hi {
			out = append(out, Range{Lo: lo, Hi: r.Hi})
		}
	}
	return FromRanges(out)
}

// Equal reports whether s and other cover exactly the same characters.
func (s LetterSet) Equal(other LetterSet) bool {
	a, b := s.Ranges(), other.Ranges()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash produces an FNV-1a-style hash over the set's canonical ranges,
// used by Rx.Hash() so Letters terms can sit in hash-consing maps.
func (s LetterSet) Hash() uint64 {
	const prime uint64 = 1099511628211
	h := uint64(14695981039346656037)
	for _, r := range s.Ranges() {
		h = (h ^ uint64(r.Lo)) * prime
		h = (h ^ uint64(r.Hi)) * prime
	}
	return h
}

func (s LetterSet) String() string {
	parts := make([]string, 0, len(s.Ranges()))
	for _, r := range s.Ranges() {
		if r.Lo == r.Hi {
			parts = append(parts, fmt.Sprintf("%q", r.Lo))
		} else {
			parts = append(parts, fmt.Sprintf("%q-%q", r.Lo, r.Hi))
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Tag marks which side(s) of a Venn partition a piece belongs to.
type Tag int

const (
	// Left marks a piece covered only by the left-hand input list.
	Left Tag = iota
	// Right marks a piece covered only by the right-hand input list.
	Right
	// Both marks a piece covered by both input lists.
	Both
)

func (t Tag) String() string {
	switch t {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Both"
	}
}

// Piece is one tagged, disjoint slice of a Venn partition.
type Piece struct {
	Set LetterSet
	Tag Tag
}

// Venn partitions the union of as and bs into pairwise disjoint pieces
// tagged Left (covered only by as), Right (covered only by bs) or Both
// (covered by both). as and bs are each lists of pairwise disjoint sets;
// every piece lies inside at most one element of as and at most one
// element of bs, so characters that different elements of one list keep
// apart never share a piece. Pieces with an empty set are omitted.
//
// This is the correctness-critical primitive behind firstSet, equiv,
// partialCompare and the set-algebra combinators: every character inside
// one returned piece takes the same derivative step for the term(s) that
// produced it.
func Venn(as, bs []LetterSet) []Piece {
	var aRanges, bRanges []Range
	for _, s := range as {
		aRanges = append(aRanges, s.Ranges()...)
	}
	for _, s := range bs {
		bRanges = append(bRanges, s.Ranges()...)
	}
	a := FromRanges(aRanges)
	b := FromRanges(bRanges)

	boundaries := collectBoundaries(a, b)
	var leftOut, rightOut, bothOut []Range
	for i := 0; i+1 < len(boundaries); i++ {
		lo, hi := boundaries[i], boundaries[i+1]-1
		if hi < lo {
			continue
		}
		mid := lo
		inA := a.Contains(mid)
		inB := b.Contains(mid)
		switch {
		case inA && inB:
			bothOut = append(bothOut, Range{Lo: lo, Hi: hi})
		case inA:
			leftOut = append(leftOut, Range{Lo: lo, Hi: hi})
		case inB:
			rightOut = append(rightOut, Range{Lo: lo, Hi: hi})
		}
	}

	var pieces []Piece
	if left := FromRanges(leftOut); !left.IsEmpty() {
		pieces = append(pieces, Piece{Set: left, Tag: Left})
	}
	if right := FromRanges(rightOut); !right.IsEmpty() {
		pieces = append(pieces, Piece{Set: right, Tag: Right})
	}
	if both := FromRanges(bothOut); !both.IsEmpty() {
		pieces = append(pieces, Piece{Set: both, Tag: Both})
	}
	// split each piece along the elements of as and bs; the complements of
	// a and b pick up the parts of a piece outside either union.
	xs := append(as[:len(as):len(as)], Full.Diff(a))
	ys := append(bs[:len(bs):len(bs)], Full.Diff(b))
	var refined []Piece
	for _, p := range pieces {
		for _, x := range xs {
			for _, y := range ys {
				if s := p.Set.Intersect(x).Intersect(y); !s.IsEmpty() {
					refined = append(refined, Piece{Set: s, Tag: p.Tag})
				}
			}
		}
	}
	return refined
}

// collectBoundaries returns the sorted, deduplicated sweep points at which
// membership in a or b can change: every range start, and every range end+1.
func collectBoundaries(a, b LetterSet) []rune {
	seen := make(map[rune]struct{})
	add := func(r rune) { seen[r] = struct{}{} }
	for _, r := range a.Ranges() {
		add(r.Lo)
		if r.Hi < FullHi {
			add(r.Hi + 1)
		}
	}
	for _, r := range b.Ranges() {
		add(r.Lo)
		if r.Hi < FullHi {
			add(r.Hi + 1)
		}
	}
	out := make([]rune, 0, len(seen)+1)
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	out = append(out, FullHi+1)
	return out
}
