package letterset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRangesMergesOverlapsAndAdjacency(t *testing.T) {
	s := FromRanges([]Range{{Lo: 'a', Hi: 'c'}, {Lo: 'b', Hi: 'd'}, {Lo: 'f', Hi: 'f'}, {Lo: 'g', Hi: 'h'}})
	assert.Equal(t, []Range{{Lo: 'a', Hi: 'd'}, {Lo: 'f', Hi: 'h'}}, s.Ranges())
}

func TestSingleValue(t *testing.T) {
	single, ok := Single('x').SingleValue()
	require.True(t, ok)
	assert.Equal(t, 'x', single)

	_, ok = FromRange('a', 'c').SingleValue()
	assert.False(t, ok)
}

func TestContainsAndMinMax(t *testing.T) {
	s := FromRanges([]Range{{Lo: 'a', Hi: 'c'}, {Lo: 'x', Hi: 'z'}})
	assert.True(t, s.Contains('b'))
	assert.False(t, s.Contains('d'))
	min, _ := s.Min()
	max, _ := s.Max()
	assert.Equal(t, 'a', min)
	assert.Equal(t, 'z', max)
}

func TestUnionIntersectDiff(t *testing.T) {
	a := FromRange('a', 'c')
	b := FromRange('b', 'd')

	assert.True(t, a.Union(b).Equal(FromRange('a', 'd')))
	assert.True(t, a.Intersect(b).Equal(FromRange('b', 'c')))
	assert.True(t, a.Diff(b).Equal(Single('a')))
	assert.True(t, b.Diff(a).Equal(Single('d')))
}

func TestVennDisjointInputsProduceLeftAndRightOnly(t *testing.T) {
	a := FromRange('a', 'c')
	b := FromRange('x', 'z')
	pieces := Venn([]LetterSet{a}, []LetterSet{b})
	require.Len(t, pieces, 2)
	for _, p := range pieces {
		if p.Tag == Left {
			assert.True(t, p.Set.Equal(a))
		} else {
			assert.True(t, p.Set.Equal(b))
		}
	}
}

func TestVennOverlappingInputsProduceThreePieces(t *testing.T) {
	a := FromRange('a', 'c')
	b := FromRange('b', 'd')
	pieces := Venn([]LetterSet{a}, []LetterSet{b})
	require.Len(t, pieces, 3)

	var left, right, both LetterSet
	for _, p := range pieces {
		switch p.Tag {
		case Left:
			left = p.Set
		case Right:
			right = p.Set
		case Both:
			both = p.Set
		}
	}
	assert.True(t, left.Equal(Single('a')))
	assert.True(t, right.Equal(Single('d')))
	assert.True(t, both.Equal(FromRange('b', 'c')))
}

func TestVennIsUnionCovering(t *testing.T) {
	a := []LetterSet{FromRange('a', 'e'), FromRange('k', 'k')}
	b := []LetterSet{FromRange('c', 'm')}
	pieces := Venn(a, b)

	var union LetterSet
	for _, p := range pieces {
		union = union.Union(p.Set)
	}
	want := FromRange('a', 'e').Union(FromRange('k', 'k')).Union(FromRange('c', 'm'))
	assert.True(t, union.Equal(want))

	// pairwise disjoint
	for i := range pieces {
		for j := range pieces {
			if i == j {
				continue
			}
			assert.True(t, pieces[i].Set.Intersect(pieces[j].Set).IsEmpty())
		}
	}
}

func TestEmptySet(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.True(t, FromRange('z', 'a').IsEmpty())
}
