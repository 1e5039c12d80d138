package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstSetLeaves(t *testing.T) {
	assert.Empty(t, FirstSet(Phi))
	assert.Empty(t, FirstSet(Empty))
	assert.Len(t, FirstSet(Letter('a')), 1)
}

func TestFirstSetConcatNonNullablePrefixHidesSuffix(t *testing.T) {
	r := Concat(Letter('a'), Letter('b'))
	fs := FirstSet(r)
	assert.Len(t, fs, 1)
	assert.True(t, fs[0].Contains('a'))
}

func TestFirstSetConcatNullablePrefixUnionsBoth(t *testing.T) {
	r := Concat(Star(Letter('a')), Letter('b'))
	fs := FirstSet(r)
	covered := map[rune]bool{}
	for _, s := range fs {
		if s.Contains('a') {
			covered['a'] = true
		}
		if s.Contains('b') {
			covered['b'] = true
		}
	}
	assert.True(t, covered['a'])
	assert.True(t, covered['b'])
}

func TestFirstSetIsPairwiseDisjoint(t *testing.T) {
	r := Or(Range('a', 'm'), Range('d', 'z'))
	fs := FirstSet(r)
	for i := range fs {
		for j := range fs {
			if i == j {
				continue
			}
			assert.True(t, fs[i].Intersect(fs[j]).IsEmpty())
		}
	}
}
