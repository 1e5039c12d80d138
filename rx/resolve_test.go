package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveArdenBasic(t *testing.T) {
	// X = a.X | b  =>  X = a*.b
	k := 0
	r := Or(Concat(Letter('a'), newVar(k)), Letter('b'))
	got := resolve(r, k)
	want := Concat(Star(Letter('a')), Letter('b'))
	assert.True(t, Equal(got, want), "got %#v want %#v", got, want)
}

func TestResolveArdenNoBaseCase(t *testing.T) {
	// X = X  =>  X = empty language
	k := 0
	r := newVar(k)
	got := resolve(r, k)
	assert.True(t, IsPhi(got))
}

func TestResolveArdenPureStar(t *testing.T) {
	// X = a.X | ""  =>  X = a*
	k := 0
	r := Or(Concat(Letter('a'), newVar(k)), Empty)
	got := resolve(r, k)
	want := Star(Letter('a'))
	assert.True(t, Equiv(got, want))
}

func TestSplitLeavesOtherVarsInB(t *testing.T) {
	k, j := 0, 1
	r := Or(Concat(Letter('a'), newVar(k)), newVar(j))
	R, B := split(r, k)
	assert.True(t, Equal(R, Letter('a')))
	if v, ok := isVar(B); assert.True(t, ok) {
		assert.Equal(t, j, v.k)
	}
}
