package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquivAStarVsExpandedForm(t *testing.T) {
	// a* vs (aa)*|(aa)*a
	aa := Concat(Letter('a'), Letter('a'))
	expanded := Or(Star(aa), Concat(Star(aa), Letter('a')))
	assert.True(t, Equiv(Star(Letter('a')), expanded))
}

func TestEquivDistinguishesDifferentLanguages(t *testing.T) {
	assert.False(t, Equiv(Star(Letter('a')), Star(Letter('b'))))
	assert.False(t, Equiv(Literal("ab"), Literal("abc")))
}

func TestEquivReflexiveOnPhiAndEmpty(t *testing.T) {
	assert.True(t, Equiv(Phi, Phi))
	assert.True(t, Equiv(Empty, Empty))
	assert.False(t, Equiv(Phi, Empty))
}

func TestPartialCompareSubsetAndSuperset(t *testing.T) {
	ac := Range('a', 'c')
	bd := Range('b', 'd')
	assert.Equal(t, CmpIncomparable, PartialCompare(ac, bd))

	ab := Range('a', 'b')
	az := Range('a', 'z')
	assert.True(t, ProperSubsetOf(ab, az))
	assert.True(t, ProperSupersetOf(az, ab))
	assert.Equal(t, CmpLess, PartialCompare(ab, az))
	assert.Equal(t, CmpGreater, PartialCompare(az, ab))
}

func TestPartialCompareEqualTerms(t *testing.T) {
	r := Star(Literal("ab"))
	assert.Equal(t, CmpEqual, PartialCompare(r, r))
	assert.True(t, SubsetOf(r, r))
	assert.True(t, SupersetOf(r, r))
	assert.False(t, ProperSubsetOf(r, r))
}

func TestPartialComparePhiIsBottom(t *testing.T) {
	assert.Equal(t, CmpLess, PartialCompare(Phi, Letter('a')))
	assert.Equal(t, CmpGreater, PartialCompare(Letter('a'), Phi))
}

func TestAccTable(t *testing.T) {
	assert.Equal(t, CmpLess, acc(CmpLess, CmpLess))
	assert.Equal(t, CmpLess, acc(CmpLess, CmpEqual))
	assert.Equal(t, CmpIncomparable, acc(CmpLess, CmpGreater))
	assert.Equal(t, CmpEqual, acc(CmpEqual, CmpEqual))
	assert.Equal(t, CmpGreater, acc(CmpGreater, CmpEqual))
	assert.Equal(t, CmpIncomparable, acc(CmpIncomparable, CmpEqual))
}
