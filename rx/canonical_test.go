package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPreservesLanguage(t *testing.T) {
	aa := Concat(Letter('a'), Letter('a'))
	r := Or(Star(aa), Concat(Star(aa), Letter('a')))
	c := Canonical(r)
	assert.True(t, Equiv(r, c))
}

func TestCanonicalOfEquivalentTermsAgree(t *testing.T) {
	aa := Concat(Letter('a'), Letter('a'))
	r1 := Star(Letter('a'))
	r2 := Or(Star(aa), Concat(Star(aa), Letter('a')))
	assert.True(t, Equal(Canonical(r1), Canonical(r2)))
}

func TestCanonicalOfPhiAndEmpty(t *testing.T) {
	assert.True(t, Equiv(Canonical(Phi), Phi))
	assert.True(t, Equiv(Canonical(Empty), Empty))
}

func TestCanonicalOfRepeat(t *testing.T) {
	rep, err := Repeat(Letter('a'), 2, 3)
	assert.NoError(t, err)
	assert.True(t, Equiv(Canonical(rep), rep))
}
