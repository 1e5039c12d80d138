package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReprBasics(t *testing.T) {
	assert.Equal(t, "∅", Repr(Phi))
	assert.Equal(t, `""`, Repr(Empty))
	assert.Equal(t, "a", Repr(Letter('a')))
	assert.Equal(t, "a*", Repr(Star(Letter('a'))))
}

func TestReprEscapesMetacharacters(t *testing.T) {
	assert.Equal(t, `\.`, Repr(Letter('.')))
	assert.Equal(t, `\*`, Repr(Letter('*')))
	assert.Equal(t, `\(`, Repr(Letter('(')))
}

func TestReprParenthesizesChoiceInsideConcat(t *testing.T) {
	choice := Or(Concat(Letter('a'), Letter('a')), Letter('b'))
	r := Concat(choice, Letter('c'))
	got := Repr(r)
	assert.Equal(t, "(aa|b)c", got)
}

func TestReprParenthesizesConcatBeforeStar(t *testing.T) {
	star := Star(Concat(Letter('a'), Letter('b')))
	assert.Equal(t, "(ab)*", Repr(star))
}

func TestReprFlattensChoiceChain(t *testing.T) {
	r := Or(Or(Literal("aa"), Literal("bb")), Literal("cc"))
	got := Repr(r)
	assert.Equal(t, "aa|bb|cc", got)
}

func TestReprRepeat(t *testing.T) {
	rep, err := Repeat(Letter('a'), 2, 4)
	assert.NoError(t, err)
	assert.Equal(t, "a{2,4}", Repr(rep))
}

func TestReprCharacterClass(t *testing.T) {
	r := Range('a', 'z')
	assert.Equal(t, "[a-z]", Repr(r))
}

func TestReprDotForFullAlphabet(t *testing.T) {
	assert.Equal(t, ".", Repr(Dot))
}

func TestDebugShowsTreeShape(t *testing.T) {
	r := Concat(Letter('a'), Star(Letter('b')))
	assert.Equal(t, `Concat(Letter('a'), Star(Letter('b')))`, Debug(r))
}
