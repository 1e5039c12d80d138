package rxparse

import (
	"testing"

	"github.com/cottand/regexalg/rx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralAndConcat(t *testing.T) {
	term, err := Parse("ab")
	require.NoError(t, err)
	assert.True(t, rx.Accepts(term, "ab"))
	assert.False(t, rx.Accepts(term, "ba"))
}

func TestParseAlternation(t *testing.T) {
	term, err := Parse("ab|cd")
	require.NoError(t, err)
	assert.True(t, rx.Accepts(term, "ab"))
	assert.True(t, rx.Accepts(term, "cd"))
	assert.False(t, rx.Accepts(term, "ac"))
}

func TestParseStarPlusOptional(t *testing.T) {
	star, err := Parse("a*")
	require.NoError(t, err)
	assert.True(t, rx.Accepts(star, ""))
	assert.True(t, rx.Accepts(star, "aaa"))

	plus, err := Parse("a+")
	require.NoError(t, err)
	assert.False(t, rx.Accepts(plus, ""))
	assert.True(t, rx.Accepts(plus, "aaa"))

	opt, err := Parse("a?")
	require.NoError(t, err)
	assert.True(t, rx.Accepts(opt, ""))
	assert.True(t, rx.Accepts(opt, "a"))
	assert.False(t, rx.Accepts(opt, "aa"))
}

func TestParseBoundedRepeat(t *testing.T) {
	exact, err := Parse("a{3}")
	require.NoError(t, err)
	assert.False(t, rx.Accepts(exact, "aa"))
	assert.True(t, rx.Accepts(exact, "aaa"))
	assert.False(t, rx.Accepts(exact, "aaaa"))

	bounded, err := Parse("a{2,4}")
	require.NoError(t, err)
	assert.False(t, rx.Accepts(bounded, "a"))
	assert.True(t, rx.Accepts(bounded, "aa"))
	assert.True(t, rx.Accepts(bounded, "aaaa"))
	assert.False(t, rx.Accepts(bounded, "aaaaa"))

	atLeast, err := Parse("a{2,}")
	require.NoError(t, err)
	assert.False(t, rx.Accepts(atLeast, "a"))
	assert.True(t, rx.Accepts(atLeast, "aa"))
	assert.True(t, rx.Accepts(atLeast, "aaaaaaaa"))
}

func TestParseCharacterClass(t *testing.T) {
	class, err := Parse("[a-cx]")
	require.NoError(t, err)
	assert.True(t, rx.Accepts(class, "a"))
	assert.True(t, rx.Accepts(class, "c"))
	assert.True(t, rx.Accepts(class, "x"))
	assert.False(t, rx.Accepts(class, "d"))
}

func TestParseNegatedCharacterClass(t *testing.T) {
	class, err := Parse("[^a-c]")
	require.NoError(t, err)
	assert.False(t, rx.Accepts(class, "b"))
	assert.True(t, rx.Accepts(class, "z"))
}

func TestParseDotMatchesAnyCharacter(t *testing.T) {
	dot, err := Parse(".")
	require.NoError(t, err)
	assert.True(t, rx.Accepts(dot, "x"))
	assert.True(t, rx.Accepts(dot, "9"))
	assert.False(t, rx.Accepts(dot, ""))
}

func TestParseShorthandClasses(t *testing.T) {
	digits, err := Parse(`\d+`)
	require.NoError(t, err)
	assert.True(t, rx.Accepts(digits, "123"))
	assert.False(t, rx.Accepts(digits, "12a"))

	word, err := Parse(`\w+`)
	require.NoError(t, err)
	assert.True(t, rx.Accepts(word, "abc_123"))
	assert.False(t, rx.Accepts(word, "abc "))
}

func TestParseGrouping(t *testing.T) {
	term, err := Parse("(ab)+")
	require.NoError(t, err)
	assert.True(t, rx.Accepts(term, "ab"))
	assert.True(t, rx.Accepts(term, "abab"))
	assert.False(t, rx.Accepts(term, "aba"))
}

func TestParseUnterminatedGroupFails(t *testing.T) {
	_, err := Parse("(ab")
	assert.Error(t, err)
}

func TestParseUnterminatedClassFails(t *testing.T) {
	_, err := Parse("[ab")
	assert.Error(t, err)
}

func TestParseDanglingEscapeFails(t *testing.T) {
	_, err := Parse(`a\`)
	assert.Error(t, err)
}

func TestParseTrailingGarbageFails(t *testing.T) {
	_, err := Parse("a)")
	assert.Error(t, err)
}

func TestParseInvalidRepeatBoundFails(t *testing.T) {
	_, err := Parse("a{4,2}")
	assert.Error(t, err)
}
