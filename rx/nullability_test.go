package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptsEmpty(t *testing.T) {
	assert.False(t, AcceptsEmpty(Phi))
	assert.True(t, AcceptsEmpty(Empty))
	assert.False(t, AcceptsEmpty(Letter('a')))
	assert.True(t, AcceptsEmpty(Star(Letter('a'))))
	assert.True(t, AcceptsEmpty(Or(Empty, Letter('a'))))
	assert.False(t, AcceptsEmpty(Concat(Letter('a'), Empty)))

	rep, err := Repeat(Letter('a'), 0, 3)
	assert.NoError(t, err)
	assert.True(t, AcceptsEmpty(rep))

	rep2, err := Repeat(Letter('a'), 1, 3)
	assert.NoError(t, err)
	assert.False(t, AcceptsEmpty(rep2))
}

func TestIsPhiAndIsEmpty(t *testing.T) {
	assert.True(t, IsPhi(Phi))
	assert.False(t, IsPhi(Empty))
	assert.True(t, IsEmpty(Empty))
	assert.False(t, IsEmpty(Phi))
	assert.False(t, IsPhi(Letter('a')))
	assert.False(t, IsEmpty(Letter('a')))
}

func TestIsSingle(t *testing.T) {
	assert.True(t, IsSingle(Letter('a')))
	assert.False(t, IsSingle(Or(Letter('a'), Letter('b'))))
	assert.False(t, IsSingle(Range('a', 'z')))
}
