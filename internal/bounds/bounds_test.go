package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const maxU = ^uintptr(0)

func TestAdd(t *testing.T) {
	s, ok := Add(3, 4)
	assert.True(t, ok)
	assert.Equal(t, uintptr(7), s)

	_, ok = Add(maxU, 1)
	assert.False(t, ok, "wraparound must be rejected")

	s, ok = Add(maxU, 0)
	assert.True(t, ok)
	assert.Equal(t, maxU, s)
}

func TestClip(t *testing.T) {
	rest, ok := Clip(3, 10)
	assert.True(t, ok)
	assert.Equal(t, uintptr(7), rest)

	rest, ok = Clip(10, 10)
	assert.True(t, ok)
	assert.Zero(t, rest)

	_, ok = Clip(11, 10)
	assert.False(t, ok)
}

func TestFits(t *testing.T) {
	assert.True(t, Fits(0, 10, 10))
	assert.True(t, Fits(9, 1, 10))
	assert.False(t, Fits(9, 2, 10))
	assert.False(t, Fits(10, 1, 10))
	assert.False(t, Fits(1, maxU, 10), "overflowing ranges never fit")
}
