package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorClampsAtEnd(t *testing.T) {
	c := NewCursor(3)
	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Current())

	c.Next() // already at the last index
	assert.Equal(t, 2, c.Current())
}

func TestCursorClampsAtStart(t *testing.T) {
	c := NewCursor(3)
	c.Previous()
	assert.Equal(t, 0, c.Current())

	c.Next()
	c.Previous()
	c.Previous()
	assert.Equal(t, 0, c.Current())
}

func TestCursorJumpTo(t *testing.T) {
	c := NewCursor(5)
	require.NoError(t, c.JumpTo(4))
	assert.Equal(t, 4, c.Current())

	err := c.JumpTo(5)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, 4, c.Current())

	err = c.JumpTo(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestCursorEmptyCorpus(t *testing.T) {
	c := NewCursor(0)
	assert.Equal(t, EmptyIndex, c.Current())

	c.Next()
	c.Previous()
	assert.Equal(t, EmptyIndex, c.Current())

	assert.Error(t, c.JumpTo(0))
}
