package app

import "errors"

// ErrOutOfRange indicates a jump target outside the corpus bounds.
var ErrOutOfRange = errors.New("index out of range")

// EmptyIndex is the cursor position reported when no corpus is loaded.
const EmptyIndex = -1

// Cursor tracks the current position within the ordered corpus. Navigation
// clamps at both ends; it never wraps and never errors at the bounds.
type Cursor struct {
	index  int
	length int
}

// NewCursor creates a cursor over a corpus of the given length, positioned
// at the first entry.
func NewCursor(length int) Cursor {
	if length <= 0 {
		return Cursor{index: EmptyIndex}
	}
	return Cursor{length: length}
}

// Current returns the current index, or EmptyIndex for an empty corpus.
func (c *Cursor) Current() int {
	return c.index
}

// Length returns the corpus size the cursor ranges over.
func (c *Cursor) Length() int {
	return c.length
}

// Next advances one position, staying put at the last entry.
func (c *Cursor) Next() {
	if c.length == 0 {
		return
	}
	if c.index < c.length-1 {
		c.index++
	}
}

// Previous retreats one position, staying put at the first entry.
func (c *Cursor) Previous() {
	if c.length == 0 {
		return
	}
	if c.index > 0 {
		c.index--
	}
}

// JumpTo moves directly to index i.
func (c *Cursor) JumpTo(i int) error {
	if i < 0 || i >= c.length {
		return ErrOutOfRange
	}
	c.index = i
	return nil
}
