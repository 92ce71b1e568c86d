package memory

import "sync/atomic"

// Cursor is the process-wide assignment counter. Starts at 0, moves
// forward exactly once per successful route, never resets.
type Cursor struct {
	n atomic.Uint64
}

func NewCursor() *Cursor {
	return &Cursor{}
}

// Next consumes and returns the current cursor value. The fetch-add
// guarantees no two callers ever observe the same value.
func (c *Cursor) Next() uint64 {
	return c.n.Add(1) - 1
}

// Value reads the cursor without consuming it.
func (c *Cursor) Value() uint64 {
	return c.n.Load()
}
