package feed

// Cursor is the pagination position for one accumulator.
// Next is the page the next fetch should request, starting at 1.
// It only moves forward after a successful fetch, so a failed page is
// re-requested as-is on retry
type Cursor struct {
	Next    int
	HasMore bool
}

// NewCursor returns a cursor positioned at page 1 with more assumed
func NewCursor() Cursor { return Cursor{Next: 1, HasMore: true} }

// Advance moves past a successfully fetched page and records whether
// the backend reported (or the page size implied) another one
func (c *Cursor) Advance(hasMore bool) {
	c.Next++
	c.HasMore = hasMore
}
