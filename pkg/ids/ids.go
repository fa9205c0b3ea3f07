// Package ids implements typed 32-bit identifiers and the per-kind
// entity store built on top of them. IDs are allocated from one
// monotonically increasing counter, never reused or reclaimed, and
// serialize as the bare integer.
package ids

// PlayerID identifies a player for the life of a game.
type PlayerID uint32

// CardID identifies a card instance for the life of a game.
type CardID uint32

// Counter is the single monotonically increasing allocator GameState
// owns. It can hand out either kind, and no two ids it hands out are
// equal. GameState draws card ids from it; player ids are passed to
// state.New by the caller and are not drawn from it, so a PlayerID and a
// CardID can share the same number.
type Counter struct {
	next uint32
}

// NextPlayerID allocates the next id as a PlayerID.
func (c *Counter) NextPlayerID() PlayerID {
	c.next++
	return PlayerID(c.next)
}

// NextCardID allocates the next id as a CardID.
func (c *Counter) NextCardID() CardID {
	c.next++
	return CardID(c.next)
}

// Peek returns the counter's current value without advancing it, for
// serialization.
func (c *Counter) Peek() uint32 { return c.next }

// Restore sets the counter to an exact value, used when deserializing a
// snapshot.
func (c *Counter) Restore(v uint32) { c.next = v }
