// Package zone implements an ordered sequence of card ids representing
// a library, hand, graveyard, exile, battlefield, or stack. Order
// matters — library top/bottom, stack resolution order, graveyard
// insertion order are all observable — so a zone is a plain slice
// rather than the FNV-hashed pkg/ids.Store.
package zone

import (
	"math/rand"

	"github.com/cardforge/engine/pkg/ids"
)

// Zone is an ordered, duplicate-tolerant sequence of card ids. The
// "top" of a library or the "top" of the stack is conventionally the
// end of the slice, so draw/pop are O(1) rather than O(n).
type Zone struct {
	cards []ids.CardID
}

// New creates an empty zone, optionally pre-populated with the given
// ids in bottom-to-top order.
func New(initial ...ids.CardID) *Zone {
	z := &Zone{cards: make([]ids.CardID, len(initial))}
	copy(z.cards, initial)
	return z
}

// Len returns the number of cards in the zone.
func (z *Zone) Len() int { return len(z.cards) }

// IsEmpty reports whether the zone has no cards.
func (z *Zone) IsEmpty() bool { return len(z.cards) == 0 }

// Cards returns a copy of the zone's contents in bottom-to-top order.
// Callers must not rely on mutating the returned slice to affect the
// zone.
func (z *Zone) Cards() []ids.CardID {
	out := make([]ids.CardID, len(z.cards))
	copy(out, z.cards)
	return out
}

// Contains reports whether id is present anywhere in the zone.
func (z *Zone) Contains(id ids.CardID) bool {
	for _, c := range z.cards {
		if c == id {
			return true
		}
	}
	return false
}

// Top returns the card at the top of the zone (the end of the slice)
// without removing it, and whether the zone was non-empty.
func (z *Zone) Top() (ids.CardID, bool) {
	if len(z.cards) == 0 {
		return 0, false
	}
	return z.cards[len(z.cards)-1], true
}

// PopTop removes and returns the top card (draw-top semantics), and
// whether the zone was non-empty.
func (z *Zone) PopTop() (ids.CardID, bool) {
	if len(z.cards) == 0 {
		return 0, false
	}
	n := len(z.cards) - 1
	id := z.cards[n]
	z.cards = z.cards[:n]
	return id, true
}

// PushTop adds id to the top of the zone.
func (z *Zone) PushTop(id ids.CardID) {
	z.cards = append(z.cards, id)
}

// PushBottom adds id to the bottom of the zone.
func (z *Zone) PushBottom(id ids.CardID) {
	z.cards = append([]ids.CardID{id}, z.cards...)
}

// Remove deletes the first occurrence of id, preserving the relative
// order of the remaining cards. Reports whether id was found.
func (z *Zone) Remove(id ids.CardID) bool {
	for i, c := range z.cards {
		if c == id {
			z.cards = append(z.cards[:i], z.cards[i+1:]...)
			return true
		}
	}
	return false
}

// InsertAt inserts id at position i (0 is the bottom), shifting
// subsequent cards up. i is clamped to [0, Len()].
func (z *Zone) InsertAt(i int, id ids.CardID) {
	if i < 0 {
		i = 0
	}
	if i > len(z.cards) {
		i = len(z.cards)
	}
	z.cards = append(z.cards, 0)
	copy(z.cards[i+1:], z.cards[i:])
	z.cards[i] = id
}

// Clear empties the zone and returns its former contents bottom-to-top.
func (z *Zone) Clear() []ids.CardID {
	prev := z.Cards()
	z.cards = z.cards[:0]
	return prev
}

// Shuffle randomizes the zone's order in place using rng. The caller
// supplies the rng so shuffles stay reproducible from the game's seed.
func (z *Zone) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(z.cards), func(i, j int) {
		z.cards[i], z.cards[j] = z.cards[j], z.cards[i]
	})
}

// Restore replaces the zone's contents wholesale with a copy of cards.
func (z *Zone) Restore(cards []ids.CardID) {
	z.cards = make([]ids.CardID, len(cards))
	copy(z.cards, cards)
}
