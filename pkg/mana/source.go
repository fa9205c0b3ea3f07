// Package mana implements mana source classification, the capacity
// cache, and the simple/greedy payment resolvers. Payment resolution
// runs cheap bounds checks before the more expensive greedy tap-order
// search, so the common case never pays for the search.
package mana

import "github.com/cardforge/engine/pkg/card"

// ProductionKind classifies what colors a mana source can produce.
type ProductionKind int

const (
	// Fixed produces exactly one color (e.g. a basic land).
	Fixed ProductionKind = iota
	// Choice produces any one of a fixed small set of colors (a dual land).
	Choice
	// AnyColor produces any of the five colors.
	AnyColor
	// ColorlessKind produces colorless mana only.
	ColorlessKind
)

// Source describes one potential mana producer on the battlefield.
type Source struct {
	CardID              uint32
	Kind                ProductionKind
	FixedColor          card.Color   // valid when Kind == Fixed
	ChoiceColors        []card.Color // valid when Kind == Choice
	ActivationCost      card.Cost    // additional cost to activate, beyond tapping; usually zero
	Tapped              bool
	HasSummoningSickness bool
}

// Available reports whether the source can currently be tapped for
// mana (untapped and not summoning sick).
func (s Source) Available() bool {
	return !s.Tapped && !s.HasSummoningSickness
}

// score is the greedy resolver's tie-break: lower is used first. Fixed
// sources matching the requested color are free (0); a Choice source
// costs its breadth (k colors); AnyColor sources are deprioritized
// behind every more specific source.
func (s Source) score(forColor card.Color) int {
	switch s.Kind {
	case Fixed:
		if s.FixedColor == forColor {
			return 0
		}
		return 1 << 20 // Fixed sources never substitute for a different color.
	case Choice:
		return len(s.ChoiceColors)
	case AnyColor:
		return 100
	default:
		return 1 << 20
	}
}

func (s Source) canProduce(c card.Color) bool {
	switch s.Kind {
	case Fixed:
		return s.FixedColor == c
	case Choice:
		for _, cc := range s.ChoiceColors {
			if cc == c {
				return true
			}
		}
		return false
	case AnyColor:
		return c != card.Colorless
	case ColorlessKind:
		return c == card.Colorless
	default:
		return false
	}
}
