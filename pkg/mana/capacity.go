package mana

import "github.com/cardforge/engine/pkg/card"

// Capacity is the cached six-count vector of maximum untapped,
// non-summoning-sick mana the *simple* (Fixed/Colorless) sources on the
// battlefield can currently produce. It is recomputed whenever
// permanents enter/leave, tap/untap, or a turn begins — O(n) over the
// sources passed to Update.
type Capacity struct {
	White, Blue, Black, Red, Green, Colorless int
}

// Update recomputes capacity from the current source list, counting
// only Fixed and ColorlessKind sources that are currently available.
func (c *Capacity) Update(sources []Source) {
	*c = Capacity{}
	for _, s := range sources {
		if !s.Available() {
			continue
		}
		switch s.Kind {
		case Fixed:
			c.add(s.FixedColor, 1)
		case ColorlessKind:
			c.Colorless++
		}
	}
}

func (c *Capacity) add(color card.Color, n int) {
	switch color {
	case card.White:
		c.White += n
	case card.Blue:
		c.Blue += n
	case card.Black:
		c.Black += n
	case card.Red:
		c.Red += n
	case card.Green:
		c.Green += n
	case card.Colorless:
		c.Colorless += n
	}
}

// Count returns the cached capacity for one color.
func (c Capacity) Count(color card.Color) int {
	switch color {
	case card.White:
		return c.White
	case card.Blue:
		return c.Blue
	case card.Black:
		return c.Black
	case card.Red:
		return c.Red
	case card.Green:
		return c.Green
	case card.Colorless:
		return c.Colorless
	default:
		return 0
	}
}

// Total returns the sum across all six colors.
func (c Capacity) Total() int {
	return c.White + c.Blue + c.Black + c.Red + c.Green + c.Colorless
}
