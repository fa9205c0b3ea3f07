package card

// Color is one of the five pips plus the colorless pseudo-color.
type Color int

const (
	White Color = iota
	Blue
	Black
	Red
	Green
	Colorless
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Blue:
		return "U"
	case Black:
		return "B"
	case Red:
		return "R"
	case Green:
		return "G"
	case Colorless:
		return "C"
	default:
		return "?"
	}
}

// BasicLandColor maps a basic land subtype to the color it taps for.
func BasicLandColor(subtype string) (Color, bool) {
	switch subtype {
	case "Forest":
		return Green, true
	case "Island":
		return Blue, true
	case "Mountain":
		return Red, true
	case "Plains":
		return White, true
	case "Swamp":
		return Black, true
	case "Wastes":
		return Colorless, true
	default:
		return 0, false
	}
}

// ColorSet is a small set of colors, used for a card's color identity.
type ColorSet map[Color]bool

func NewColorSet(colors ...Color) ColorSet {
	s := make(ColorSet, len(colors))
	for _, c := range colors {
		s[c] = true
	}
	return s
}

func (s ColorSet) Has(c Color) bool { return s[c] }

// Cost is a mana cost: seven non-negative counts. Total (converted mana
// cost) is the sum of all seven fields.
type Cost struct {
	Generic   int
	Colorless int
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
}

// Total returns the converted mana cost.
func (c Cost) Total() int {
	return c.Generic + c.Colorless + c.White + c.Blue + c.Black + c.Red + c.Green
}

// ColorCount returns the cost's requirement for one of the five pip
// colors (Colorless and Generic are handled separately).
func (c Cost) ColorCount(color Color) int {
	switch color {
	case White:
		return c.White
	case Blue:
		return c.Blue
	case Black:
		return c.Black
	case Red:
		return c.Red
	case Green:
		return c.Green
	default:
		return 0
	}
}

// Pool is a player's accumulated mana: six non-negative counts (five
// colors plus colorless). Emptied at end of step/cleanup.
type Pool struct {
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
}

// Add increments the pool's count for color by one, returning the new
// count (used by undo to compute saturating decrements symmetrically).
func (p *Pool) Add(c Color) int {
	switch c {
	case White:
		p.White++
		return p.White
	case Blue:
		p.Blue++
		return p.Blue
	case Black:
		p.Black++
		return p.Black
	case Red:
		p.Red++
		return p.Red
	case Green:
		p.Green++
		return p.Green
	case Colorless:
		p.Colorless++
		return p.Colorless
	}
	return 0
}

// Remove decrements the pool's count for color by one, saturating at
// zero rather than going negative.
func (p *Pool) Remove(c Color) {
	switch c {
	case White:
		p.White = satDec(p.White)
	case Blue:
		p.Blue = satDec(p.Blue)
	case Black:
		p.Black = satDec(p.Black)
	case Red:
		p.Red = satDec(p.Red)
	case Green:
		p.Green = satDec(p.Green)
	case Colorless:
		p.Colorless = satDec(p.Colorless)
	}
}

func satDec(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

// Count returns the current amount of a single color in the pool.
func (p Pool) Count(c Color) int {
	switch c {
	case White:
		return p.White
	case Blue:
		return p.Blue
	case Black:
		return p.Black
	case Red:
		return p.Red
	case Green:
		return p.Green
	case Colorless:
		return p.Colorless
	}
	return 0
}

// Total returns the sum of all six counts.
func (p Pool) Total() int {
	return p.White + p.Blue + p.Black + p.Red + p.Green + p.Colorless
}

// Snapshot returns the six values in the fixed order EmptyManaPool
// records them in (white, blue, black, red, green, colorless), for the
// undo log.
func (p Pool) Snapshot() [6]int {
	return [6]int{p.White, p.Blue, p.Black, p.Red, p.Green, p.Colorless}
}

// Restore sets the pool's six counts from an EmptyManaPool record's
// saved pre-values, in the same order Snapshot produces.
func (p *Pool) Restore(v [6]int) {
	p.White, p.Blue, p.Black, p.Red, p.Green, p.Colorless = v[0], v[1], v[2], v[3], v[4], v[5]
}

// Empty zeroes every count and returns the pre-empty snapshot.
func (p *Pool) Empty() [6]int {
	prev := p.Snapshot()
	*p = Pool{}
	return prev
}
