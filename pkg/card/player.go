package card

import "github.com/cardforge/engine/pkg/ids"

// Player is one participant's persistent state: life total, mana pool,
// and the per-turn counters that reset each turn (lands played this
// turn, loss flag).
type Player struct {
	ID   ids.PlayerID `json:"id"`
	Name string       `json:"name"`

	Life int  `json:"life"`
	Pool Pool `json:"pool"`

	Lost bool `json:"lost"`

	LandsPlayedThisTurn int `json:"lands_played_this_turn"`
	MaxLandsPerTurn     int `json:"max_lands_per_turn"`

	MaxHandSize int `json:"max_hand_size"`
}

// NewPlayer constructs a player with the default starting life total,
// one land per turn, and a seven-card maximum hand size.
func NewPlayer(id ids.PlayerID, name string, startingLife int) *Player {
	return &Player{
		ID:              id,
		Name:            name,
		Life:            startingLife,
		MaxLandsPerTurn: 1,
		MaxHandSize:     7,
	}
}

// CanPlayLand reports whether the player has lands-per-turn budget
// remaining.
func (p *Player) CanPlayLand() bool {
	return p.LandsPlayedThisTurn < p.MaxLandsPerTurn
}

// ResetTurnCounters clears the per-turn land count, called at the
// start of each of the player's turns.
func (p *Player) ResetTurnCounters() {
	p.LandsPlayedThisTurn = 0
}
