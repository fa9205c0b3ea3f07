package state

import "github.com/cardforge/engine/pkg/ids"

// Step is one of the twelve discrete steps a turn passes through, in
// fixed order. Modeled as an int enum with an explicit Successor table,
// since steps form a strict linear order with one wraparound rather
// than a branching state graph.
type Step int

const (
	Untap Step = iota
	Upkeep
	Draw
	Main1
	BeginCombat
	DeclareAttackers
	DeclareBlockers
	CombatDamage
	EndCombat
	Main2
	End
	Cleanup
)

func (s Step) String() string {
	switch s {
	case Untap:
		return "Untap"
	case Upkeep:
		return "Upkeep"
	case Draw:
		return "Draw"
	case Main1:
		return "Main1"
	case BeginCombat:
		return "BeginCombat"
	case DeclareAttackers:
		return "DeclareAttackers"
	case DeclareBlockers:
		return "DeclareBlockers"
	case CombatDamage:
		return "CombatDamage"
	case EndCombat:
		return "EndCombat"
	case Main2:
		return "Main2"
	case End:
		return "End"
	case Cleanup:
		return "Cleanup"
	default:
		return "Unknown"
	}
}

// Successor returns the step that follows s, and false if s is
// Cleanup (the caller performs turn rotation instead of advancing to a
// successor step).
func (s Step) Successor() (Step, bool) {
	if s == Cleanup {
		return Untap, false
	}
	return s + 1, true
}

// IsSorcerySpeed reports whether spells/abilities at sorcery speed and
// land plays are permitted during this step (Main1 and Main2 only).
func (s Step) IsSorcerySpeed() bool {
	return s == Main1 || s == Main2
}

// CanPlayLands reports whether a land may be played during this step.
// Identical to IsSorcerySpeed in this core.
func (s Step) CanPlayLands() bool {
	return s.IsSorcerySpeed()
}

// HasPriorityRound reports whether this step runs a priority round as
// specified in §4.7. Untap and the combat declaration steps do not.
func (s Step) HasPriorityRound() bool {
	switch s {
	case Untap, DeclareAttackers, DeclareBlockers:
		return false
	default:
		return true
	}
}

// Turn holds the turn-structure fields.
type Turn struct {
	Number          int          `json:"number"`
	CurrentStep     Step         `json:"current_step"`
	ActivePlayer    ids.PlayerID `json:"active_player"`
	ActivePlayerIdx int          `json:"active_player_idx"`
	PriorityPlayer  *ids.PlayerID `json:"priority_player"`
}
