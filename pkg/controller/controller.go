// Package controller implements the narrow set of typed decision
// callbacks the game loop consults, a read-only game-state view, and
// the concrete controller implementations (Zero, FixedScript, Random,
// Heuristic stub, Interactive, Replay). View is the read side of game
// state, handed to an otherwise-opaque decision-maker.
package controller

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/decred/slog"
)

// AbilityKind discriminates the typed options choose_spell_ability_to_play offers.
type AbilityKind int

const (
	PlayLand AbilityKind = iota
	CastSpell
	ActivateAbility
)

// Ability is one playable option offered to a controller.
type Ability struct {
	Kind  AbilityKind
	Card  ids.CardID
	Index int // valid when Kind == ActivateAbility
}

// BlockAssignment is one (blocker, attacker) pairing chosen by choose_blockers.
type BlockAssignment struct {
	Blocker  ids.CardID
	Attacker ids.CardID
}

// View is the read-only handle to game state a controller callback
// receives: the borrowed state plus the id of the player being asked
// to decide.
type View interface {
	Viewer() ids.PlayerID
	Hand(player ids.PlayerID) []ids.CardID
	Battlefield() []ids.CardID
	ZoneOf(c ids.CardID) (string, bool)
	Card(c ids.CardID) (*card.Card, bool)
	Life(player ids.PlayerID) int
	Pool(player ids.PlayerID) card.Pool
	CanPlayLandNow(player ids.PlayerID) bool
	Logger() slog.Logger
}

// Controller is the full set of decision callbacks the engine consults.
// Every method receives a View scoped to the player being asked.
type Controller interface {
	ChooseSpellAbilityToPlay(view View, available []Ability) (Ability, bool)
	ChooseTargets(view View, spell ids.CardID, validTargets []ids.CardID) []ids.CardID
	ChooseManaSourcesToPay(view View, cost card.Cost, available []ids.CardID) []ids.CardID
	ChooseAttackers(view View, legalCreatures []ids.CardID) []ids.CardID
	ChooseBlockers(view View, legalBlockers []ids.CardID, attackers []ids.CardID) []BlockAssignment
	ChooseDamageAssignmentOrder(view View, attacker ids.CardID, blockers []ids.CardID) []ids.CardID
	ChooseCardsToDiscard(view View, hand []ids.CardID, n int) []ids.CardID
	OnPriorityPassed(view View)
	OnGameEnd(view View, won bool)

	// GetSnapshotState returns a serializable form of the controller's
	// internal state (script cursor, RNG state), or nil for stateless
	// controllers.
	GetSnapshotState() any
}

// SnapshotRestorer is implemented by controllers whose GetSnapshotState
// value can be fed back in on resume (FixedScript's cursor, Random's
// seed and draw count). Stateless controllers (Zero, Heuristic) don't
// implement it; resume skips restoration for them.
type SnapshotRestorer interface {
	RestoreSnapshotState(v any)
}
