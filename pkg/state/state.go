// Package state implements the GameState aggregate and its high-level
// mutators. It is the one owned struct every other component operates
// through — cards, zones, turn, combat, mana pools, the id counter,
// the logger, and the undo log all live here. GameState carries no
// mutex: it is a single-threaded, single-owner object.
package state

import (
	"math/rand"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/undolog"
	"github.com/cardforge/engine/pkg/zone"
	"github.com/decred/slog"
)

// Ref identifies a zone: either one of a player's four private zones,
// or one of the two shared zones (battlefield, stack).
type Ref struct {
	Kind   ZoneKind
	Player ids.PlayerID
}

// GameState is the aggregate holding every mutable piece of a running
// game.
type GameState struct {
	Cards   *ids.Store[ids.CardID, *card.Card]
	Players []*card.Player

	playerIdx map[ids.PlayerID]int
	zones     map[ids.PlayerID]*PlayerZones

	Battlefield *zone.Zone
	Stack       *zone.Zone

	Turn   Turn
	Combat *Combat

	Seed int64
	RNG  *rand.Rand

	IDs ids.Counter

	Logger slog.Logger
	Log    *undolog.Log
}

// New constructs an empty GameState for the given player ids/names,
// seeded from seed for all shuffles and RNG-driven mutators. Caller is
// responsible for populating each player's library from a deck list
// after construction.
func New(seed int64, logger slog.Logger, startingLife int, players []struct {
	ID   ids.PlayerID
	Name string
}) *GameState {
	gs := &GameState{
		Cards:       ids.NewStore[ids.CardID, *card.Card](),
		playerIdx:   make(map[ids.PlayerID]int, len(players)),
		zones:       make(map[ids.PlayerID]*PlayerZones, len(players)),
		Battlefield: zone.New(),
		Stack:       zone.New(),
		Combat:      NewCombat(),
		Seed:        seed,
		RNG:         rand.New(rand.NewSource(seed)),
		Logger:      logger,
		Log:         undolog.New(),
	}
	for i, p := range players {
		gs.Players = append(gs.Players, card.NewPlayer(p.ID, p.Name, startingLife))
		gs.playerIdx[p.ID] = i
		gs.zones[p.ID] = newPlayerZones()
	}
	if len(players) > 0 {
		gs.Turn = Turn{Number: 1, CurrentStep: Untap, ActivePlayer: players[0].ID, ActivePlayerIdx: 0}
	}
	return gs
}

// Player returns the player with the given id, or nil if unknown.
func (gs *GameState) Player(id ids.PlayerID) *card.Player {
	if i, ok := gs.playerIdx[id]; ok {
		return gs.Players[i]
	}
	return nil
}

// PlayerIndex returns the player's position in Players, and whether id
// is known.
func (gs *GameState) PlayerIndex(id ids.PlayerID) (int, bool) {
	i, ok := gs.playerIdx[id]
	return i, ok
}

// ActivePlayer returns the player whose turn it currently is.
func (gs *GameState) ActivePlayer() *card.Player {
	return gs.Player(gs.Turn.ActivePlayer)
}

// Zones returns the private zones belonging to id, or nil if unknown.
func (gs *GameState) Zones(id ids.PlayerID) *PlayerZones {
	return gs.zones[id]
}

// Card looks up a card instance by id.
func (gs *GameState) Card(id ids.CardID) (*card.Card, bool) {
	return gs.Cards.Get(id)
}

// zoneFor resolves a Ref to its concrete *zone.Zone.
func (gs *GameState) zoneFor(ref Ref) *zone.Zone {
	switch ref.Kind {
	case ZoneBattlefield:
		return gs.Battlefield
	case ZoneStack:
		return gs.Stack
	default:
		pz := gs.zones[ref.Player]
		if pz == nil {
			return nil
		}
		return pz.byKind(ref.Kind)
	}
}

// refRecord converts a Ref to the undolog.ZoneRef it appends to the
// log.
func refRecord(ref Ref) undolog.ZoneRef {
	return undolog.ZoneRef{Kind: string(ref.Kind), Player: ref.Player, IsShared: ref.Kind.isShared()}
}

// refFromRecord converts an undolog.ZoneRef back to a Ref.
func refFromRecord(zr undolog.ZoneRef) Ref {
	return Ref{Kind: ZoneKind(zr.Kind), Player: zr.Player}
}

// FindZone returns the Ref of the zone currently containing card, and
// whether it was found. Searches shared zones then every player's
// private zones.
func (gs *GameState) FindZone(c ids.CardID) (Ref, bool) {
	if gs.Battlefield.Contains(c) {
		return Ref{Kind: ZoneBattlefield}, true
	}
	if gs.Stack.Contains(c) {
		return Ref{Kind: ZoneStack}, true
	}
	for _, p := range gs.Players {
		pz := gs.zones[p.ID]
		for _, kind := range []ZoneKind{ZoneLibrary, ZoneHand, ZoneGraveyard, ZoneExile} {
			if pz.byKind(kind).Contains(c) {
				return Ref{Kind: kind, Player: p.ID}, true
			}
		}
	}
	return Ref{}, false
}
