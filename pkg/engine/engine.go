// Package engine implements the turn/step/priority driver that
// consults controllers, applies their decisions through pkg/state's
// mutators, and detects the game's end. The twelve-step turn structure
// is driven with pkg/statemachine's Rob-Pike state functions, a fixed,
// mostly-linear, one-state-per-turn-step chain.
package engine

import (
	"encoding/json"

	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/engineerr"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/mana"
	"github.com/cardforge/engine/pkg/state"
	"github.com/cardforge/engine/pkg/stopcond"
)

// EndReason discriminates why a game ended.
type EndReason int

const (
	PlayerDeath EndReason = iota
	Decking
	TurnLimit
	Draw
	Manual
)

func (r EndReason) String() string {
	switch r {
	case PlayerDeath:
		return "PlayerDeath"
	case Decking:
		return "Decking"
	case TurnLimit:
		return "TurnLimit"
	case Draw:
		return "Draw"
	case Manual:
		return "Manual"
	default:
		return "Unknown"
	}
}

// GameResult is the engine's final or paused outcome.
type GameResult struct {
	Winner      *ids.PlayerID
	TurnsPlayed int
	EndReason   EndReason
}

// DefaultMaxTurns is the default turn-limit bound.
const DefaultMaxTurns = 1000

// priorityActionCap is the per-priority-round livelock guard.
const priorityActionCap = 1000

// Engine drives one game to completion (or to a stop condition).
type Engine struct {
	GS          *state.GameState
	Controllers map[ids.PlayerID]controller.Controller
	MaxTurns    int
	StopCond    *stopcond.Condition

	choiceCounts stopcond.Counts
	choiceSeq    uint64
	stopped      bool
	err          error
}

// GameState returns the engine's underlying game state, for
// pkg/snapshot's Runner interface.
func (e *Engine) GameState() *state.GameState { return e.GS }

// ControllerMap returns the engine's per-player controllers, for
// pkg/snapshot's Runner interface. Named to avoid colliding with the
// Controllers field.
func (e *Engine) ControllerMap() map[ids.PlayerID]controller.Controller { return e.Controllers }

// fail records a fatal error and stops the engine's turn loop.
func (e *Engine) fail(err error) {
	e.err = err
	e.stopped = true
}

// New builds an engine around an already-constructed game state and one
// controller per player. maxTurns <= 0 uses DefaultMaxTurns.
func New(gs *state.GameState, controllers map[ids.PlayerID]controller.Controller, maxTurns int, stopCond *stopcond.Condition) *Engine {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Engine{GS: gs, Controllers: controllers, MaxTurns: maxTurns, StopCond: stopCond}
}

// Run drives the game to completion: a win condition, the turn limit,
// or a stop condition firing. Returns the final GameResult, or an error
// if a controller or internal invariant violation made the game
// un-continuable.
func (e *Engine) Run() (*GameResult, error) {
	if result, ok := e.checkWinCondition(); ok {
		return result, nil
	}

	sm := newTurnMachine(e, e.GS.Turn.CurrentStep)
	for {
		sm.Dispatch(nil)
		if e.err != nil {
			return nil, e.err
		}
		if e.stopped {
			return nil, nil
		}
		if result, ok := e.checkWinCondition(); ok {
			return result, nil
		}
		if sm.Current() == nil {
			return nil, engineerr.New(engineerr.InvalidAction, "turn machine terminated unexpectedly")
		}
	}
}

func (e *Engine) checkWinCondition() (*GameResult, bool) {
	for _, p := range e.GS.Players {
		if p.Life <= 0 {
			winner := e.otherPlayer(p.ID)
			return &GameResult{Winner: &winner, TurnsPlayed: e.GS.Turn.Number, EndReason: PlayerDeath}, true
		}
		if p.Lost {
			winner := e.otherPlayer(p.ID)
			return &GameResult{Winner: &winner, TurnsPlayed: e.GS.Turn.Number, EndReason: Decking}, true
		}
	}
	if e.GS.Turn.Number >= e.MaxTurns {
		return &GameResult{TurnsPlayed: e.GS.Turn.Number, EndReason: TurnLimit}, true
	}
	return nil, false
}

func (e *Engine) otherPlayer(loser ids.PlayerID) ids.PlayerID {
	for _, p := range e.GS.Players {
		if p.ID != loser {
			return p.ID
		}
	}
	return loser
}

// recordChoice logs a choice point, bumps the stop-condition counters,
// and, if a stop condition is configured and now fires, marks the
// engine stopped so Run exits cleanly after this step. The choice is
// stored as JSON so a snapshot's intra_turn_choices can be decoded
// straight back into a controller.RecordedChoice for Replay, rather
// than as a diagnostic-only free-text label.
func (e *Engine) recordChoice(player ids.PlayerID, choice controller.RecordedChoice) {
	e.choiceSeq++
	data, err := json.Marshal(choice)
	if err != nil {
		e.fail(err)
		return
	}
	e.GS.RecordChoicePoint(player, e.choiceSeq, string(data))

	e.choiceCounts.Total++
	if idx, ok := e.GS.PlayerIndex(player); ok {
		if idx == 0 {
			e.choiceCounts.P1++
		} else {
			e.choiceCounts.P2++
		}
	}
	if e.StopCond != nil && e.StopCond.ShouldStop(e.choiceCounts) {
		e.stopped = true
	}
}

// manaSources builds the mana.Source list for every land player
// controls on the battlefield (tapped ones included, with Tapped set so
// they count as unavailable), classifying every basic land as Fixed
// and anything else encountered as AnyColor (the core does not model
// dual/conditional lands beyond this generalization point; a richer
// card catalog would widen Source construction here).
func (e *Engine) manaSources(player ids.PlayerID) []mana.Source {
	var sources []mana.Source
	for _, id := range e.GS.Battlefield.Cards() {
		cd, ok := e.GS.Card(id)
		if !ok || cd.Controller != player || !cd.IsLand() {
			continue
		}
		src := mana.Source{CardID: uint32(id), Tapped: cd.Tapped}
		if color, isBasic := basicLandColorOf(cd); isBasic {
			src.Kind = mana.Fixed
			src.FixedColor = color
		} else {
			src.Kind = mana.AnyColor
		}
		sources = append(sources, src)
	}
	return sources
}
