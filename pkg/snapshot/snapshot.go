// Package snapshot implements pausing a game at a turn boundary into a
// serializable record, and resuming it by wrapping the live
// controllers in replay controllers seeded from the intra-turn choices
// made since that boundary. The whole aggregate (plus the replay
// queue) is marshaled as one record; storage is left to the caller
// (see pkg/snapshotstore for the optional sqlite-backed variant).
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/engineerr"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
	"github.com/decred/slog"
)

// ChoiceRecord is one recorded choice point in forward chronological
// order, tagged with the player who made it so resume can split it
// into per-player replay queues.
type ChoiceRecord struct {
	Player ids.PlayerID              `json:"player"`
	Choice controller.RecordedChoice `json:"choice"`
}

// Snapshot is the top-level serializable record of a paused game.
type Snapshot struct {
	GameState         *state.Export     `json:"game_state"`
	TurnNumber        int               `json:"turn_number"`
	IntraTurnChoices  []ChoiceRecord    `json:"intra_turn_choices"`
	P1ControllerState any               `json:"p1_controller_state,omitempty"`
	P2ControllerState any               `json:"p2_controller_state,omitempty"`
}

// Runner is the subset of *engine.Engine that Take needs. Declared
// here rather than imported to avoid a snapshot<->engine import cycle
// (the CLI driver is the one place that imports both).
type Runner interface {
	GameState() *state.GameState
	ControllerMap() map[ids.PlayerID]controller.Controller
}

// Take snapshots r's game at the most recent turn boundary: it rewinds
// the live game state back through the last ChangeTurn record,
// exports the rewound state, and carries forward the choices made
// since that boundary so resume can replay them. Takes the state
// in-place; callers that still need the live game running past this
// point should snapshot a throwaway clone instead.
func Take(r Runner) (*Snapshot, error) {
	gs := r.GameState()

	turnNumber, popped, _, ok := gs.RewindToTurnStart()
	if !ok {
		// No turn rotation has happened yet (still in turn 1): the
		// current state already sits at its own turn start.
		turnNumber = gs.Turn.Number
		popped = nil
	}

	choices := make([]ChoiceRecord, 0, len(popped))
	for _, rec := range popped {
		var rc controller.RecordedChoice
		if err := json.Unmarshal([]byte(rec.RecordedChoice), &rc); err != nil {
			return nil, engineerr.Wrap(engineerr.Serialization, err, "snapshot: decoding recorded choice")
		}
		choices = append(choices, ChoiceRecord{Player: rec.Player, Choice: rc})
	}

	snap := &Snapshot{
		GameState:        gs.Export(),
		TurnNumber:       turnNumber,
		IntraTurnChoices: choices,
	}

	ctrls := r.ControllerMap()
	if len(gs.Players) > 0 {
		snap.P1ControllerState = ctrls[gs.Players[0].ID].GetSnapshotState()
	}
	if len(gs.Players) > 1 {
		snap.P2ControllerState = ctrls[gs.Players[1].ID].GetSnapshotState()
	}
	return snap, nil
}

// Resumed is the deserialized, ready-to-run result of Resume: a fresh
// game state at the snapshot's turn boundary, plus one controller per
// player (real controllers wrapped in a Replay seeded from that
// player's share of the intra-turn choices).
type Resumed struct {
	GameState   *state.GameState
	Controllers map[ids.PlayerID]controller.Controller
}

// Resume deserializes snap into a fresh GameState and wraps real (the
// caller's actual per-player controllers, e.g. freshly constructed
// Random/Heuristic/Interactive instances) in Replay controllers seeded
// from the stored choices, per player. Running the resulting game
// state and controllers through the normal engine loop reproduces the
// original run's intra-turn decisions until each player's replay queue
// is exhausted, then falls through to the real controller for the
// rest of the game.
func Resume(snap *Snapshot, logger slog.Logger, real map[ids.PlayerID]controller.Controller) (*Resumed, error) {
	if snap.GameState == nil {
		return nil, engineerr.New(engineerr.Serialization, "resume: snapshot has no game_state")
	}
	gs := state.FromExport(snap.GameState, logger)

	perPlayer := make(map[ids.PlayerID][]controller.RecordedChoice)
	for _, cr := range snap.IntraTurnChoices {
		perPlayer[cr.Player] = append(perPlayer[cr.Player], cr.Choice)
	}

	controllers := make(map[ids.PlayerID]controller.Controller, len(real))
	for i, p := range gs.Players {
		inner, ok := real[p.ID]
		if !ok {
			return nil, fmt.Errorf("resume: no controller supplied for player %d", p.ID)
		}
		if st := controllerStateFor(snap, i); st != nil {
			if restorer, ok := inner.(controller.SnapshotRestorer); ok {
				restorer.RestoreSnapshotState(st)
			}
		}
		controllers[p.ID] = controller.NewReplay(inner, perPlayer[p.ID])
	}

	return &Resumed{GameState: gs, Controllers: controllers}, nil
}

func controllerStateFor(snap *Snapshot, playerIdx int) any {
	switch playerIdx {
	case 0:
		return snap.P1ControllerState
	case 1:
		return snap.P2ControllerState
	default:
		return nil
	}
}
