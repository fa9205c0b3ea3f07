package engine

import (
	"fmt"

	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
	"github.com/cardforge/engine/pkg/statemachine"
)

// newTurnMachine builds the state machine that walks the twelve
// per-turn steps, starting at startStep. Each returned StateFn
// performs that step's work, advances the game's step pointer, and
// returns the StateFn for the step that follows — including across the
// Cleanup→Untap turn-rotation boundary, since GameState.AdvanceStep
// already performs rotation there.
func newTurnMachine(e *Engine, startStep state.Step) *statemachine.StateMachine[Engine] {
	return statemachine.NewStateMachine(e, stepFn(startStep))
}

func stepFn(step state.Step) statemachine.StateFn[Engine] {
	return func(e *Engine, _ func(string, statemachine.StateEvent)) statemachine.StateFn[Engine] {
		runStep(e, step)
		if e.err != nil || e.stopped {
			return nil
		}
		e.GS.AdvanceStep()
		return stepFn(e.GS.Turn.CurrentStep)
	}
}

func runStep(e *Engine, step state.Step) {
	switch step {
	case state.Untap:
		e.GS.UntapAll(e.GS.Turn.ActivePlayer)
		if p := e.GS.Player(e.GS.Turn.ActivePlayer); p != nil {
			p.ResetTurnCounters()
		}
	case state.Upkeep:
		e.runPriorityRound()
	case state.Draw:
		// The player on the very first turn of the game does not draw.
		if e.GS.Turn.Number > 1 {
			if _, ok := e.GS.DrawCard(e.GS.Turn.ActivePlayer); !ok {
				if p := e.GS.Player(e.GS.Turn.ActivePlayer); p != nil {
					p.Lost = true
				}
			}
		}
		e.runPriorityRound()
	case state.Main1:
		e.runPriorityRound()
	case state.BeginCombat:
		e.runPriorityRound()
	case state.DeclareAttackers:
		e.runDeclareAttackers()
	case state.DeclareBlockers:
		e.runDeclareBlockers()
	case state.CombatDamage:
		e.runCombatDamage()
	case state.EndCombat:
		e.runPriorityRound()
		e.GS.Combat.Clear()
	case state.Main2:
		e.runPriorityRound()
	case state.End:
		e.runPriorityRound()
	case state.Cleanup:
		e.runCleanup()
	default:
		e.fail(fmt.Errorf("run_step: unknown step %v", step))
	}
}

// runCleanup runs the Cleanup step: non-active then active player
// discard down to hand size, mana pools empty, and temporary pump
// effects clear. Turn rotation itself happens in GameState.AdvanceStep
// immediately after this returns.
func (e *Engine) runCleanup() {
	active := e.GS.Turn.ActivePlayer
	nonActive := e.otherPlayer(active)

	for _, pid := range []ids.PlayerID{nonActive, active} {
		e.discardDown(pid)
		if e.err != nil {
			return
		}
	}

	for _, p := range e.GS.Players {
		e.GS.EmptyManaPool(p.ID)
	}
	e.GS.CleanupTemporaryEffects()
}

// discardDown has player discard hand cards down to their maximum
// hand size, consulting their controller for which to discard.
func (e *Engine) discardDown(player ids.PlayerID) {
	p := e.GS.Player(player)
	if p == nil {
		return
	}
	pz := e.GS.Zones(player)
	hand := pz.Hand.Cards()
	over := len(hand) - p.MaxHandSize
	if over <= 0 {
		return
	}

	view := &gameView{gs: e.GS, viewer: player}
	ctrl := e.Controllers[player]
	discard := ctrl.ChooseCardsToDiscard(view, hand, over)
	e.recordChoice(player, controller.RecordedChoice{Kind: controller.ChoiceDiscard, CardIDs: discard})

	for _, c := range discard {
		if err := e.GS.MoveCard(c, state.Ref{Kind: state.ZoneHand, Player: player}, state.Ref{Kind: state.ZoneGraveyard, Player: player}); err != nil {
			e.fail(err)
			return
		}
	}
}
