package state

import (
	"testing"

	"github.com/cardforge/engine/pkg/card"
)

func TestUndoMoveCard(t *testing.T) {
	gs := newTestState(t)
	cd := addBear(gs, 1)
	gs.zones[1].Library.PushTop(cd.ID)
	gs.DrawCard(1)

	if !gs.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if !gs.zones[1].Library.Contains(cd.ID) {
		t.Fatalf("expected card back in library")
	}
	if gs.zones[1].Hand.Contains(cd.ID) {
		t.Fatalf("expected card removed from hand")
	}
	if gs.Log.Len() != 0 {
		t.Fatalf("expected log empty after undo, got %d", gs.Log.Len())
	}
}

func TestUndoTapForMana(t *testing.T) {
	gs := newTestState(t)
	forest := addForest(gs, 1)
	gs.Battlefield.PushTop(forest.ID)
	gs.TapForMana(1, forest.ID)

	// Undo AddMana, then TapCard.
	gs.Undo()
	gs.Undo()

	if forest.Tapped {
		t.Fatalf("expected forest untapped after undo")
	}
	if gs.Player(1).Pool.Count(card.Green) != 0 {
		t.Fatalf("expected green mana removed after undo")
	}
}

func TestUndoModifyLifeClearsLostFlag(t *testing.T) {
	gs := newTestState(t)
	gs.Player(1).Life = 1
	gs.ModifyLife(1, -1)
	if !gs.Player(1).Lost {
		t.Fatalf("expected lost flag set")
	}
	gs.Undo()
	if gs.Player(1).Life != 1 {
		t.Fatalf("expected life restored to 1, got %d", gs.Player(1).Life)
	}
	if gs.Player(1).Lost {
		t.Fatalf("expected lost flag cleared on undo")
	}
}

func TestUndoCounters(t *testing.T) {
	gs := newTestState(t)
	bear := addBear(gs, 1)
	gs.AddCounters(bear.ID, card.PlusOnePlusOne, 2)
	gs.Undo()
	if got := bear.Counters.Count(card.PlusOnePlusOne); got != 0 {
		t.Fatalf("expected 0 counters after undo, got %d", got)
	}
}

func TestUndoAdvanceStepAndChangeTurn(t *testing.T) {
	gs := newTestState(t)
	gs.AdvanceStep() // Untap -> Upkeep
	gs.Undo()
	if gs.Turn.CurrentStep != Untap {
		t.Fatalf("expected Untap after undo, got %v", gs.Turn.CurrentStep)
	}

	gs.Turn.CurrentStep = Cleanup
	gs.AdvanceStep() // turn rotation
	gs.Undo()
	if gs.Turn.Number != 1 {
		t.Fatalf("expected turn 1 after undo, got %d", gs.Turn.Number)
	}
	if gs.Turn.ActivePlayer != 1 {
		t.Fatalf("expected active player 1 after undo, got %d", gs.Turn.ActivePlayer)
	}
	if gs.Turn.CurrentStep != Cleanup {
		t.Fatalf("expected Cleanup after undo, got %v", gs.Turn.CurrentStep)
	}
}

func TestFullUndoRoundTripRestoresZoneSizes(t *testing.T) {
	gs := newTestState(t)
	forest := addForest(gs, 1)
	bear := addBear(gs, 1)
	gs.zones[1].Library.PushTop(forest.ID)
	gs.zones[1].Library.PushTop(bear.ID)

	gs.DrawCard(1)
	gs.PlayLand(1, forest.ID)
	gs.TapForMana(1, forest.ID)
	gs.ModifyLife(2, -3)

	actions := gs.Log.Len()
	for i := 0; i < actions; i++ {
		if !gs.Undo() {
			t.Fatalf("expected undo %d to succeed", i)
		}
	}
	if gs.zones[1].Library.Len() != 2 {
		t.Fatalf("expected library restored to 2 cards, got %d", gs.zones[1].Library.Len())
	}
	if gs.zones[1].Hand.Len() != 0 || gs.Battlefield.Len() != 0 {
		t.Fatalf("expected hand and battlefield empty after full undo")
	}
	if gs.Player(2).Life != 20 {
		t.Fatalf("expected life restored to 20, got %d", gs.Player(2).Life)
	}
}

func TestRewindToChoicePoint(t *testing.T) {
	gs := newTestState(t)
	gs.ModifyLife(1, -1)
	gs.RecordChoicePoint(1, 1, "pass")
	gs.ModifyLife(2, -1)
	gs.ModifyLife(2, -1)

	count, ok := gs.RewindToChoicePoint()
	if !ok || count != 3 {
		t.Fatalf("expected to pop 3 records, got (%d,%v)", count, ok)
	}
	if gs.Player(1).Life != 19 {
		t.Fatalf("expected player 1's life change to survive the rewind, got %d", gs.Player(1).Life)
	}
	if gs.Player(2).Life != 20 {
		t.Fatalf("expected player 2's life changes undone, got %d", gs.Player(2).Life)
	}
}

func TestRewindToTurnStart(t *testing.T) {
	gs := newTestState(t)
	gs.Turn.CurrentStep = Cleanup
	gs.AdvanceStep() // turn 1 -> 2, ChangeTurn{new_turn=2}
	gs.RecordChoicePoint(2, 1, "a")
	gs.ModifyLife(1, -2)

	turn, cps, count, ok := gs.RewindToTurnStart()
	if !ok {
		t.Fatalf("expected a ChangeTurn record to rewind to")
	}
	if turn != 2 {
		t.Fatalf("expected turn 2, got %d", turn)
	}
	if count != 3 {
		t.Fatalf("expected 3 records popped, got %d", count)
	}
	if len(cps) != 1 || cps[0].ChoiceID != 1 {
		t.Fatalf("expected 1 choice point, got %+v", cps)
	}
	if gs.Turn.Number != 1 {
		t.Fatalf("expected turn number back to 1, got %d", gs.Turn.Number)
	}
	if curTurn, ok := gs.CurrentTurn(); ok {
		t.Fatalf("expected no ChangeTurn left in the log, got %d", curTurn)
	}
}
