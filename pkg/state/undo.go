package state

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/undolog"
)

// Undo pops the most recent record and inverts it. Returns true if a
// record was popped, false if the log was empty.
func (gs *GameState) Undo() bool {
	r, ok := gs.Log.Pop()
	if !ok {
		return false
	}
	gs.invert(r)
	return true
}

func (gs *GameState) invert(r undolog.Record) {
	switch r.Kind {
	case undolog.KindMoveCard:
		to := gs.zoneFor(refFromRecord(r.To))
		from := gs.zoneFor(refFromRecord(r.From))
		if to == nil || from == nil {
			return
		}
		if !to.Remove(r.Card) {
			gs.Logger.Warnf("undo: MoveCard inversion inconsistency: card %d not present in destination zone", r.Card)
			return
		}
		from.PushTop(r.Card)

	case undolog.KindTapCard:
		if cd, ok := gs.Cards.Get(r.Card); ok {
			cd.Tapped = !r.NewTapped
		}

	case undolog.KindModifyLife:
		if p := gs.Player(r.Player); p != nil {
			p.Life -= r.LifeDelta
			if p.Life > 0 {
				p.Lost = false
			}
		}

	case undolog.KindAddMana:
		if p := gs.Player(r.Player); p != nil {
			p.Pool.Remove(card.Color(r.Color))
		}

	case undolog.KindEmptyManaPool:
		if p := gs.Player(r.Player); p != nil {
			p.Pool.Restore(r.PrevPool)
		}

	case undolog.KindAddCounter:
		if cd, ok := gs.Cards.Get(r.Card); ok {
			cd.Counters.Remove(card.CounterKind(r.CounterKind), r.Amount)
		}

	case undolog.KindRemoveCounter:
		if cd, ok := gs.Cards.Get(r.Card); ok {
			cd.Counters[card.CounterKind(r.CounterKind)] += r.Amount
		}

	case undolog.KindAdvanceStep:
		gs.Turn.CurrentStep = Step(r.FromStep)

	case undolog.KindChangeTurn:
		gs.Turn.ActivePlayer = r.FromPlayer
		if idx, ok := gs.playerIdx[r.FromPlayer]; ok {
			gs.Turn.ActivePlayerIdx = idx
		}
		gs.Turn.Number = r.NewTurnNumber - 1
		gs.Turn.CurrentStep = Cleanup

	case undolog.KindPumpCreature:
		if cd, ok := gs.Cards.Get(r.Card); ok {
			cd.PowerBonus -= r.DeltaPower
			cd.ToughnessBonus -= r.DeltaToughness
		}

	case undolog.KindChoicePoint:
		// Markers only; no state mutation to invert.
	}
}

// RewindToChoicePoint pops and inverts records up to and including the
// most recent choice-point mark. Returns the number of records popped,
// and false if there was no choice point to rewind to.
func (gs *GameState) RewindToChoicePoint() (int, bool) {
	count, ok := gs.Log.RewindToChoicePoint()
	if !ok {
		return 0, false
	}
	for i := 0; i < count; i++ {
		gs.Undo()
	}
	return count, true
}

// RewindToTurnStart pops and inverts records back through the most
// recent ChangeTurn record. Returns the turn number rewound to, the
// intervening ChoicePoint records in forward chronological order, the
// count of records popped, and false if there was no ChangeTurn in the
// log.
func (gs *GameState) RewindToTurnStart() (turnNumber int, choicePoints []undolog.Record, count int, ok bool) {
	count, turnNumber, choicePoints, ok = gs.Log.RewindToTurnStart()
	if !ok {
		return 0, nil, 0, false
	}
	for i := 0; i < count; i++ {
		gs.Undo()
	}
	return turnNumber, choicePoints, count, true
}

// CurrentTurn returns the turn number of the most recent ChangeTurn
// record in the log, or ok=false if none has been recorded.
func (gs *GameState) CurrentTurn() (int, bool) {
	return gs.Log.CurrentTurn()
}
