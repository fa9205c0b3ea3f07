package engine

import (
	"testing"

	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
)

// placeBear puts an un-summoning-sick 2/2 bear under owner's control
// directly on the battlefield.
func placeBear(e *Engine, owner ids.PlayerID) ids.CardID {
	gs := e.GS
	bear := newBear(gs, owner)
	gs.Battlefield.PushTop(bear)
	if cd, ok := gs.Card(bear); ok {
		cd.HasEnteredBattlefield = true
		cd.TurnEnteredBattlefield = 0
	}
	return bear
}

func TestDeclareAttackersTapsChosenAttackers(t *testing.T) {
	gs := newTestGame(t, 1)
	e := New(gs, zeroControllers(), DefaultMaxTurns, nil)
	bear := placeBear(e, 1)

	e.runDeclareAttackers()

	if !gs.Combat.Active {
		t.Fatalf("expected combat to be active after declaring an attacker")
	}
	if !gs.Combat.IsAttacking(bear) {
		t.Fatalf("expected bear to be attacking")
	}
	cd, _ := gs.Card(bear)
	if !cd.Tapped {
		t.Fatalf("expected attacking bear to be tapped")
	}
}

func TestUnblockedCombatDamageHitsDefendingPlayer(t *testing.T) {
	gs := newTestGame(t, 1)
	e := New(gs, zeroControllers(), DefaultMaxTurns, nil)
	placeBear(e, 1)

	e.runDeclareAttackers()
	e.runDeclareBlockers() // Zero never blocks
	beforeLife := gs.Player(2).Life
	e.runCombatDamage()

	if got := gs.Player(2).Life; got != beforeLife-2 {
		t.Fatalf("expected defender to lose 2 life, got %d -> %d", beforeLife, got)
	}
}

func TestBlockedCombatDamageTradesBothWays(t *testing.T) {
	gs := newTestGame(t, 1)
	e := New(gs, zeroControllers(), DefaultMaxTurns, nil)
	attacker := placeBear(e, 1)
	blocker := placeBear(e, 2)

	gs.Turn.ActivePlayer = 1
	gs.Combat.DeclareAttacker(attacker, 2)
	gs.Combat.Active = true
	gs.Combat.DeclareBlock(blocker, attacker)

	e.runCombatDamage()

	zone, ok := gs.FindZone(attacker)
	if !ok || zone.Kind != state.ZoneGraveyard {
		t.Fatalf("expected mutually lethal 2/2s to trade; attacker zone=%+v found=%v", zone, ok)
	}
	zone, ok = gs.FindZone(blocker)
	if !ok || zone.Kind != state.ZoneGraveyard {
		t.Fatalf("expected blocker to die too; zone=%+v found=%v", zone, ok)
	}
}
