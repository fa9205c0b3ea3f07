package engine

import (
	"testing"

	"github.com/cardforge/engine/pkg/state"
)

// TestCastSpellResolvesCreatureToBattlefield casts a Grizzly Bears
// paid for with a Forest and a Mountain already on the battlefield, and
// checks it lands on the battlefield with summoning sickness recorded.
func TestCastSpellResolvesCreatureToBattlefield(t *testing.T) {
	gs := newTestGame(t, 1)
	e := New(gs, zeroControllers(), DefaultMaxTurns, nil)

	for i := 0; i < 2; i++ {
		land := newMountain(gs, 1)
		gs.Battlefield.PushTop(land)
		if cd, ok := gs.Card(land); ok {
			cd.Controller = 1
			if i == 0 {
				cd.Name, cd.Subtypes = "Forest", []string{"Forest"}
			}
		}
	}
	bear := newBear(gs, 1)
	gs.Zones(1).Hand.PushTop(bear)

	if err := e.castSpell(1, bear); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zone, ok := gs.FindZone(bear)
	if !ok || zone.Kind != state.ZoneBattlefield {
		t.Fatalf("expected bear on battlefield, got zone=%+v found=%v", zone, ok)
	}
	cd, _ := gs.Card(bear)
	if !cd.HasEnteredBattlefield || cd.TurnEnteredBattlefield != gs.Turn.Number {
		t.Fatalf("expected summoning-sickness bookkeeping to be set")
	}
}

// TestCastSpellFizzlesWhenManaInsufficient exercises the "chosen
// sources don't cover the cost" path: the spell still leaves the
// stack, landing in the graveyard instead of erroring the whole run.
func TestCastSpellFizzlesWhenManaInsufficient(t *testing.T) {
	gs := newTestGame(t, 1)
	e := New(gs, zeroControllers(), DefaultMaxTurns, nil)

	bear := newBear(gs, 1) // costs {1}{G}; player has no lands at all
	gs.Zones(1).Hand.PushTop(bear)

	if err := e.castSpell(1, bear); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zone, ok := gs.FindZone(bear)
	if !ok || zone.Kind != state.ZoneGraveyard {
		t.Fatalf("expected fizzled spell in graveyard, got zone=%+v found=%v", zone, ok)
	}
}

// TestLightningBoltDealsDamageToFace exercises applyEffect's
// no-creature-target face-damage fallback directly.
func TestLightningBoltDealsDamageToFace(t *testing.T) {
	gs := newTestGame(t, 1)
	e := New(gs, zeroControllers(), DefaultMaxTurns, nil)

	land := newMountain(gs, 1)
	gs.Battlefield.PushTop(land)
	bolt := newLightningBolt(gs, 1)
	gs.Zones(1).Hand.PushTop(bolt)

	before := gs.Player(2).Life
	if err := e.castSpell(1, bolt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gs.Player(2).Life; got != before-3 {
		t.Fatalf("expected opponent to take 3 damage, got %d -> %d", before, got)
	}
	zone, ok := gs.FindZone(bolt)
	if !ok || zone.Kind != state.ZoneGraveyard {
		t.Fatalf("expected spent bolt in graveyard, got zone=%+v found=%v", zone, ok)
	}
}
