package card

import (
	"testing"

	"github.com/cardforge/engine/pkg/ids"
)

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer(ids.PlayerID(1), "Alice", 20)
	if p.Life != 20 {
		t.Fatalf("expected life 20, got %d", p.Life)
	}
	if p.MaxLandsPerTurn != 1 || p.MaxHandSize != 7 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if !p.CanPlayLand() {
		t.Fatalf("expected fresh player to be able to play a land")
	}
}

func TestPlayerLandBudget(t *testing.T) {
	p := NewPlayer(ids.PlayerID(1), "Alice", 20)
	p.LandsPlayedThisTurn = 1
	if p.CanPlayLand() {
		t.Fatalf("expected land budget exhausted")
	}
	p.ResetTurnCounters()
	if !p.CanPlayLand() {
		t.Fatalf("expected land budget reset on new turn")
	}
}
