package engine

import (
	"testing"

	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/stopcond"
)

// TestSoloMountainBoltDeterministicKill runs both players on 30
// Mountain/30 Lightning Bolt decks with Zero controllers from seed 42.
// The game must end in a PlayerDeath within 300 turns.
func TestSoloMountainBoltDeterministicKill(t *testing.T) {
	gs := newTestGame(t, 42)
	buildBoltDeck(gs, 1, 30, 30)
	buildBoltDeck(gs, 2, 30, 30)
	drawOpeningHand(gs, 1, 7)
	drawOpeningHand(gs, 2, 7)

	e := New(gs, zeroControllers(), 300, nil)
	result, err := e.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatalf("expected a result")
	}
	if result.EndReason != PlayerDeath {
		t.Fatalf("expected PlayerDeath, got %v (turns=%d)", result.EndReason, result.TurnsPlayed)
	}
	if result.Winner == nil {
		t.Fatalf("expected a winner")
	}
	if loser := gs.Player(e.otherPlayer(*result.Winner)); loser.Life > 0 {
		t.Fatalf("loser's life should be <= 0, got %d", loser.Life)
	}
}

// TestRandomVsRandomDeterministicReplay checks that the same seed
// reproduces the same (winner, turns_played, end_reason) tuple across
// repeated runs.
func TestRandomVsRandomDeterministicReplay(t *testing.T) {
	run := func() *GameResult {
		gs := newTestGame(t, 42424)
		buildBoltDeck(gs, 1, 20, 40)
		buildBoltDeck(gs, 2, 20, 40)
		drawOpeningHand(gs, 1, 7)
		drawOpeningHand(gs, 2, 7)

		controllers := map[ids.PlayerID]controller.Controller{
			1: controller.NewRandom(42424),
			2: controller.NewRandom(42424 + 1),
		}
		e := New(gs, controllers, DefaultMaxTurns, nil)
		result, err := e.Run()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return result
	}

	first := run()
	second := run()
	if first == nil || second == nil {
		t.Fatalf("expected results from both runs")
	}
	if first.EndReason != second.EndReason || first.TurnsPlayed != second.TurnsPlayed {
		t.Fatalf("non-deterministic result: %+v vs %+v", first, second)
	}
	if (first.Winner == nil) != (second.Winner == nil) {
		t.Fatalf("winner presence differs: %+v vs %+v", first, second)
	}
	if first.Winner != nil && *first.Winner != *second.Winner {
		t.Fatalf("winner differs: %v vs %v", *first.Winner, *second.Winner)
	}
}

// TestTurnLimitEndsTheGame verifies the turn-limit stop condition fires
// when no kill occurs in time: an all-land deck with no threats never
// deals damage.
func TestTurnLimitEndsTheGame(t *testing.T) {
	gs := newTestGame(t, 7)
	buildBoltDeck(gs, 1, 60, 0)
	buildBoltDeck(gs, 2, 60, 0)
	drawOpeningHand(gs, 1, 7)
	drawOpeningHand(gs, 2, 7)

	e := New(gs, zeroControllers(), 5, nil)
	result, err := e.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EndReason != TurnLimit {
		t.Fatalf("expected TurnLimit, got %v", result.EndReason)
	}
	if result.TurnsPlayed != 5 {
		t.Fatalf("expected exactly 5 turns played, got %d", result.TurnsPlayed)
	}
}

// TestStopConditionHaltsRunWithoutError verifies a configured stop
// condition pauses the engine mid-game rather than running to
// completion.
func TestStopConditionHaltsRunWithoutError(t *testing.T) {
	gs := newTestGame(t, 3)
	buildBoltDeck(gs, 1, 30, 30)
	buildBoltDeck(gs, 2, 30, 30)
	drawOpeningHand(gs, 1, 7)
	drawOpeningHand(gs, 2, 7)

	stop, err := stopcond.Parse("2")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	e := New(gs, zeroControllers(), DefaultMaxTurns, stop)
	result, runErr := e.Run()
	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	if result != nil {
		t.Fatalf("expected a paused run (nil result), got %+v", result)
	}
	if e.choiceCounts.Total < 2 {
		t.Fatalf("expected at least 2 choice points recorded, got %d", e.choiceCounts.Total)
	}
}
