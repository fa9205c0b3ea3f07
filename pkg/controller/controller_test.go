package controller

import (
	"testing"

	"github.com/cardforge/engine/pkg/ids"
)

func TestZeroPicksFirstAndPassesOnEmpty(t *testing.T) {
	z := Zero{}
	view := newFakeView(1)
	opts := []Ability{{Kind: CastSpell, Card: 5}, {Kind: PlayLand, Card: 6}}
	chosen, ok := z.ChooseSpellAbilityToPlay(view, opts)
	if !ok || chosen.Card != 5 {
		t.Fatalf("expected first option, got %+v, %v", chosen, ok)
	}
	if _, ok := z.ChooseSpellAbilityToPlay(view, nil); ok {
		t.Fatalf("expected pass on empty option list")
	}
}

func TestFixedScriptConsumesIndicesThenDefaults(t *testing.T) {
	f := NewFixedScript([]int{1, 0})
	view := newFakeView(1)
	opts := []Ability{{Card: 1}, {Card: 2}, {Card: 3}}

	chosen, ok := f.ChooseSpellAbilityToPlay(view, opts)
	if !ok || chosen.Card != 2 {
		t.Fatalf("expected index 1 -> card 2, got %+v", chosen)
	}
	chosen, ok = f.ChooseSpellAbilityToPlay(view, opts)
	if !ok || chosen.Card != 1 {
		t.Fatalf("expected index 0 -> card 1, got %+v", chosen)
	}
	// Exhausted: defaults to index 0.
	chosen, ok = f.ChooseSpellAbilityToPlay(view, opts)
	if !ok || chosen.Card != 1 {
		t.Fatalf("expected default index 0 after exhaustion, got %+v", chosen)
	}
}

func TestFixedScriptSnapshotRoundTrip(t *testing.T) {
	f := NewFixedScript([]int{2, 1})
	view := newFakeView(1)
	opts := []Ability{{Card: 1}, {Card: 2}, {Card: 3}}
	f.ChooseSpellAbilityToPlay(view, opts)

	snap := f.GetSnapshotState()
	g := NewFixedScript([]int{2, 1})
	g.RestoreSnapshotState(snap)

	chosenF, _ := f.ChooseSpellAbilityToPlay(view, opts)
	chosenG, _ := g.ChooseSpellAbilityToPlay(view, opts)
	if chosenF.Card != chosenG.Card {
		t.Fatalf("expected restored cursor to produce identical next choice")
	}
}

func TestRandomMixesPassesAndPlays(t *testing.T) {
	r := NewRandom(1)
	view := newFakeView(1)
	opts := []Ability{{Card: 1}}
	passes, plays := 0, 0
	for i := 0; i < 200; i++ {
		if _, ok := r.ChooseSpellAbilityToPlay(view, opts); ok {
			plays++
		} else {
			passes++
		}
	}
	if passes == 0 || plays == 0 {
		t.Fatalf("expected a mix of passes and plays, got passes=%d plays=%d", passes, plays)
	}
}

func TestRandomDeterministicForSameSeed(t *testing.T) {
	view := newFakeView(1)
	opts := []Ability{{Card: 1}, {Card: 2}, {Card: 3}}
	a := NewRandom(7)
	b := NewRandom(7)
	for i := 0; i < 20; i++ {
		ca, oka := a.ChooseSpellAbilityToPlay(view, opts)
		cb, okb := b.ChooseSpellAbilityToPlay(view, opts)
		if oka != okb || ca != cb {
			t.Fatalf("expected identical sequences for identical seeds, diverged at %d", i)
		}
	}
}

func TestReplayDequeuesMatchingKindThenDelegates(t *testing.T) {
	inner := NewFixedScript([]int{0})
	replay := NewReplay(inner, []RecordedChoice{
		{Kind: ChoiceSpellAbility, Ability: Ability{Card: 99}, AbilityOK: true},
	})
	view := newFakeView(1)
	opts := []Ability{{Card: 1}, {Card: 2}}

	chosen, ok := replay.ChooseSpellAbilityToPlay(view, opts)
	if !ok || chosen.Card != 99 {
		t.Fatalf("expected replayed choice 99, got %+v", chosen)
	}
	if !replay.Exhausted() {
		t.Fatalf("expected queue exhausted after one dequeue")
	}

	chosen, ok = replay.ChooseSpellAbilityToPlay(view, opts)
	if !ok || chosen.Card != 1 {
		t.Fatalf("expected delegation to inner after exhaustion, got %+v", chosen)
	}
}

func TestReplaySkipsOnKindMismatch(t *testing.T) {
	inner := Zero{}
	replay := NewReplay(inner, []RecordedChoice{
		{Kind: ChoiceTargets, CardIDs: []ids.CardID{5}},
	})
	view := newFakeView(1)
	opts := []Ability{{Card: 7}}
	chosen, ok := replay.ChooseSpellAbilityToPlay(view, opts)
	if !ok || chosen.Card != 7 {
		t.Fatalf("expected delegation to inner on kind mismatch, got %+v", chosen)
	}
}
