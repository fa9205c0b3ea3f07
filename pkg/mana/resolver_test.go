package mana

import (
	"testing"

	"github.com/cardforge/engine/pkg/card"
)

func fixedSource(id uint32, c card.Color) Source {
	return Source{CardID: id, Kind: Fixed, FixedColor: c}
}

func TestSimpleResolveYes(t *testing.T) {
	sources := []Source{
		fixedSource(1, card.Red),
		fixedSource(2, card.Red),
		fixedSource(3, card.Green),
	}
	var cap Capacity
	cap.Update(sources)

	cost := card.Cost{Generic: 1, Red: 2}
	result := SimpleResolve(cost, sources, cap)
	if result.Verdict != Yes {
		t.Fatalf("expected Yes, got %v", result.Verdict)
	}
	if len(result.TapOrder) != 3 {
		t.Fatalf("expected 3 tapped sources, got %d", len(result.TapOrder))
	}
}

func TestSimpleResolveNoInsufficientColor(t *testing.T) {
	sources := []Source{fixedSource(1, card.Red)}
	var cap Capacity
	cap.Update(sources)
	result := SimpleResolve(card.Cost{Red: 2}, sources, cap)
	if result.Verdict != No {
		t.Fatalf("expected No, got %v", result.Verdict)
	}
}

func TestSimpleResolveMaybeOnComplexSource(t *testing.T) {
	sources := []Source{
		fixedSource(1, card.Red),
		{CardID: 2, Kind: Choice, ChoiceColors: []card.Color{card.Red, card.Green}},
	}
	var cap Capacity
	cap.Update(sources)
	result := SimpleResolve(card.Cost{Red: 1}, sources, cap)
	if result.Verdict != Maybe {
		t.Fatalf("expected Maybe with a complex source present, got %v", result.Verdict)
	}
}

func TestGreedyResolveWithChoiceSource(t *testing.T) {
	sources := []Source{
		fixedSource(1, card.Red),
		{CardID: 2, Kind: Choice, ChoiceColors: []card.Color{card.Red, card.Green}},
	}
	result := GreedyResolve(card.Cost{Red: 1, Green: 1}, sources)
	if result.Verdict != Yes {
		t.Fatalf("expected Yes, got %v", result.Verdict)
	}
	if len(result.TapOrder) != 2 {
		t.Fatalf("expected both sources tapped, got %d", len(result.TapOrder))
	}
}

func TestGreedyResolveNoOnColorBound(t *testing.T) {
	sources := []Source{fixedSource(1, card.Red)}
	result := GreedyResolve(card.Cost{Green: 1}, sources)
	if result.Verdict != No {
		t.Fatalf("expected No, got %v", result.Verdict)
	}
}

func TestGreedyResolveNoOnTotalManaBound(t *testing.T) {
	sources := []Source{fixedSource(1, card.Red)}
	result := GreedyResolve(card.Cost{Generic: 3}, sources)
	if result.Verdict != No {
		t.Fatalf("expected No, got %v", result.Verdict)
	}
}

func TestGreedyResolvePrefersFixedOverAnyColor(t *testing.T) {
	sources := []Source{
		{CardID: 1, Kind: AnyColor},
		fixedSource(2, card.Red),
	}
	result := GreedyResolve(card.Cost{Red: 1}, sources)
	if result.Verdict != Yes {
		t.Fatalf("expected Yes, got %v", result.Verdict)
	}
	if len(result.TapOrder) != 1 || result.TapOrder[0] != 2 {
		t.Fatalf("expected the Fixed red source tapped over AnyColor, got %v", result.TapOrder)
	}
}

func TestQuickCheckMatchesBounds(t *testing.T) {
	sources := []Source{fixedSource(1, card.Red)}
	if !QuickCheck(card.Cost{Red: 1}, sources) {
		t.Fatalf("expected quick check to pass")
	}
	if QuickCheck(card.Cost{Red: 2}, sources) {
		t.Fatalf("expected quick check to fail on color bound")
	}
}

func TestSummoningSickSourceUnavailable(t *testing.T) {
	sources := []Source{{CardID: 1, Kind: Fixed, FixedColor: card.Red, HasSummoningSickness: true}}
	var cap Capacity
	cap.Update(sources)
	if cap.Total() != 0 {
		t.Fatalf("expected summoning-sick source to not count toward capacity")
	}
}

func TestCanPayDispatchesToGreedyForComplexSources(t *testing.T) {
	sources := []Source{
		{CardID: 1, Kind: AnyColor},
	}
	var cap Capacity
	if !CanPay(card.Cost{Green: 1}, sources, cap) {
		t.Fatalf("expected AnyColor source to pay a single green pip")
	}
}
