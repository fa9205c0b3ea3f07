package controller

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
)

// FixedScript carries a vector of integer indices, consuming one per
// callback; once exhausted it defaults to index 0. Its cursor is
// serializable so it can be snapshotted mid-game.
type FixedScript struct {
	Indices []int
	cursor  int
}

// NewFixedScript builds a fixed-script controller from the given index
// sequence.
func NewFixedScript(indices []int) *FixedScript {
	return &FixedScript{Indices: indices}
}

func (f *FixedScript) next() int {
	if f.cursor >= len(f.Indices) {
		return 0
	}
	i := f.Indices[f.cursor]
	f.cursor++
	return i
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}

func (f *FixedScript) ChooseSpellAbilityToPlay(_ View, available []Ability) (Ability, bool) {
	i := f.next()
	if len(available) == 0 {
		return Ability{}, false
	}
	return available[clampIndex(i, len(available))], true
}

func (f *FixedScript) ChooseTargets(_ View, _ ids.CardID, validTargets []ids.CardID) []ids.CardID {
	i := f.next()
	if len(validTargets) == 0 {
		return nil
	}
	return []ids.CardID{validTargets[clampIndex(i, len(validTargets))]}
}

func (f *FixedScript) ChooseManaSourcesToPay(_ View, cost card.Cost, available []ids.CardID) []ids.CardID {
	n := cost.Total()
	if n > len(available) {
		n = len(available)
	}
	_ = f.next()
	return capAt(available, n)
}

func (f *FixedScript) ChooseAttackers(_ View, legalCreatures []ids.CardID) []ids.CardID {
	_ = f.next()
	return capAt(legalCreatures, 8)
}

func (f *FixedScript) ChooseBlockers(_ View, _ []ids.CardID, _ []ids.CardID) []BlockAssignment {
	_ = f.next()
	return nil
}

func (f *FixedScript) ChooseDamageAssignmentOrder(_ View, _ ids.CardID, blockers []ids.CardID) []ids.CardID {
	_ = f.next()
	return blockers
}

func (f *FixedScript) ChooseCardsToDiscard(_ View, hand []ids.CardID, n int) []ids.CardID {
	_ = f.next()
	return capAt(hand, n)
}

func (f *FixedScript) OnPriorityPassed(View) {}
func (f *FixedScript) OnGameEnd(View, bool)  {}

// GetSnapshotState returns the script's cursor for snapshotting.
func (f *FixedScript) GetSnapshotState() any {
	return f.cursor
}

// RestoreSnapshotState sets the cursor from a previously captured
// GetSnapshotState value.
func (f *FixedScript) RestoreSnapshotState(v any) {
	if c, ok := v.(int); ok {
		f.cursor = c
	}
}

var _ Controller = (*FixedScript)(nil)
