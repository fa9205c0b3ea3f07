package controller

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
)

// Zero always picks the first option, passing priority when the
// option list is empty. Used for benchmarking and canonical replay
// since it is fully deterministic and carries no internal state.
type Zero struct{}

func (Zero) ChooseSpellAbilityToPlay(_ View, available []Ability) (Ability, bool) {
	if len(available) == 0 {
		return Ability{}, false
	}
	return available[0], true
}

func capAt(ids []ids.CardID, n int) []ids.CardID {
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}

func (Zero) ChooseTargets(_ View, _ ids.CardID, validTargets []ids.CardID) []ids.CardID {
	return capAt(validTargets, 4)
}

func (Zero) ChooseManaSourcesToPay(_ View, cost card.Cost, available []ids.CardID) []ids.CardID {
	n := cost.Total()
	if n > 8 {
		n = 8
	}
	return capAt(available, n)
}

func (Zero) ChooseAttackers(_ View, legalCreatures []ids.CardID) []ids.CardID {
	return capAt(legalCreatures, 8)
}

func (Zero) ChooseBlockers(_ View, legalBlockers []ids.CardID, attackers []ids.CardID) []BlockAssignment {
	if len(legalBlockers) == 0 || len(attackers) == 0 {
		return nil
	}
	return nil
}

func (Zero) ChooseDamageAssignmentOrder(_ View, _ ids.CardID, blockers []ids.CardID) []ids.CardID {
	return blockers
}

func (Zero) ChooseCardsToDiscard(_ View, hand []ids.CardID, n int) []ids.CardID {
	return capAt(hand, n)
}

func (Zero) OnPriorityPassed(View)       {}
func (Zero) OnGameEnd(View, bool)        {}
func (Zero) GetSnapshotState() any       { return nil }

var _ Controller = Zero{}
