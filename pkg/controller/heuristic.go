package controller

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
)

// Scorer is the external policy a Heuristic controller delegates to:
// given a view and a set of candidate options, return the index of the
// best one (or -1 to pass, where passing is a valid option). The
// scoring function itself is left to the caller — Heuristic only wires
// a Scorer into the Controller shape.
type Scorer interface {
	ScoreAbilities(view View, available []Ability) int
	ScoreTargets(view View, spell ids.CardID, validTargets []ids.CardID) []ids.CardID
	ScoreManaSources(view View, cost card.Cost, available []ids.CardID) []ids.CardID
	ScoreAttackers(view View, legalCreatures []ids.CardID) []ids.CardID
	ScoreBlockers(view View, legalBlockers []ids.CardID, attackers []ids.CardID) []BlockAssignment
	ScoreDamageOrder(view View, attacker ids.CardID, blockers []ids.CardID) []ids.CardID
	ScoreDiscards(view View, hand []ids.CardID, n int) []ids.CardID
}

// Heuristic is a policy-only controller: every decision delegates to a
// Scorer supplied at construction. The core ships the interface, not a
// policy.
type Heuristic struct {
	Policy Scorer
}

// NewHeuristic builds a Heuristic controller around policy.
func NewHeuristic(policy Scorer) *Heuristic {
	return &Heuristic{Policy: policy}
}

func (h *Heuristic) ChooseSpellAbilityToPlay(view View, available []Ability) (Ability, bool) {
	if len(available) == 0 {
		return Ability{}, false
	}
	i := h.Policy.ScoreAbilities(view, available)
	if i < 0 || i >= len(available) {
		return Ability{}, false
	}
	return available[i], true
}

func (h *Heuristic) ChooseTargets(view View, spell ids.CardID, validTargets []ids.CardID) []ids.CardID {
	return h.Policy.ScoreTargets(view, spell, validTargets)
}

func (h *Heuristic) ChooseManaSourcesToPay(view View, cost card.Cost, available []ids.CardID) []ids.CardID {
	return h.Policy.ScoreManaSources(view, cost, available)
}

func (h *Heuristic) ChooseAttackers(view View, legalCreatures []ids.CardID) []ids.CardID {
	return h.Policy.ScoreAttackers(view, legalCreatures)
}

func (h *Heuristic) ChooseBlockers(view View, legalBlockers []ids.CardID, attackers []ids.CardID) []BlockAssignment {
	return h.Policy.ScoreBlockers(view, legalBlockers, attackers)
}

func (h *Heuristic) ChooseDamageAssignmentOrder(view View, attacker ids.CardID, blockers []ids.CardID) []ids.CardID {
	return h.Policy.ScoreDamageOrder(view, attacker, blockers)
}

func (h *Heuristic) ChooseCardsToDiscard(view View, hand []ids.CardID, n int) []ids.CardID {
	return h.Policy.ScoreDiscards(view, hand, n)
}

func (h *Heuristic) OnPriorityPassed(View) {}
func (h *Heuristic) OnGameEnd(View, bool)  {}

// GetSnapshotState returns nil; stateful policies should wrap
// themselves in their own snapshot-aware Scorer if needed.
func (h *Heuristic) GetSnapshotState() any { return nil }

var _ Controller = (*Heuristic)(nil)
