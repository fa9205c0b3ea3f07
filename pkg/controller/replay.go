package controller

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
)

// ChoiceKind tags which callback a RecordedChoice answers, so Replay
// can refuse to hand a target-selection answer to a mana-source
// request and the like.
type ChoiceKind int

const (
	ChoiceSpellAbility ChoiceKind = iota
	ChoiceTargets
	ChoiceManaSources
	ChoiceAttackers
	ChoiceBlockers
	ChoiceDamageOrder
	ChoiceDiscard
)

// RecordedChoice is one previously-made decision, replayed verbatim.
type RecordedChoice struct {
	Kind      ChoiceKind
	Ability   Ability
	AbilityOK bool
	CardIDs   []ids.CardID
	Blocks    []BlockAssignment
}

// Replay wraps an inner controller and a queue of prior recorded
// choices. Each callback first tries to dequeue a matching recorded
// choice of the right kind and returns it immediately without
// consulting inner; only on a kind mismatch or an empty queue does it
// fall through to inner. A resumed game's controllers therefore need
// their own snapshotted state (see Random.GetSnapshotState) to pick up
// exactly where the original run left off once the queue runs dry.
type Replay struct {
	inner Controller
	queue []RecordedChoice
	idx   int
}

// NewReplay builds a Replay controller around inner, seeded with the
// recorded choices to dequeue in order.
func NewReplay(inner Controller, recorded []RecordedChoice) *Replay {
	return &Replay{inner: inner, queue: recorded}
}

func (r *Replay) dequeue(kind ChoiceKind) (RecordedChoice, bool) {
	if r.idx >= len(r.queue) || r.queue[r.idx].Kind != kind {
		return RecordedChoice{}, false
	}
	c := r.queue[r.idx]
	r.idx++
	return c, true
}

func (r *Replay) ChooseSpellAbilityToPlay(view View, available []Ability) (Ability, bool) {
	if c, hit := r.dequeue(ChoiceSpellAbility); hit {
		return c.Ability, c.AbilityOK
	}
	return r.inner.ChooseSpellAbilityToPlay(view, available)
}

func (r *Replay) ChooseTargets(view View, spell ids.CardID, validTargets []ids.CardID) []ids.CardID {
	if c, hit := r.dequeue(ChoiceTargets); hit {
		return c.CardIDs
	}
	return r.inner.ChooseTargets(view, spell, validTargets)
}

func (r *Replay) ChooseManaSourcesToPay(view View, cost card.Cost, available []ids.CardID) []ids.CardID {
	if c, hit := r.dequeue(ChoiceManaSources); hit {
		return c.CardIDs
	}
	return r.inner.ChooseManaSourcesToPay(view, cost, available)
}

func (r *Replay) ChooseAttackers(view View, legalCreatures []ids.CardID) []ids.CardID {
	if c, hit := r.dequeue(ChoiceAttackers); hit {
		return c.CardIDs
	}
	return r.inner.ChooseAttackers(view, legalCreatures)
}

func (r *Replay) ChooseBlockers(view View, legalBlockers []ids.CardID, attackers []ids.CardID) []BlockAssignment {
	if c, hit := r.dequeue(ChoiceBlockers); hit {
		return c.Blocks
	}
	return r.inner.ChooseBlockers(view, legalBlockers, attackers)
}

func (r *Replay) ChooseDamageAssignmentOrder(view View, attacker ids.CardID, blockers []ids.CardID) []ids.CardID {
	if c, hit := r.dequeue(ChoiceDamageOrder); hit {
		return c.CardIDs
	}
	return r.inner.ChooseDamageAssignmentOrder(view, attacker, blockers)
}

func (r *Replay) ChooseCardsToDiscard(view View, hand []ids.CardID, n int) []ids.CardID {
	if c, hit := r.dequeue(ChoiceDiscard); hit {
		return c.CardIDs
	}
	return r.inner.ChooseCardsToDiscard(view, hand, n)
}

func (r *Replay) OnPriorityPassed(view View)    { r.inner.OnPriorityPassed(view) }
func (r *Replay) OnGameEnd(view View, won bool) { r.inner.OnGameEnd(view, won) }

// GetSnapshotState delegates to the inner controller; the replay queue
// itself is part of the snapshot's intra_turn_choices, not controller
// state.
func (r *Replay) GetSnapshotState() any { return r.inner.GetSnapshotState() }

// Exhausted reports whether every recorded choice has been consumed,
// meaning subsequent callbacks all delegate to inner.
func (r *Replay) Exhausted() bool { return r.idx >= len(r.queue) }

var _ Controller = (*Replay)(nil)
