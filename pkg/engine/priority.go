package engine

import (
	"fmt"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/mana"
)

// priorityOrder returns the two players, active player first.
func (e *Engine) priorityOrder() []ids.PlayerID {
	order := make([]ids.PlayerID, 0, len(e.GS.Players))
	order = append(order, e.GS.Turn.ActivePlayer)
	for _, p := range e.GS.Players {
		if p.ID != e.GS.Turn.ActivePlayer {
			order = append(order, p.ID)
		}
	}
	return order
}

// runPriorityRound runs the priority loop: each player in turn order
// is consulted until both have passed in succession with no
// intervening action. A per-round action cap guards against a
// controller that never passes.
func (e *Engine) runPriorityRound() {
	order := e.priorityOrder()
	consecutivePasses := 0
	actions := 0

	for consecutivePasses < len(order) {
		for _, pid := range order {
			actions++
			if actions > priorityActionCap {
				e.fail(fmt.Errorf("priority round exceeded %d actions", priorityActionCap))
				return
			}

			e.GS.Turn.PriorityPlayer = &pid
			view := &gameView{gs: e.GS, viewer: pid}
			ctrl := e.Controllers[pid]

			available := e.availableAbilities(pid)
			ability, ok := ctrl.ChooseSpellAbilityToPlay(view, available)
			if !ok {
				e.recordChoice(pid, controller.RecordedChoice{Kind: controller.ChoiceSpellAbility, AbilityOK: false})
				ctrl.OnPriorityPassed(view)
				consecutivePasses++
				if e.stopped {
					return
				}
				if consecutivePasses >= len(order) {
					break
				}
				continue
			}

			consecutivePasses = 0
			e.recordChoice(pid, controller.RecordedChoice{Kind: controller.ChoiceSpellAbility, Ability: ability, AbilityOK: true})
			if err := e.resolveAbility(pid, ability); err != nil {
				e.fail(err)
				return
			}
			if e.stopped {
				return
			}
		}
	}
	e.GS.Turn.PriorityPlayer = nil
}

// availableAbilities enumerates the typed options offered to player at
// this priority: playable lands, castable spells, and untapped lands'
// mana ability.
func (e *Engine) availableAbilities(player ids.PlayerID) []controller.Ability {
	var out []controller.Ability
	pz := e.GS.Zones(player)
	if pz == nil {
		return out
	}

	sources := e.manaSources(player)

	for _, id := range pz.Hand.Cards() {
		cd, ok := e.GS.Card(id)
		if !ok {
			continue
		}
		if cd.IsLand() {
			if e.GS.Turn.ActivePlayer == player && e.GS.Turn.CurrentStep.CanPlayLands() && e.GS.Player(player).CanPlayLand() {
				out = append(out, controller.Ability{Kind: controller.PlayLand, Card: id})
			}
			continue
		}
		if e.isCastable(cd, player) && mana.QuickCheck(cd.PrintedCost, sources) {
			out = append(out, controller.Ability{Kind: controller.CastSpell, Card: id})
		}
	}

	for _, id := range e.GS.Battlefield.Cards() {
		cd, ok := e.GS.Card(id)
		if !ok || cd.Controller != player || !cd.IsLand() || cd.Tapped {
			continue
		}
		out = append(out, controller.Ability{Kind: controller.ActivateAbility, Card: id, Index: 0})
	}
	return out
}

// isCastable reports whether cd may legally be cast by player right
// now: instants at any time, everything else only at sorcery speed on
// the caster's own turn (the engine's single-spell-at-a-time
// resolution model keeps the stack always empty between priorities,
// so no separate "stack is empty" check is needed here).
func (e *Engine) isCastable(cd *card.Card, player ids.PlayerID) bool {
	if cd.Types.Has(card.TypeInstant) {
		return true
	}
	return e.GS.Turn.ActivePlayer == player && e.GS.Turn.CurrentStep.IsSorcerySpeed()
}

func (e *Engine) resolveAbility(player ids.PlayerID, ability controller.Ability) error {
	switch ability.Kind {
	case controller.PlayLand:
		return e.GS.PlayLand(player, ability.Card)
	case controller.CastSpell:
		return e.castSpell(player, ability.Card)
	case controller.ActivateAbility:
		return e.GS.TapForMana(player, ability.Card)
	default:
		return fmt.Errorf("resolve_ability: unknown ability kind %d", ability.Kind)
	}
}
