package engine

import (
	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/ids"
)

// runDeclareAttackers runs the DeclareAttackers step: the active player
// chooses attackers from their untapped, non-summoning-sick creatures,
// and each declared attacker taps.
func (e *Engine) runDeclareAttackers() {
	active := e.GS.Turn.ActivePlayer
	defender := e.otherPlayer(active)
	view := &gameView{gs: e.GS, viewer: active}
	ctrl := e.Controllers[active]

	var legal []ids.CardID
	for _, id := range e.GS.Battlefield.Cards() {
		cd, ok := e.GS.Card(id)
		if !ok || cd.Controller != active || !cd.IsCreature() || cd.Tapped {
			continue
		}
		if cd.HasEnteredBattlefield && cd.TurnEnteredBattlefield >= e.GS.Turn.Number {
			continue // summoning sick
		}
		legal = append(legal, id)
	}

	chosen := ctrl.ChooseAttackers(view, legal)
	e.recordChoice(active, controller.RecordedChoice{Kind: controller.ChoiceAttackers, CardIDs: chosen})

	for _, id := range chosen {
		e.GS.Combat.DeclareAttacker(id, defender)
		e.GS.Combat.Active = true
		if err := e.GS.SetTapped(id, true); err != nil {
			e.fail(err)
			return
		}
	}
}

// runDeclareBlockers runs the DeclareBlockers step: the defending
// player assigns untapped creatures to block declared attackers.
func (e *Engine) runDeclareBlockers() {
	if !e.GS.Combat.Active {
		return
	}
	active := e.GS.Turn.ActivePlayer
	defender := e.otherPlayer(active)
	view := &gameView{gs: e.GS, viewer: defender}
	ctrl := e.Controllers[defender]

	var legal []ids.CardID
	for _, id := range e.GS.Battlefield.Cards() {
		cd, ok := e.GS.Card(id)
		if !ok || cd.Controller != defender || !cd.IsCreature() || cd.Tapped || e.GS.Combat.IsBlocking(id) {
			continue
		}
		legal = append(legal, id)
	}
	attackers := e.GS.Combat.Attackers()

	assignments := ctrl.ChooseBlockers(view, legal, attackers)
	e.recordChoice(defender, controller.RecordedChoice{Kind: controller.ChoiceBlockers, Blocks: assignments})

	for _, a := range assignments {
		if !e.GS.Combat.IsAttacking(a.Attacker) {
			continue
		}
		e.GS.Combat.DeclareBlock(a.Blocker, a.Attacker)
	}
}

// runCombatDamage runs the CombatDamage step: every attacker deals
// damage to its defending player (if unblocked) or to its blockers (if
// blocked), and every blocker deals damage back to its attacker, all
// before any creature is moved to the graveyard.
func (e *Engine) runCombatDamage() {
	if !e.GS.Combat.Active {
		return
	}
	active := e.GS.Turn.ActivePlayer
	view := &gameView{gs: e.GS, viewer: active}
	ctrl := e.Controllers[active]

	for _, attacker := range e.GS.Combat.Attackers() {
		atkCard, ok := e.GS.Card(attacker)
		if !ok {
			continue
		}
		atkPower, _ := atkCard.Power()

		blockers := e.GS.Combat.BlockersOf(attacker)
		if len(blockers) == 0 {
			defender, _ := e.GS.Combat.DefenderOf(attacker)
			if err := e.GS.DealDamage(0, true, defender, atkPower); err != nil {
				e.fail(err)
				return
			}
			continue
		}

		order := blockers
		if len(blockers) > 1 {
			order = ctrl.ChooseDamageAssignmentOrder(view, attacker, blockers)
			e.recordChoice(active, controller.RecordedChoice{Kind: controller.ChoiceDamageOrder, CardIDs: order})
		}

		remaining := atkPower
		totalToAttacker := 0
		for _, blocker := range order {
			blockerCard, ok := e.GS.Card(blocker)
			if !ok {
				continue
			}
			blockerPower, _ := blockerCard.Power()
			blockerToughness, _ := blockerCard.Toughness()
			totalToAttacker += blockerPower

			assign := remaining
			if blockerToughness < assign {
				assign = blockerToughness
			}
			if assign > 0 {
				if err := e.GS.DealDamage(blocker, false, 0, assign); err != nil {
					e.fail(err)
					return
				}
				remaining -= assign
			}
		}
		if err := e.GS.DealDamage(attacker, false, 0, totalToAttacker); err != nil {
			e.fail(err)
			return
		}
	}
}
