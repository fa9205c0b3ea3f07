package engine

import (
	"fmt"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
)

// castSpell moves the spell to the stack, gathers targets, resolves
// payment, then resolves it to the battlefield (permanents) or the
// graveyard (instants and sorceries). The engine resolves one spell at
// a time with no opportunity for a response to be cast in between, so
// the stack never holds more than one card at a time.
func (e *Engine) castSpell(player ids.PlayerID, spell ids.CardID) error {
	cd, ok := e.GS.Card(spell)
	if !ok {
		return fmt.Errorf("cast_spell: unknown card %d", spell)
	}
	view := &gameView{gs: e.GS, viewer: player}
	ctrl := e.Controllers[player]

	if err := e.GS.MoveCard(spell, state.Ref{Kind: state.ZoneHand, Player: player}, state.Ref{Kind: state.ZoneStack}); err != nil {
		return err
	}

	var validTargets []ids.CardID
	for _, id := range e.GS.Battlefield.Cards() {
		if target, ok := e.GS.Card(id); ok && target.IsCreature() {
			validTargets = append(validTargets, id)
		}
	}
	var targets []ids.CardID
	if len(validTargets) == 1 {
		// Exactly one legal target: the engine picks it without
		// consulting the controller or recording a choice point.
		targets = []ids.CardID{validTargets[0]}
	} else {
		targets = ctrl.ChooseTargets(view, spell, validTargets)
		e.recordChoice(player, controller.RecordedChoice{Kind: controller.ChoiceTargets, CardIDs: targets})
	}

	cost := cd.PrintedCost
	var availableLands []ids.CardID
	for _, id := range e.GS.Battlefield.Cards() {
		if land, ok := e.GS.Card(id); ok && land.Controller == player && land.IsLand() && !land.Tapped {
			availableLands = append(availableLands, id)
		}
	}
	chosen := ctrl.ChooseManaSourcesToPay(view, cost, availableLands)
	e.recordChoice(player, controller.RecordedChoice{Kind: controller.ChoiceManaSources, CardIDs: chosen})

	for _, landID := range chosen {
		if err := e.GS.TapForMana(player, landID); err != nil {
			return err
		}
	}

	if err := e.GS.PayCost(player, cost); err != nil {
		// The chosen sources didn't cover the cost: the spell fizzles
		// to the graveyard rather than aborting the whole game.
		return e.GS.MoveCard(spell, state.Ref{Kind: state.ZoneStack}, state.Ref{Kind: state.ZoneGraveyard, Player: cd.Owner})
	}

	return e.resolveSpell(cd, player, targets)
}

func (e *Engine) resolveSpell(cd *card.Card, player ids.PlayerID, targets []ids.CardID) error {
	switch {
	case cd.Types.Has(card.TypeCreature), cd.Types.Has(card.TypeArtifact),
		cd.Types.Has(card.TypeEnchantment), cd.Types.Has(card.TypePlaneswalker):
		if err := e.GS.MoveCard(cd.ID, state.Ref{Kind: state.ZoneStack}, state.Ref{Kind: state.ZoneBattlefield}); err != nil {
			return err
		}
		cd.Controller = player
		cd.HasEnteredBattlefield = true
		cd.TurnEnteredBattlefield = e.GS.Turn.Number
		return nil
	default: // Instant or Sorcery
		if err := e.applyEffect(cd, player, targets); err != nil {
			return err
		}
		return e.GS.MoveCard(cd.ID, state.Ref{Kind: state.ZoneStack}, state.Ref{Kind: state.ZoneGraveyard, Player: cd.Owner})
	}
}

// applyEffect resolves a non-permanent spell's structured effect
// against its chosen targets. A Damage effect with no creature target
// chosen hits the caster's opponent directly — ChooseTargets offers
// only creatures, so "any target" spells with no creatures on the
// battlefield resolve to the opposing player's face.
func (e *Engine) applyEffect(cd *card.Card, caster ids.PlayerID, targets []ids.CardID) error {
	switch cd.Effect.Kind {
	case card.EffectDamage:
		if len(targets) > 0 {
			return e.GS.DealDamage(targets[0], false, 0, cd.Effect.Amount)
		}
		return e.GS.DealDamage(0, true, e.otherPlayer(caster), cd.Effect.Amount)
	case card.EffectLifeGain:
		return e.GS.ModifyLife(caster, cd.Effect.Amount)
	case card.EffectDraw:
		for i := 0; i < cd.Effect.Amount; i++ {
			e.GS.DrawCard(caster)
		}
		return nil
	case card.EffectDestroy:
		if len(targets) > 0 {
			return e.GS.MoveCard(targets[0], state.Ref{Kind: state.ZoneBattlefield}, state.Ref{Kind: state.ZoneGraveyard, Player: e.ownerOf(targets[0])})
		}
		return nil
	case card.EffectPump:
		if len(targets) > 0 {
			return e.GS.PumpCreature(targets[0], cd.Effect.Amount, cd.Effect.PumpToughness)
		}
		return nil
	case card.EffectMill:
		pz := e.GS.Zones(caster)
		if pz == nil {
			return nil
		}
		for i := 0; i < cd.Effect.Amount; i++ {
			id, ok := pz.Library.Top()
			if !ok {
				break
			}
			if err := e.GS.MoveCard(id, state.Ref{Kind: state.ZoneLibrary, Player: caster}, state.Ref{Kind: state.ZoneGraveyard, Player: caster}); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func (e *Engine) ownerOf(c ids.CardID) ids.PlayerID {
	if cd, ok := e.GS.Card(c); ok {
		return cd.Owner
	}
	return 0
}
