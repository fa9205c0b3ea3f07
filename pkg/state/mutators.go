package state

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/engineerr"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/undolog"
)

// DrawCard draws the top of player's library into their hand. Returns
// the drawn card id, or ok=false if the library was empty (no record
// appended in that case).
func (gs *GameState) DrawCard(player ids.PlayerID) (ids.CardID, bool) {
	pz := gs.zones[player]
	id, ok := pz.Library.PopTop()
	if !ok {
		return 0, false
	}
	pz.Hand.PushTop(id)
	gs.Log.Append(undolog.Record{
		Kind: undolog.KindMoveCard,
		Card: id,
		From: undolog.ZoneRef{Kind: string(ZoneLibrary), Player: player},
		To:   undolog.ZoneRef{Kind: string(ZoneHand), Player: player},
	})
	return id, true
}

// MoveCard removes c from its current zone (from) and adds it to to.
// Fails with InvalidAction if from does not actually contain c.
func (gs *GameState) MoveCard(c ids.CardID, from, to Ref) error {
	fromZone := gs.zoneFor(from)
	toZone := gs.zoneFor(to)
	if fromZone == nil || toZone == nil {
		return engineerr.New(engineerr.InvalidAction, "move_card: unknown zone")
	}
	if !fromZone.Remove(c) {
		return engineerr.New(engineerr.InvalidAction, "move_card: card %d not present in source zone", c)
	}
	toZone.PushTop(c)
	gs.Log.Append(undolog.Record{
		Kind: undolog.KindMoveCard,
		Card: c,
		From: refRecord(from),
		To:   refRecord(to),
	})
	return nil
}

// PlayLand moves a land from the player's hand to the battlefield and
// increments their per-turn land count, after checking preconditions.
func (gs *GameState) PlayLand(player ids.PlayerID, c ids.CardID) error {
	p := gs.Player(player)
	if p == nil {
		return engineerr.New(engineerr.InvalidAction, "play_land: unknown player %d", player)
	}
	cd, ok := gs.Card(c)
	if !ok {
		return engineerr.NotFound(uint32(c))
	}
	if !gs.zones[player].Hand.Contains(c) {
		return engineerr.New(engineerr.InvalidAction, "play_land: card %d not in hand", c)
	}
	if !cd.IsLand() {
		return engineerr.New(engineerr.InvalidAction, "play_land: card %d is not a land", c)
	}
	if !p.CanPlayLand() {
		return engineerr.New(engineerr.InvalidAction, "play_land: player %d has no land plays remaining", player)
	}
	if err := gs.MoveCard(c, Ref{Kind: ZoneHand, Player: player}, Ref{Kind: ZoneBattlefield}); err != nil {
		return err
	}
	p.LandsPlayedThisTurn++
	return nil
}

// TapForMana taps a basic land and adds one mana of its color to the
// controller's pool.
func (gs *GameState) TapForMana(player ids.PlayerID, c ids.CardID) error {
	cd, ok := gs.Card(c)
	if !ok {
		return engineerr.NotFound(uint32(c))
	}
	if !gs.Battlefield.Contains(c) {
		return engineerr.New(engineerr.InvalidAction, "tap_for_mana: card %d not on battlefield", c)
	}
	if !cd.IsLand() {
		return engineerr.New(engineerr.InvalidAction, "tap_for_mana: card %d is not a land", c)
	}
	if cd.Tapped {
		return engineerr.New(engineerr.InvalidAction, "tap_for_mana: card %d already tapped", c)
	}
	var color card.Color
	found := false
	for _, sub := range cd.Subtypes {
		if col, ok := card.BasicLandColor(sub); ok {
			color, found = col, true
			break
		}
	}
	if !found {
		return engineerr.New(engineerr.InvalidAction, "tap_for_mana: card %d has no basic land subtype", c)
	}
	gs.setTapped(cd, true)
	p := gs.Player(player)
	p.Pool.Add(color)
	gs.Log.Append(undolog.Record{Kind: undolog.KindAddMana, Player: player, Color: int(color)})
	return nil
}

func (gs *GameState) setTapped(cd *card.Card, tapped bool) {
	cd.Tapped = tapped
	gs.Log.Append(undolog.Record{Kind: undolog.KindTapCard, Card: cd.ID, NewTapped: tapped})
}

// SetTapped sets c's tapped flag and records a TapCard entry, for
// callers outside this package (e.g. the combat driver tapping
// declared attackers) that need direct tap control without going
// through TapForMana.
func (gs *GameState) SetTapped(c ids.CardID, tapped bool) error {
	cd, ok := gs.Cards.Get(c)
	if !ok {
		return engineerr.NotFound(uint32(c))
	}
	gs.setTapped(cd, tapped)
	return nil
}

// DealDamage applies life loss for a player target, or lethal-toughness
// death for a creature target.
func (gs *GameState) DealDamage(target ids.CardID, targetIsPlayer bool, targetPlayer ids.PlayerID, amount int) error {
	if targetIsPlayer {
		return gs.ModifyLife(targetPlayer, -amount)
	}
	cd, ok := gs.Card(target)
	if !ok {
		return engineerr.NotFound(uint32(target))
	}
	toughness, hasT := cd.Toughness()
	if hasT && amount >= toughness {
		return gs.MoveCard(target, Ref{Kind: ZoneBattlefield}, Ref{Kind: ZoneGraveyard, Player: cd.Owner})
	}
	return nil
}

// ModifyLife changes a player's life total and records the mutation,
// including the has-lost flag transition at life <= 0.
func (gs *GameState) ModifyLife(player ids.PlayerID, delta int) error {
	p := gs.Player(player)
	if p == nil {
		return engineerr.New(engineerr.InvalidAction, "modify_life: unknown player %d", player)
	}
	p.Life += delta
	if p.Life <= 0 {
		p.Lost = true
	}
	gs.Log.Append(undolog.Record{Kind: undolog.KindModifyLife, Player: player, LifeDelta: delta})
	return nil
}

// AddCounters adds counters of kind to c, including the +1/+1 versus
// -1/-1 mutual-annihilation rule. Records the final net amount
// actually added.
func (gs *GameState) AddCounters(c ids.CardID, kind card.CounterKind, n int) error {
	cd, ok := gs.Card(c)
	if !ok {
		return engineerr.NotFound(uint32(c))
	}
	before := cd.Counters.Count(kind)
	cd.Counters.Add(kind, n)
	after := cd.Counters.Count(kind)
	gs.Log.Append(undolog.Record{Kind: undolog.KindAddCounter, Card: c, CounterKind: string(kind), Amount: after - before})
	return nil
}

// RemoveCounters removes up to n counters of kind from c.
func (gs *GameState) RemoveCounters(c ids.CardID, kind card.CounterKind, n int) error {
	cd, ok := gs.Card(c)
	if !ok {
		return engineerr.NotFound(uint32(c))
	}
	removed := cd.Counters.Remove(kind, n)
	gs.Log.Append(undolog.Record{Kind: undolog.KindRemoveCounter, Card: c, CounterKind: string(kind), Amount: removed})
	return nil
}

// PumpCreature applies a temporary power/toughness bonus, recording a
// PumpCreature entry.
func (gs *GameState) PumpCreature(c ids.CardID, dp, dt int) error {
	cd, ok := gs.Card(c)
	if !ok {
		return engineerr.NotFound(uint32(c))
	}
	cd.PowerBonus += dp
	cd.ToughnessBonus += dt
	gs.Log.Append(undolog.Record{Kind: undolog.KindPumpCreature, Card: c, DeltaPower: dp, DeltaToughness: dt})
	return nil
}

// UntapAll untaps every tapped permanent on the battlefield controlled
// by player, in battlefield order, recording one TapCard per card.
func (gs *GameState) UntapAll(player ids.PlayerID) {
	for _, id := range gs.Battlefield.Cards() {
		cd, ok := gs.Card(id)
		if !ok || cd.Controller != player || !cd.Tapped {
			continue
		}
		gs.setTapped(cd, false)
	}
}

// CleanupTemporaryEffects clears pump bonuses on every battlefield
// card. Not logged: the following ChangeTurn record subsumes it, and
// undo restores pumps via the PumpCreature records preceding it.
func (gs *GameState) CleanupTemporaryEffects() {
	for _, id := range gs.Battlefield.Cards() {
		cd, _ := gs.Card(id)
		if cd != nil {
			cd.PowerBonus = 0
			cd.ToughnessBonus = 0
		}
	}
}

// EmptyManaPool empties player's mana pool, recording the six
// pre-empty values for undo.
func (gs *GameState) EmptyManaPool(player ids.PlayerID) {
	p := gs.Player(player)
	if p == nil {
		return
	}
	prev := p.Pool.Empty()
	gs.Log.Append(undolog.Record{Kind: undolog.KindEmptyManaPool, Player: player, PrevPool: prev})
}

// AdvanceStep moves to the current step's successor, or performs turn
// rotation at the end of Cleanup.
func (gs *GameState) AdvanceStep() {
	next, hasSuccessor := gs.Turn.CurrentStep.Successor()
	if hasSuccessor {
		from := gs.Turn.CurrentStep
		gs.Turn.CurrentStep = next
		gs.Log.Append(undolog.Record{Kind: undolog.KindAdvanceStep, FromStep: int(from), ToStep: int(next)})
		return
	}

	fromPlayer := gs.Turn.ActivePlayer
	newIdx := (gs.Turn.ActivePlayerIdx + 1) % len(gs.Players)
	toPlayer := gs.Players[newIdx].ID
	newTurn := gs.Turn.Number + 1

	gs.Turn.ActivePlayerIdx = newIdx
	gs.Turn.ActivePlayer = toPlayer
	gs.Turn.Number = newTurn
	gs.Turn.CurrentStep = Untap

	gs.Log.Append(undolog.Record{
		Kind:          undolog.KindChangeTurn,
		FromPlayer:    fromPlayer,
		ToPlayer:      toPlayer,
		NewTurnNumber: newTurn,
	})
}

// PayCost drains player's mana pool by cost: first each color pip,
// then colorless, then generic from whatever colors remain. Returns
// InvalidAction without mutating the pool if the pool cannot cover
// the cost (the caller chose mana sources insufficient for the spell
// it offered them). Unlike the other mutators, PayCost appends no
// undo-log record — cost payment is not independently invertible,
// only reachable again via rewind to the enclosing choice point or
// turn start.
func (gs *GameState) PayCost(player ids.PlayerID, cost card.Cost) error {
	p := gs.Player(player)
	if p == nil {
		return engineerr.New(engineerr.InvalidAction, "pay_cost: unknown player %d", player)
	}
	pips := []struct {
		color card.Color
		n     int
	}{
		{card.White, cost.White},
		{card.Blue, cost.Blue},
		{card.Black, cost.Black},
		{card.Red, cost.Red},
		{card.Green, cost.Green},
	}
	remaining := p.Pool
	for _, pip := range pips {
		if remaining.Count(pip.color) < pip.n {
			return engineerr.New(engineerr.InvalidAction, "pay_cost: insufficient %s mana", pip.color)
		}
		for i := 0; i < pip.n; i++ {
			remaining.Remove(pip.color)
		}
	}
	if remaining.Count(card.Colorless) < cost.Colorless {
		return engineerr.New(engineerr.InvalidAction, "pay_cost: insufficient colorless mana")
	}
	for i := 0; i < cost.Colorless; i++ {
		remaining.Remove(card.Colorless)
	}
	generic := cost.Generic
	for _, c := range []card.Color{card.Colorless, card.White, card.Blue, card.Black, card.Red, card.Green} {
		for generic > 0 && remaining.Count(c) > 0 {
			remaining.Remove(c)
			generic--
		}
	}
	if generic > 0 {
		return engineerr.New(engineerr.InvalidAction, "pay_cost: insufficient mana to pay generic cost")
	}
	p.Pool = remaining
	return nil
}

// RecordChoicePoint appends a marker for a consulted decision point,
// already carrying the controller's chosen value.
func (gs *GameState) RecordChoicePoint(player ids.PlayerID, choiceID uint64, recordedChoice string) {
	gs.Log.Append(undolog.Record{Kind: undolog.KindChoicePoint, Player: player, ChoiceID: choiceID, RecordedChoice: recordedChoice})
}
