package state

import "github.com/cardforge/engine/pkg/ids"

// Combat is the combat sub-state: three ordered mappings keyed by
// CardId plus an active flag. All three support deterministic,
// insertion-order iteration — AttackerBlockers is derived from Blocks
// rather than stored redundantly, computed fresh each time it's asked
// for since combat-sized inputs are tiny (a handful of creatures).
type Combat struct {
	attackerOrder []ids.CardID
	defenders     map[ids.CardID]ids.PlayerID

	blocks []BlockPair

	Active bool
}

// BlockPair is one declared (blocker, attacker) assignment, in the
// order choose_blockers returned it.
type BlockPair struct {
	Blocker  ids.CardID
	Attacker ids.CardID
}

// NewCombat returns an empty, inactive combat state.
func NewCombat() *Combat {
	return &Combat{defenders: make(map[ids.CardID]ids.PlayerID)}
}

// DeclareAttacker records attacker as attacking defender, appending to
// the attack order if new.
func (c *Combat) DeclareAttacker(attacker ids.CardID, defender ids.PlayerID) {
	if _, ok := c.defenders[attacker]; !ok {
		c.attackerOrder = append(c.attackerOrder, attacker)
	}
	c.defenders[attacker] = defender
}

// IsAttacking reports whether id was declared as an attacker this
// combat.
func (c *Combat) IsAttacking(id ids.CardID) bool {
	_, ok := c.defenders[id]
	return ok
}

// DefenderOf returns the player attacker is attacking.
func (c *Combat) DefenderOf(attacker ids.CardID) (ids.PlayerID, bool) {
	d, ok := c.defenders[attacker]
	return d, ok
}

// Attackers returns the declared attackers in declaration order.
func (c *Combat) Attackers() []ids.CardID {
	out := make([]ids.CardID, len(c.attackerOrder))
	copy(out, c.attackerOrder)
	return out
}

// DeclareBlock records blocker as blocking attacker, appending to the
// block list.
func (c *Combat) DeclareBlock(blocker, attacker ids.CardID) {
	c.blocks = append(c.blocks, BlockPair{Blocker: blocker, Attacker: attacker})
}

// IsBlocking reports whether id has been declared as a blocker.
func (c *Combat) IsBlocking(id ids.CardID) bool {
	for _, b := range c.blocks {
		if b.Blocker == id {
			return true
		}
	}
	return false
}

// BlockersOf returns, in declaration order, the blockers assigned to
// attacker (the derived attacker_blockers mapping).
func (c *Combat) BlockersOf(attacker ids.CardID) []ids.CardID {
	var out []ids.CardID
	for _, b := range c.blocks {
		if b.Attacker == attacker {
			out = append(out, b.Blocker)
		}
	}
	return out
}

// Blocks returns the declared (blocker, attacker) pairs in declaration
// order, for export/snapshotting.
func (c *Combat) Blocks() []BlockPair {
	out := make([]BlockPair, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// IsBlocked reports whether attacker has at least one blocker.
func (c *Combat) IsBlocked(attacker ids.CardID) bool {
	return len(c.BlockersOf(attacker)) > 0
}

// Clear resets combat to an empty, inactive state (called at end of
// combat / cleanup).
func (c *Combat) Clear() {
	c.attackerOrder = nil
	c.defenders = make(map[ids.CardID]ids.PlayerID)
	c.blocks = nil
	c.Active = false
}
