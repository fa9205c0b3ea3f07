// Package card implements the card instance, player, and counter-kind
// data model shared by every other component: an open-ended named card
// pool with type lines, keywords, and counters, built from exported
// fields plus a plain constructor.
package card

import "github.com/cardforge/engine/pkg/ids"

// Type is one of the handful of core card types a permanent or spell
// can have. A card's Types is a set: most cards have exactly one, some
// (e.g. artifact creatures) have several.
type Type string

const (
	TypeCreature    Type = "Creature"
	TypeInstant     Type = "Instant"
	TypeSorcery     Type = "Sorcery"
	TypeLand        Type = "Land"
	TypeArtifact    Type = "Artifact"
	TypeEnchantment Type = "Enchantment"
	TypePlaneswalker Type = "Planeswalker"
)

// TypeSet is a small set of core types.
type TypeSet map[Type]bool

func NewTypeSet(types ...Type) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = true
	}
	return s
}

func (s TypeSet) Has(t Type) bool { return s[t] }

// Keyword is a named keyword ability (e.g. "Flying", "Trample",
// "Haste"). The engine stores keywords as an opaque set; it grants no
// rules meaning to any keyword beyond what pkg/state's combat and
// priority logic explicitly checks for.
type Keyword string

type KeywordSet map[Keyword]bool

func NewKeywordSet(kws ...Keyword) KeywordSet {
	s := make(KeywordSet, len(kws))
	for _, k := range kws {
		s[k] = true
	}
	return s
}

func (s KeywordSet) Has(k Keyword) bool { return s[k] }

// EffectKind is the small, closed set of structured spell effects the
// core resolves directly. Oracle text carries the full rules prose;
// EffectKind/Amount is the catalog loader's minimal machine-readable
// distillation of it, covering direct damage plus a handful of other
// common effects. A card with EffectNone still resolves (moves to its
// resting zone) but changes no other state.
type EffectKind string

const (
	EffectNone     EffectKind = ""
	EffectDamage   EffectKind = "Damage"
	EffectDraw     EffectKind = "Draw"
	EffectLifeGain EffectKind = "LifeGain"
	EffectDestroy  EffectKind = "Destroy"
	EffectPump     EffectKind = "Pump"
	EffectMill     EffectKind = "Mill"
)

// Effect is a card's structured resolution effect, when it has one.
type Effect struct {
	Kind          EffectKind
	Amount        int
	PumpToughness int // additional toughness delta for EffectPump; Amount carries power
}

// Card is one physical card instance: immutable printed fields plus the
// mutable battlefield state (tapped, counters, P/T bonuses, entry turn)
// that only applies once the card has a zone.
type Card struct {
	ID ids.CardID `json:"id"`

	// Printed fields, fixed for the life of the card.
	Name          string   `json:"name"`
	PrintedCost   Cost     `json:"printed_cost"`
	Types         TypeSet  `json:"types"`
	Subtypes      []string `json:"subtypes"`
	Colors        ColorSet `json:"colors"`
	BasePower     *int     `json:"base_power"`
	BaseToughness *int     `json:"base_toughness"`
	OracleText    string   `json:"oracle_text"`
	Keywords      KeywordSet `json:"keywords"`
	Effect        Effect   `json:"effect"`

	// Ownership and control.
	Owner      ids.PlayerID `json:"owner"`
	Controller ids.PlayerID `json:"controller"`

	// Battlefield state, meaningless while the card sits in library,
	// hand, or graveyard.
	Tapped                 bool     `json:"tapped"`
	Counters               Counters `json:"counters"`
	PowerBonus             int      `json:"power_bonus"`
	ToughnessBonus         int      `json:"toughness_bonus"`
	TurnEnteredBattlefield int      `json:"turn_entered_battlefield"`
	HasEnteredBattlefield  bool     `json:"has_entered_battlefield"`
}

// NewCard constructs a card instance owned and initially controlled by
// owner. Counters starts empty; BasePower/BaseToughness are left nil
// for non-creatures.
func NewCard(id ids.CardID, name string, cost Cost, types TypeSet, owner ids.PlayerID) *Card {
	return &Card{
		ID:          id,
		Name:        name,
		PrintedCost: cost,
		Types:       types,
		Colors:      ColorSet{},
		Keywords:    KeywordSet{},
		Owner:       owner,
		Controller:  owner,
		Counters:    Counters{},
	}
}

// IsCreature reports whether the card is currently a creature.
func (c *Card) IsCreature() bool { return c.Types.Has(TypeCreature) }

// IsLand reports whether the card is a land.
func (c *Card) IsLand() bool { return c.Types.Has(TypeLand) }

// Power returns the card's current power: base power plus counter and
// continuous-effect bonuses. Returns 0, false for non-creatures with no
// base power set.
func (c *Card) Power() (int, bool) {
	if c.BasePower == nil {
		return 0, false
	}
	dp, _ := c.Counters.PTBonus()
	return *c.BasePower + dp + c.PowerBonus, true
}

// Toughness returns the card's current toughness analogously to Power.
func (c *Card) Toughness() (int, bool) {
	if c.BaseToughness == nil {
		return 0, false
	}
	_, dt := c.Counters.PTBonus()
	return *c.BaseToughness + dt + c.ToughnessBonus, true
}

// HasSubtype reports whether sub is among the card's subtypes.
func (c *Card) HasSubtype(sub string) bool {
	for _, s := range c.Subtypes {
		if s == sub {
			return true
		}
	}
	return false
}
