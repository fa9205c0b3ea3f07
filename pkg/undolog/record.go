// Package undolog implements an append-only transcript of atomic
// mutations that can be popped and inverted one at a time, letting any
// prefix of a game's history be rewound without a full state clone.
package undolog

import "github.com/cardforge/engine/pkg/ids"

// Kind discriminates a Record's payload.
type Kind int

const (
	KindMoveCard Kind = iota
	KindTapCard
	KindModifyLife
	KindAddMana
	KindEmptyManaPool
	KindAddCounter
	KindRemoveCounter
	KindAdvanceStep
	KindChangeTurn
	KindPumpCreature
	KindChoicePoint
)

// ZoneRef names a zone a card moved to or from: a player id plus a
// zone kind, or a shared-zone kind with no owning player.
type ZoneRef struct {
	Kind    string // "library", "hand", "graveyard", "exile", "battlefield", "stack"
	Player  ids.PlayerID
	IsShared bool
}

// Record is one logged mutation from a closed set of kinds. Only the
// fields relevant to Kind are populated; the rest are zero.
type Record struct {
	Kind Kind

	// MoveCard
	Card ids.CardID
	From ZoneRef
	To   ZoneRef

	// TapCard
	NewTapped bool

	// ModifyLife / AddMana / EmptyManaPool / ChoicePoint: Player
	Player ids.PlayerID

	// ModifyLife
	LifeDelta int

	// AddMana
	Color int // card.Color, kept as int to avoid an import cycle

	// EmptyManaPool
	PrevPool [6]int

	// AddCounter / RemoveCounter
	CounterKind string
	Amount      int

	// AdvanceStep
	FromStep int
	ToStep   int

	// ChangeTurn
	FromPlayer    ids.PlayerID
	ToPlayer      ids.PlayerID
	NewTurnNumber int

	// PumpCreature
	DeltaPower     int
	DeltaToughness int

	// ChoicePoint
	ChoiceID       uint64 `json:"choice_id"`
	RecordedChoice string
}
