package state

import (
	"math/rand"
	"sort"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/undolog"
	"github.com/cardforge/engine/pkg/zone"
	"github.com/decred/slog"
)

// PlayerZonesExport is the JSON-serializable form of a player's four
// private zones: each zone reduces to its bottom-to-top id sequence.
type PlayerZonesExport struct {
	Library   []ids.CardID `json:"library"`
	Hand      []ids.CardID `json:"hand"`
	Graveyard []ids.CardID `json:"graveyard"`
	Exile     []ids.CardID `json:"exile"`
}

// CombatExport is the JSON-serializable form of Combat: the three
// insertion-ordered mappings, flattened to slices of pairs so the
// export carries no Go maps (whose JSON encoding reorders keys
// lexicographically, which is harmless for string keys but worth
// avoiding for the integer-keyed defenders map).
type CombatExport struct {
	Active     bool                `json:"active"`
	Attackers  []ids.CardID        `json:"attackers"`
	Defenders  []AttackerDefender  `json:"defenders"`
	Blocks     []BlockPair         `json:"blocks"`
}

// AttackerDefender is one (attacker, defending player) pairing.
type AttackerDefender struct {
	Attacker ids.CardID   `json:"attacker"`
	Defender ids.PlayerID `json:"defender"`
}

// Export is the canonical, fully-exported snapshot of a GameState.
// Every field the game loop cares about is represented with stable
// JSON tags, so pkg/statehash's field-strip list can find them.
type Export struct {
	Cards       []*card.Card                         `json:"cards"`
	Players     []*card.Player                        `json:"players"`
	Zones       map[ids.PlayerID]*PlayerZonesExport    `json:"zones"`
	Battlefield []ids.CardID                          `json:"battlefield"`
	Stack       []ids.CardID                           `json:"stack"`
	Turn        Turn                                   `json:"turn"`
	Combat      CombatExport                           `json:"combat"`
	Seed        int64                                  `json:"seed"`
	NextID      uint32                                 `json:"next_id"`
	UndoLog     []undolog.Record                       `json:"undo_log"`
	Logger      string                                 `json:"logger"`
}

// Export produces a deterministic, serializable snapshot of gs. Card
// and zone iteration is sorted by id rather than following the
// entity store's internal bucket order, so two GameStates reaching the
// same logical state always export byte-identical JSON.
func (gs *GameState) Export() *Export {
	var cardList []*card.Card
	gs.Cards.Iter(func(id ids.CardID, c *card.Card) {
		cardList = append(cardList, c)
	})
	sort.Slice(cardList, func(i, j int) bool { return cardList[i].ID < cardList[j].ID })

	zones := make(map[ids.PlayerID]*PlayerZonesExport, len(gs.Players))
	for _, p := range gs.Players {
		pz := gs.zones[p.ID]
		zones[p.ID] = &PlayerZonesExport{
			Library:   pz.Library.Cards(),
			Hand:      pz.Hand.Cards(),
			Graveyard: pz.Graveyard.Cards(),
			Exile:     pz.Exile.Cards(),
		}
	}

	var defenders []AttackerDefender
	for _, a := range gs.Combat.Attackers() {
		if d, ok := gs.Combat.DefenderOf(a); ok {
			defenders = append(defenders, AttackerDefender{Attacker: a, Defender: d})
		}
	}

	return &Export{
		Cards:       cardList,
		Players:     gs.Players,
		Zones:       zones,
		Battlefield: gs.Battlefield.Cards(),
		Stack:       gs.Stack.Cards(),
		Turn:        gs.Turn,
		Combat: CombatExport{
			Active:    gs.Combat.Active,
			Attackers: gs.Combat.Attackers(),
			Defenders: defenders,
			Blocks:    gs.Combat.Blocks(),
		},
		Seed:    gs.Seed,
		NextID:  gs.IDs.Peek(),
		UndoLog: gs.Log.Records(),
		Logger:  "",
	}
}

// FromExport rebuilds a GameState from a previously-produced Export.
// GameState's own RNG is only ever drawn from during initial deck
// shuffling, which has already happened by the time a snapshot can be
// taken, so reseeding it from the recorded seed (rather than capturing
// its draw position, as controller.Random's snapshot state does) loses
// nothing.
func FromExport(exp *Export, logger slog.Logger) *GameState {
	gs := &GameState{
		Cards:       ids.NewStore[ids.CardID, *card.Card](),
		playerIdx:   make(map[ids.PlayerID]int, len(exp.Players)),
		zones:       make(map[ids.PlayerID]*PlayerZones, len(exp.Players)),
		Battlefield: zone.New(exp.Battlefield...),
		Stack:       zone.New(exp.Stack...),
		Combat:      NewCombat(),
		Seed:        exp.Seed,
		RNG:         rand.New(rand.NewSource(exp.Seed)),
		Logger:      logger,
		Log:         undolog.New(),
	}

	for _, c := range exp.Cards {
		gs.Cards.Insert(c.ID, c)
	}

	for i, p := range exp.Players {
		gs.Players = append(gs.Players, p)
		gs.playerIdx[p.ID] = i
		pze := exp.Zones[p.ID]
		gs.zones[p.ID] = &PlayerZones{
			Library:   zone.New(pze.Library...),
			Hand:      zone.New(pze.Hand...),
			Graveyard: zone.New(pze.Graveyard...),
			Exile:     zone.New(pze.Exile...),
		}
	}

	gs.Turn = exp.Turn

	gs.Combat.Active = exp.Combat.Active
	gs.Combat.attackerOrder = append([]ids.CardID(nil), exp.Combat.Attackers...)
	defenders := make(map[ids.CardID]ids.PlayerID, len(exp.Combat.Defenders))
	for _, ad := range exp.Combat.Defenders {
		defenders[ad.Attacker] = ad.Defender
	}
	gs.Combat.defenders = defenders
	gs.Combat.blocks = append([]BlockPair(nil), exp.Combat.Blocks...)

	gs.IDs.Restore(exp.NextID)
	for _, r := range exp.UndoLog {
		gs.Log.Append(r)
	}

	return gs
}
