package engine

import (
	"io"
	"testing"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/enginelog"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
)

func newTestGame(t *testing.T, seed int64) *state.GameState {
	t.Helper()
	backend := enginelog.NewBackend(io.Discard, 0)
	logger := backend.Logger("test", enginelog.Silent)
	return state.New(seed, logger, 20, []struct {
		ID   ids.PlayerID
		Name string
	}{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	})
}

func newMountain(gs *state.GameState, owner ids.PlayerID) ids.CardID {
	id := gs.IDs.NextCardID()
	cd := card.NewCard(id, "Mountain", card.Cost{}, card.NewTypeSet(card.TypeLand), owner)
	cd.Subtypes = []string{"Mountain"}
	gs.Cards.Insert(id, cd)
	return id
}

func newLightningBolt(gs *state.GameState, owner ids.PlayerID) ids.CardID {
	id := gs.IDs.NextCardID()
	cd := card.NewCard(id, "Lightning Bolt", card.Cost{Red: 1}, card.NewTypeSet(card.TypeInstant), owner)
	cd.Effect = card.Effect{Kind: card.EffectDamage, Amount: 3}
	gs.Cards.Insert(id, cd)
	return id
}

func newBear(gs *state.GameState, owner ids.PlayerID) ids.CardID {
	id := gs.IDs.NextCardID()
	cd := card.NewCard(id, "Grizzly Bears", card.Cost{Generic: 1, Green: 1}, card.NewTypeSet(card.TypeCreature), owner)
	p, tg := 2, 2
	cd.BasePower, cd.BaseToughness = &p, &tg
	cd.Controller = owner
	gs.Cards.Insert(id, cd)
	return id
}

// buildBoltDeck fills player's library with the given number of
// Mountains followed by the given number of Lightning Bolts, then
// shuffles with the game's RNG.
func buildBoltDeck(gs *state.GameState, player ids.PlayerID, mountains, bolts int) {
	pz := gs.Zones(player)
	for i := 0; i < mountains; i++ {
		pz.Library.PushTop(newMountain(gs, player))
	}
	for i := 0; i < bolts; i++ {
		pz.Library.PushTop(newLightningBolt(gs, player))
	}
	pz.Library.Shuffle(gs.RNG)
}

func drawOpeningHand(gs *state.GameState, player ids.PlayerID, n int) {
	for i := 0; i < n; i++ {
		gs.DrawCard(player)
	}
}

func zeroControllers() map[ids.PlayerID]controller.Controller {
	return map[ids.PlayerID]controller.Controller{
		1: controller.Zero{},
		2: controller.Zero{},
	}
}
