package state

import (
	"io"
	"testing"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/enginelog"
	"github.com/cardforge/engine/pkg/ids"
)

func newTestState(t *testing.T) *GameState {
	t.Helper()
	backend := enginelog.NewBackend(io.Discard, 0)
	logger := backend.Logger("test", enginelog.Verbose)
	gs := New(1, logger, 20, []struct {
		ID   ids.PlayerID
		Name string
	}{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	})
	return gs
}

func addForest(gs *GameState, owner ids.PlayerID) *card.Card {
	id := gs.IDs.NextCardID()
	cd := card.NewCard(id, "Forest", card.Cost{}, card.NewTypeSet(card.TypeLand), owner)
	cd.Subtypes = []string{"Forest"}
	gs.Cards.Insert(id, cd)
	return cd
}

func addBear(gs *GameState, owner ids.PlayerID) *card.Card {
	id := gs.IDs.NextCardID()
	cd := card.NewCard(id, "Grizzly Bears", card.Cost{Generic: 1, Green: 1}, card.NewTypeSet(card.TypeCreature), owner)
	p, tgh := 2, 2
	cd.BasePower, cd.BaseToughness = &p, &tgh
	gs.Cards.Insert(id, cd)
	return cd
}
