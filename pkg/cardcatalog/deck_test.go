package cardcatalog

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/enginelog"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
)

func TestParseDeckMainAndSideboard(t *testing.T) {
	content := `
[metadata]
Name=Test Deck

[Main]
20 Mountain
40 Lightning Bolt

[Sideboard]
15 Shock
`
	deck, err := ParseDeck(content)
	require.NoError(t, err)
	require.Len(t, deck.Main, 2)
	require.Equal(t, 60, deck.TotalCards())
	require.Equal(t, "Mountain", deck.Main[0].Name)
	require.Equal(t, 20, deck.Main[0].Count)
	require.Equal(t, "Lightning Bolt", deck.Main[1].Name)
	require.Equal(t, 40, deck.Main[1].Count)
	require.Len(t, deck.Sideboard, 1)
	require.Equal(t, "Shock", deck.Sideboard[0].Name)
}

func TestParseDeckStripsSetSuffix(t *testing.T) {
	deck, err := ParseDeck("[Main]\n4 Lightning Bolt|2ED\n")
	require.NoError(t, err)
	require.Equal(t, "Lightning Bolt", deck.Main[0].Name)
}

func TestParseDeckRejectsEmptyMainDeck(t *testing.T) {
	_, err := ParseDeck("[Sideboard]\n4 Shock\n")
	require.Error(t, err)
}

func TestFillLibraryInstantiatesAndShuffles(t *testing.T) {
	backend := enginelog.NewBackend(io.Discard, 0)
	logger := backend.Logger("test", enginelog.Silent)
	gs := state.New(1, logger, 20, []struct {
		ID   ids.PlayerID
		Name string
	}{{ID: 1, Name: "Alice"}})

	cat := NewCatalog(&CardDefinition{Name: "Mountain", Types: card.TypeSet{card.TypeLand: true}})
	deck := &DeckList{Main: []DeckEntry{{Name: "Mountain", Count: 10}}}
	require.NoError(t, deck.FillLibrary(gs, cat, 1))
	require.Equal(t, 10, gs.Zones(1).Library.Len())
}

func TestFillLibraryRejectsUnknownCard(t *testing.T) {
	backend := enginelog.NewBackend(io.Discard, 0)
	logger := backend.Logger("test", enginelog.Silent)
	gs := state.New(1, logger, 20, []struct {
		ID   ids.PlayerID
		Name string
	}{{ID: 1, Name: "Alice"}})

	deck := &DeckList{Main: []DeckEntry{{Name: "Unobtainium", Count: 1}}}
	require.Error(t, deck.FillLibrary(gs, Catalog{}, 1))
}
