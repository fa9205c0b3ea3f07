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

func TestParsePuzzleBasicFields(t *testing.T) {
	content := `
[metadata]
Name:Test Puzzle
Goal:Win

[state]
turn=1
activeplayer=p0
activephase=Main1
p0life=20
p0hand=Lightning Bolt
p0battlefield=Mountain
p1life=10
`
	pf, err := ParsePuzzle(content)
	require.NoError(t, err)
	require.Equal(t, 1, pf.Turn)
	require.Equal(t, 0, pf.ActivePlayer)
	require.Equal(t, state.Main1, pf.ActiveStep)
	require.Equal(t, 20, pf.Players[0].Life)
	require.Equal(t, 10, pf.Players[1].Life)
	require.Len(t, pf.Players[0].Hand, 1)
	require.Equal(t, "Lightning Bolt", pf.Players[0].Hand[0].Name)
	require.Len(t, pf.Players[0].Battlefield, 1)
	require.Equal(t, "Mountain", pf.Players[0].Battlefield[0].Name)
}

func TestParsePuzzleCardModifiers(t *testing.T) {
	content := `
[state]
turn=2
activeplayer=p0
activephase=Main1
p0life=20
p0battlefield=Grizzly Bears|Counters:P1P1=2|Tapped
p1life=20
`
	pf, err := ParsePuzzle(content)
	require.NoError(t, err)
	placement := pf.Players[0].Battlefield[0]
	require.Equal(t, "Grizzly Bears", placement.Name)
	require.True(t, placement.Tapped)
	require.Equal(t, 2, placement.Counters[card.PlusOnePlusOne])
}

func TestLoadAppliesPuzzleStateToGame(t *testing.T) {
	backend := enginelog.NewBackend(io.Discard, 0)
	logger := backend.Logger("test", enginelog.Silent)
	gs := state.New(1, logger, 20, []struct {
		ID   ids.PlayerID
		Name string
	}{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}})

	cat := NewCatalog(
		&CardDefinition{Name: "Mountain", Types: card.TypeSet{card.TypeLand: true}},
		&CardDefinition{Name: "Grizzly Bears", Types: card.TypeSet{card.TypeCreature: true},
			Power: intPtr(2), Toughness: intPtr(2)},
	)

	content := `
[state]
turn=3
activeplayer=p1
activephase=Main2
p0life=15
p0battlefield=Grizzly Bears|Counters:P1P1=1|SummonSick
p1life=18
p1battlefield=Mountain|Tapped
`
	pf, err := ParsePuzzle(content)
	require.NoError(t, err)
	require.NoError(t, Load(pf, cat, gs))

	require.Equal(t, 3, gs.Turn.Number)
	require.Equal(t, state.Main2, gs.Turn.CurrentStep)
	require.Equal(t, 1, gs.Turn.ActivePlayerIdx)
	require.Equal(t, ids.PlayerID(2), gs.Turn.ActivePlayer)
	require.Equal(t, 15, gs.Player(1).Life)
	require.Equal(t, 18, gs.Player(2).Life)
	require.Equal(t, 2, gs.Battlefield.Len())

	for _, id := range gs.Battlefield.Cards() {
		cd, _ := gs.Card(id)
		switch cd.Name {
		case "Grizzly Bears":
			require.Equal(t, 1, cd.Counters.Count(card.PlusOnePlusOne))
			require.Equal(t, 3, cd.TurnEnteredBattlefield)
		case "Mountain":
			require.True(t, cd.Tapped)
		}
	}
}

func intPtr(n int) *int { return &n }
