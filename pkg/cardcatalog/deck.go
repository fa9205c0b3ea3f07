package cardcatalog

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/cardforge/engine/pkg/engineerr"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
)

// DeckEntry is one line of a deck list: a card name and its count.
type DeckEntry struct {
	Name  string
	Count int
}

// DeckList is a parsed deck file: a main deck and an optional
// sideboard, each a sequence of name/count entries.
type DeckList struct {
	Main      []DeckEntry
	Sideboard []DeckEntry
}

// TotalCards returns the number of cards the main deck contains.
func (d *DeckList) TotalCards() int {
	n := 0
	for _, e := range d.Main {
		n += e.Count
	}
	return n
}

type deckSection int

const (
	sectionNone deckSection = iota
	sectionMain
	sectionSideboard
)

// ParseDeck parses a deck file: optional [metadata], [Main], and
// [Sideboard] sections, each line "count name" or "count name|SET".
func ParseDeck(content string) (*DeckList, error) {
	deck := &DeckList{}
	section := sectionNone
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			switch strings.Trim(line, "[]") {
			case "Main":
				section = sectionMain
			case "Sideboard":
				section = sectionSideboard
			default:
				section = sectionNone
			}
			continue
		}
		countStr, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return nil, engineerr.Wrap(engineerr.InvalidDeckFormat, err, "malformed deck line %q", line)
		}
		name, _, _ := strings.Cut(strings.TrimSpace(rest), "|")
		entry := DeckEntry{Name: strings.TrimSpace(name), Count: count}
		switch section {
		case sectionMain:
			deck.Main = append(deck.Main, entry)
		case sectionSideboard:
			deck.Sideboard = append(deck.Sideboard, entry)
		}
	}
	if len(deck.Main) == 0 {
		return nil, engineerr.New(engineerr.InvalidDeckFormat, "deck file has an empty main deck")
	}
	return deck, nil
}

// FillLibrary instantiates every card the main deck names (resolved
// through cat) into player's library in an unshuffled but otherwise
// unspecified order, then shuffles with gs's RNG. Returns
// InvalidDeckFormat if any named card is not in cat.
func (d *DeckList) FillLibrary(gs *state.GameState, cat Catalog, player ids.PlayerID) error {
	pz := gs.Zones(player)
	if pz == nil {
		return engineerr.New(engineerr.InvalidAction, "unknown player %d", player)
	}
	for _, entry := range d.Main {
		for i := 0; i < entry.Count; i++ {
			cd, err := cat.Instantiate(&gs.IDs, entry.Name, player)
			if err != nil {
				return err
			}
			gs.Cards.Insert(cd.ID, cd)
			pz.Library.PushTop(cd.ID)
		}
	}
	pz.Library.Shuffle(gs.RNG)
	return nil
}
