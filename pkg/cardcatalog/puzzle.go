package cardcatalog

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/engineerr"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
)

// CardPlacement is one card-list entry of a puzzle's zone contents:
// a card name plus the modifier clauses that follow it.
type CardPlacement struct {
	Name       string
	Tapped     bool
	SummonSick bool
	Counters   map[card.CounterKind]int
}

// PuzzlePlayerState is one player's section of the [state] body.
type PuzzlePlayerState struct {
	Life        int
	LandsPlayed int
	Hand        []CardPlacement
	Battlefield []CardPlacement
	Graveyard   []CardPlacement
	Library     []CardPlacement
	Exile       []CardPlacement
}

// PuzzleFile is a parsed puzzle file: free-form metadata plus a
// structured [state] body.
type PuzzleFile struct {
	Metadata     map[string]string
	Turn         int
	ActivePlayer int // 0 or 1
	ActiveStep   state.Step
	Players      [2]PuzzlePlayerState
}

type puzzleSection int

const (
	puzzleSectionNone puzzleSection = iota
	puzzleSectionMetadata
	puzzleSectionState
)

// ParsePuzzle parses a puzzle file.
func ParsePuzzle(content string) (*PuzzleFile, error) {
	pf := &PuzzleFile{Metadata: map[string]string{}}
	section := puzzleSectionNone
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			switch strings.Trim(line, "[]") {
			case "metadata":
				section = puzzleSectionMetadata
			case "state":
				section = puzzleSectionState
			default:
				section = puzzleSectionNone
			}
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			key, value, ok = strings.Cut(line, ":")
		}
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch section {
		case puzzleSectionMetadata:
			pf.Metadata[key] = value
		case puzzleSectionState:
			if err := pf.applyStateKey(key, value); err != nil {
				return nil, err
			}
		}
	}
	return pf, nil
}

func (pf *PuzzleFile) applyStateKey(key, value string) error {
	switch {
	case key == "turn":
		n, err := strconv.Atoi(value)
		if err != nil {
			return engineerr.Wrap(engineerr.ParseError, err, "malformed turn %q", value)
		}
		pf.Turn = n
	case key == "activeplayer":
		idx, err := parsePlayerIndex(value)
		if err != nil {
			return err
		}
		pf.ActivePlayer = idx
	case key == "activephase":
		step, ok := parseStepName(value)
		if !ok {
			return engineerr.New(engineerr.ParseError, "unrecognized phase %q", value)
		}
		pf.ActiveStep = step
	case strings.HasPrefix(key, "p") && len(key) > 1:
		idx, rest, err := splitPlayerPrefixedKey(key)
		if err != nil {
			return err
		}
		return pf.applyPlayerKey(idx, rest, value)
	}
	return nil
}

func splitPlayerPrefixedKey(key string) (int, string, error) {
	if len(key) < 2 || key[0] != 'p' {
		return 0, "", engineerr.New(engineerr.ParseError, "malformed player-scoped key %q", key)
	}
	switch {
	case strings.HasPrefix(key, "p0"):
		return 0, key[2:], nil
	case strings.HasPrefix(key, "p1"):
		return 1, key[2:], nil
	default:
		return 0, "", engineerr.New(engineerr.ParseError, "malformed player-scoped key %q", key)
	}
}

func (pf *PuzzleFile) applyPlayerKey(idx int, field, value string) error {
	ps := &pf.Players[idx]
	switch field {
	case "life":
		n, err := strconv.Atoi(value)
		if err != nil {
			return engineerr.Wrap(engineerr.ParseError, err, "malformed life %q", value)
		}
		ps.Life = n
	case "landsplayed":
		n, err := strconv.Atoi(value)
		if err != nil {
			return engineerr.Wrap(engineerr.ParseError, err, "malformed landsplayed %q", value)
		}
		ps.LandsPlayed = n
	case "hand":
		ps.Hand = parseCardList(value)
	case "battlefield":
		ps.Battlefield = parseCardList(value)
	case "graveyard":
		ps.Graveyard = parseCardList(value)
	case "library":
		ps.Library = parseCardList(value)
	case "exile":
		ps.Exile = parseCardList(value)
	}
	return nil
}

func parsePlayerIndex(value string) (int, error) {
	switch value {
	case "p0":
		return 0, nil
	case "p1":
		return 1, nil
	default:
		return 0, engineerr.New(engineerr.ParseError, "unrecognized player %q", value)
	}
}

func parseStepName(value string) (state.Step, bool) {
	for s := state.Untap; s <= state.Cleanup; s++ {
		if strings.EqualFold(s.String(), value) {
			return s, true
		}
	}
	return 0, false
}

// parseCardList splits a ';'-separated card list into placements, each
// "CardName" optionally followed by one or more "|clause" modifiers.
func parseCardList(value string) []CardPlacement {
	var out []CardPlacement
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		placement := CardPlacement{Name: strings.TrimSpace(parts[0]), Counters: map[card.CounterKind]int{}}
		for _, clause := range parts[1:] {
			applyModifierClause(&placement, strings.TrimSpace(clause))
		}
		out = append(out, placement)
	}
	return out
}

func applyModifierClause(p *CardPlacement, clause string) {
	switch {
	case clause == "Tapped":
		p.Tapped = true
	case clause == "SummonSick":
		p.SummonSick = true
	case strings.HasPrefix(clause, "Counters:"):
		spec := strings.TrimPrefix(clause, "Counters:")
		kindStr, countStr, ok := strings.Cut(spec, "=")
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return
		}
		p.Counters[shortCounterKind(strings.TrimSpace(kindStr))] = n
	}
}

// shortCounterKind maps the puzzle file's short counter tokens
// ("P1P1", "M1M1") to their CounterKind; any other token is treated as
// the kind's literal name.
func shortCounterKind(token string) card.CounterKind {
	switch token {
	case "P1P1":
		return card.PlusOnePlusOne
	case "M1M1":
		return card.MinusOneMinusOne
	default:
		return card.CounterKind(token)
	}
}

// Load builds a GameState from pf, resolving every named card through
// cat. Cards are placed directly into their target zones — puzzle
// setup bypasses the normal draw/play mutators entirely, mirroring how
// the original puzzle loader constructs board state card by card
// rather than by playing a game up to it.
func Load(pf *PuzzleFile, cat Catalog, gs *state.GameState) error {
	gs.Turn.Number = pf.Turn
	gs.Turn.CurrentStep = pf.ActiveStep
	gs.Turn.ActivePlayerIdx = pf.ActivePlayer
	if pf.ActivePlayer < len(gs.Players) {
		gs.Turn.ActivePlayer = gs.Players[pf.ActivePlayer].ID
	}

	for idx, ps := range pf.Players {
		if idx >= len(gs.Players) {
			break
		}
		player := gs.Players[idx]
		player.Life = ps.Life
		player.LandsPlayedThisTurn = ps.LandsPlayed

		pz := gs.Zones(player.ID)
		placements := []struct {
			list []CardPlacement
			push func(ids.CardID)
		}{
			{ps.Hand, pz.Hand.PushTop},
			{ps.Battlefield, gs.Battlefield.PushTop},
			{ps.Graveyard, pz.Graveyard.PushTop},
			{ps.Library, pz.Library.PushTop},
			{ps.Exile, pz.Exile.PushTop},
		}
		for _, group := range placements {
			for _, placement := range group.list {
				cd, err := cat.Instantiate(&gs.IDs, placement.Name, player.ID)
				if err != nil {
					return err
				}
				cd.Tapped = placement.Tapped
				for kind, n := range placement.Counters {
					cd.Counters.Add(kind, n)
				}
				if cd.IsCreature() {
					if placement.SummonSick {
						cd.TurnEnteredBattlefield = pf.Turn
					} else {
						cd.TurnEnteredBattlefield = pf.Turn - 1
					}
					cd.HasEnteredBattlefield = true
				}
				gs.Cards.Insert(cd.ID, cd)
				group.push(cd.ID)
			}
		}
	}
	return nil
}
