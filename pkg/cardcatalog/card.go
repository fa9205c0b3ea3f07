// Package cardcatalog implements loaders that live outside the core
// engine's scope: parsing card, deck, and puzzle text files into the
// in-memory shapes pkg/state consumes by card name.
package cardcatalog

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/engineerr"
)

// CardDefinition is one card's catalog entry, produced by ParseCard and
// consumed by Instantiate to build a pkg/card.Card for a specific
// owner.
type CardDefinition struct {
	Name       string
	ManaCost   card.Cost
	Types      card.TypeSet
	Subtypes   []string
	Power      *int
	Toughness  *int
	OracleText string
}

// ParseCard parses a line-oriented Key:value card file format. Blank
// lines and '#'-prefixed lines are comments; unrecognized keys are
// ignored.
func ParseCard(content string) (*CardDefinition, error) {
	def := &CardDefinition{Types: card.TypeSet{}}
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "Name":
			def.Name = value
		case "ManaCost":
			cost, err := parseManaCost(value)
			if err != nil {
				return nil, err
			}
			def.ManaCost = cost
		case "Types":
			for _, part := range strings.Fields(value) {
				if t := card.Type(part); isCoreType(t) {
					def.Types[t] = true
				} else {
					def.Subtypes = append(def.Subtypes, part)
				}
			}
		case "PT":
			p, t, ok := strings.Cut(value, "/")
			if !ok {
				return nil, engineerr.New(engineerr.InvalidCardFormat, "malformed PT %q", value)
			}
			power, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, engineerr.Wrap(engineerr.InvalidCardFormat, err, "malformed PT power %q", p)
			}
			toughness, err := strconv.Atoi(strings.TrimSpace(t))
			if err != nil {
				return nil, engineerr.Wrap(engineerr.InvalidCardFormat, err, "malformed PT toughness %q", t)
			}
			def.Power, def.Toughness = &power, &toughness
		case "Oracle":
			def.OracleText = value
		}
	}
	if def.Name == "" {
		return nil, engineerr.New(engineerr.InvalidCardFormat, "card file missing Name")
	}
	return def, nil
}

func isCoreType(t card.Type) bool {
	switch t {
	case card.TypeCreature, card.TypeInstant, card.TypeSorcery, card.TypeLand,
		card.TypeArtifact, card.TypeEnchantment, card.TypePlaneswalker:
		return true
	default:
		return false
	}
}

// parseManaCost parses a digit-prefixed generic-plus-pips string (e.g.
// "2RR", "WUBRG", "1C"). A leading run of digits is the generic
// component; each subsequent letter is one pip of that color.
func parseManaCost(s string) (card.Cost, error) {
	var cost card.Cost
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 {
		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return card.Cost{}, engineerr.Wrap(engineerr.InvalidCardFormat, err, "malformed generic mana cost %q", s)
		}
		cost.Generic = n
	}
	for _, r := range s[i:] {
		switch r {
		case 'W':
			cost.White++
		case 'U':
			cost.Blue++
		case 'B':
			cost.Black++
		case 'R':
			cost.Red++
		case 'G':
			cost.Green++
		case 'C':
			cost.Colorless++
		default:
			return card.Cost{}, engineerr.New(engineerr.InvalidCardFormat, "unrecognized mana symbol %q in cost %q", r, s)
		}
	}
	return cost, nil
}

// Colors derives a card's color identity from its mana cost, the same
// rule the original card loader applies: colorless when no colored pip
// is present.
func (d *CardDefinition) Colors() card.ColorSet {
	set := card.ColorSet{}
	if d.ManaCost.White > 0 {
		set[card.White] = true
	}
	if d.ManaCost.Blue > 0 {
		set[card.Blue] = true
	}
	if d.ManaCost.Black > 0 {
		set[card.Black] = true
	}
	if d.ManaCost.Red > 0 {
		set[card.Red] = true
	}
	if d.ManaCost.Green > 0 {
		set[card.Green] = true
	}
	if len(set) == 0 {
		set[card.Colorless] = true
	}
	return set
}
