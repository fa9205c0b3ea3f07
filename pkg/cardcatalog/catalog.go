package cardcatalog

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/engineerr"
	"github.com/cardforge/engine/pkg/ids"
)

// Catalog is a name-keyed lookup of parsed card definitions. Deck and
// puzzle loading both resolve card names through one.
type Catalog map[string]*CardDefinition

// NewCatalog builds a Catalog from a set of already-parsed
// definitions, keyed by name. A later definition with the same name
// overwrites an earlier one.
func NewCatalog(defs ...*CardDefinition) Catalog {
	c := make(Catalog, len(defs))
	for _, d := range defs {
		c[d.Name] = d
	}
	return c
}

// Lookup returns the named definition, and whether it was found.
func (c Catalog) Lookup(name string) (*CardDefinition, bool) {
	d, ok := c[name]
	return d, ok
}

// Instantiate resolves name in the catalog and builds a live
// *card.Card for owner, allocating its id from counter. Returns
// InvalidDeckFormat if name isn't in the catalog.
func (c Catalog) Instantiate(counter *ids.Counter, name string, owner ids.PlayerID) (*card.Card, error) {
	def, ok := c.Lookup(name)
	if !ok {
		return nil, engineerr.New(engineerr.InvalidDeckFormat, "unknown card %q", name)
	}
	id := counter.NextCardID()
	cd := card.NewCard(id, def.Name, def.ManaCost, def.Types, owner)
	cd.Subtypes = append([]string(nil), def.Subtypes...)
	cd.Colors = def.Colors()
	cd.BasePower = def.Power
	cd.BaseToughness = def.Toughness
	cd.OracleText = def.OracleText
	return cd, nil
}
