package engine

import "github.com/cardforge/engine/pkg/card"

func basicLandColorOf(cd *card.Card) (card.Color, bool) {
	for _, sub := range cd.Subtypes {
		if c, ok := card.BasicLandColor(sub); ok {
			return c, true
		}
	}
	return 0, false
}
