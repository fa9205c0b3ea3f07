package state

import "github.com/cardforge/engine/pkg/zone"

// PlayerZones holds one player's four private zones.
type PlayerZones struct {
	Library   *zone.Zone
	Hand      *zone.Zone
	Graveyard *zone.Zone
	Exile     *zone.Zone
}

func newPlayerZones() *PlayerZones {
	return &PlayerZones{
		Library:   zone.New(),
		Hand:      zone.New(),
		Graveyard: zone.New(),
		Exile:     zone.New(),
	}
}

// ZoneKind names one of the seven zone kinds a card can occupy.
type ZoneKind string

const (
	ZoneLibrary     ZoneKind = "library"
	ZoneHand        ZoneKind = "hand"
	ZoneGraveyard   ZoneKind = "graveyard"
	ZoneExile       ZoneKind = "exile"
	ZoneBattlefield ZoneKind = "battlefield"
	ZoneStack       ZoneKind = "stack"
)

func (zk ZoneKind) isShared() bool {
	return zk == ZoneBattlefield || zk == ZoneStack
}

func (pz *PlayerZones) byKind(kind ZoneKind) *zone.Zone {
	switch kind {
	case ZoneLibrary:
		return pz.Library
	case ZoneHand:
		return pz.Hand
	case ZoneGraveyard:
		return pz.Graveyard
	case ZoneExile:
		return pz.Exile
	default:
		return nil
	}
}
