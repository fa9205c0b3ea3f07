package engine

import (
	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/state"
	"github.com/decred/slog"
)

// gameView is the read-only handle to GameState a controller callback
// receives, implementing controller.View. It borrows the engine's state
// rather than copying it — controllers run to completion before the
// engine mutates anything further, so no aliasing hazard arises under
// the single-threaded, single-owner execution model.
type gameView struct {
	gs     *state.GameState
	viewer ids.PlayerID
}

func (v *gameView) Viewer() ids.PlayerID { return v.viewer }

func (v *gameView) Hand(player ids.PlayerID) []ids.CardID {
	pz := v.gs.Zones(player)
	if pz == nil {
		return nil
	}
	return pz.Hand.Cards()
}

func (v *gameView) Battlefield() []ids.CardID {
	return v.gs.Battlefield.Cards()
}

func (v *gameView) ZoneOf(c ids.CardID) (string, bool) {
	ref, ok := v.gs.FindZone(c)
	if !ok {
		return "", false
	}
	return string(ref.Kind), true
}

func (v *gameView) Card(c ids.CardID) (*card.Card, bool) {
	return v.gs.Card(c)
}

func (v *gameView) Life(player ids.PlayerID) int {
	if p := v.gs.Player(player); p != nil {
		return p.Life
	}
	return 0
}

func (v *gameView) Pool(player ids.PlayerID) card.Pool {
	if p := v.gs.Player(player); p != nil {
		return p.Pool
	}
	return card.Pool{}
}

func (v *gameView) CanPlayLandNow(player ids.PlayerID) bool {
	p := v.gs.Player(player)
	if p == nil {
		return false
	}
	return p.CanPlayLand() && v.gs.Turn.ActivePlayer == player && v.gs.Turn.CurrentStep.CanPlayLands()
}

func (v *gameView) Logger() slog.Logger {
	return v.gs.Logger
}
