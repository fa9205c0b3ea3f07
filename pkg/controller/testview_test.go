package controller

import (
	"io"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/enginelog"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/decred/slog"
)

type fakeView struct {
	viewer ids.PlayerID
	hand   []ids.CardID
	logger slog.Logger
}

func newFakeView(viewer ids.PlayerID, hand ...ids.CardID) *fakeView {
	backend := enginelog.NewBackend(io.Discard, 0)
	return &fakeView{viewer: viewer, hand: hand, logger: backend.Logger("test", enginelog.Verbose)}
}

func (v *fakeView) Viewer() ids.PlayerID                    { return v.viewer }
func (v *fakeView) Hand(ids.PlayerID) []ids.CardID          { return v.hand }
func (v *fakeView) Battlefield() []ids.CardID               { return nil }
func (v *fakeView) ZoneOf(ids.CardID) (string, bool)        { return "", false }
func (v *fakeView) Card(ids.CardID) (*card.Card, bool)      { return nil, false }
func (v *fakeView) Life(ids.PlayerID) int                   { return 20 }
func (v *fakeView) Pool(ids.PlayerID) card.Pool             { return card.Pool{} }
func (v *fakeView) CanPlayLandNow(ids.PlayerID) bool        { return true }
func (v *fakeView) Logger() slog.Logger                     { return v.logger }

var _ View = (*fakeView)(nil)
