package controller

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
)

// Interactive prints an option menu through the view's logger and
// reads an index from an input source, for a human player. It shares
// the same callback signatures as every other controller but is out of
// scope for determinism tests.
type Interactive struct {
	in *bufio.Scanner
}

// NewInteractive builds an Interactive controller reading lines from r.
func NewInteractive(r io.Reader) *Interactive {
	return &Interactive{in: bufio.NewScanner(r)}
}

func (i *Interactive) readIndex(view View, prompt string, n int) int {
	view.Logger().Infof(prompt)
	if n == 0 {
		return 0
	}
	if !i.in.Scan() {
		return 0
	}
	idx, err := strconv.Atoi(strings.TrimSpace(i.in.Text()))
	if err != nil {
		return 0
	}
	return clampIndex(idx, n)
}

func (i *Interactive) ChooseSpellAbilityToPlay(view View, available []Ability) (Ability, bool) {
	if len(available) == 0 {
		return Ability{}, false
	}
	menu := "choose an ability (or a negative number to pass):\n"
	for idx, a := range available {
		menu += fmt.Sprintf("  %d: %+v\n", idx, a)
	}
	view.Logger().Infof(menu)
	if !i.in.Scan() {
		return Ability{}, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(i.in.Text()))
	if err != nil || idx < 0 || idx >= len(available) {
		return Ability{}, false
	}
	return available[idx], true
}

func (i *Interactive) ChooseTargets(view View, _ ids.CardID, validTargets []ids.CardID) []ids.CardID {
	if len(validTargets) == 0 {
		return nil
	}
	idx := i.readIndex(view, "choose a target index", len(validTargets))
	return []ids.CardID{validTargets[idx]}
}

func (i *Interactive) ChooseManaSourcesToPay(view View, cost card.Cost, available []ids.CardID) []ids.CardID {
	n := cost.Total()
	if n > len(available) {
		n = len(available)
	}
	i.readIndex(view, "press enter to tap the first available sources", len(available))
	return capAt(available, n)
}

func (i *Interactive) ChooseAttackers(view View, legalCreatures []ids.CardID) []ids.CardID {
	i.readIndex(view, "press enter to declare all legal creatures as attackers", len(legalCreatures))
	return legalCreatures
}

func (i *Interactive) ChooseBlockers(view View, _ []ids.CardID, _ []ids.CardID) []BlockAssignment {
	view.Logger().Infof("press enter to decline blocks")
	i.in.Scan()
	return nil
}

func (i *Interactive) ChooseDamageAssignmentOrder(view View, _ ids.CardID, blockers []ids.CardID) []ids.CardID {
	i.readIndex(view, "press enter to keep default damage order", len(blockers))
	return blockers
}

func (i *Interactive) ChooseCardsToDiscard(view View, hand []ids.CardID, n int) []ids.CardID {
	i.readIndex(view, "press enter to discard from the front of hand", len(hand))
	return capAt(hand, n)
}

func (i *Interactive) OnPriorityPassed(view View) {
	view.Logger().Debugf("priority passed")
}

func (i *Interactive) OnGameEnd(view View, won bool) {
	view.Logger().Infof("game ended, won=%v", won)
}

func (i *Interactive) GetSnapshotState() any { return nil }

var _ Controller = (*Interactive)(nil)
