// Package stopcond implements a small stop-condition grammar: stop a
// running game after N total choice records, or after N choice records
// made by a specific player, so it can be snapshotted mid-game.
package stopcond

import (
	"strconv"
	"strings"

	"github.com/cardforge/engine/pkg/engineerr"
)

// Scope restricts a Condition to counting choices by one player, or any
// player.
type Scope int

const (
	ScopeAny Scope = iota
	ScopeP1
	ScopeP2
)

// Condition is a parsed stop condition.
type Condition struct {
	N     int
	Scope Scope
}

// Parse parses one of "N", "N:p1", "N:p2".
func Parse(s string) (*Condition, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, engineerr.New(engineerr.ParseError, "empty stop condition")
	}
	parts := strings.SplitN(s, ":", 2)
	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 0 {
		return nil, engineerr.Wrap(engineerr.ParseError, err, "invalid stop-condition count %q", parts[0])
	}
	cond := &Condition{N: n, Scope: ScopeAny}
	if len(parts) == 2 {
		switch parts[1] {
		case "p1":
			cond.Scope = ScopeP1
		case "p2":
			cond.Scope = ScopeP2
		default:
			return nil, engineerr.New(engineerr.ParseError, "invalid stop-condition scope %q", parts[1])
		}
	}
	return cond, nil
}

// Counts is the running tally the game loop maintains and passes to
// ShouldStop after every logged ChoicePoint record.
type Counts struct {
	Total int
	P1    int
	P2    int
}

// ShouldStop reports whether the condition has fired given the current
// counts.
func (c *Condition) ShouldStop(counts Counts) bool {
	switch c.Scope {
	case ScopeP1:
		return counts.P1 >= c.N
	case ScopeP2:
		return counts.P2 >= c.N
	default:
		return counts.Total >= c.N
	}
}
