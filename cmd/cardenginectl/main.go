// Command cardenginectl drives one headless game from the command
// line: two deck files, a seed, one controller spec per player, and an
// optional stop condition.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/decred/slog"

	"github.com/cardforge/engine/pkg/cardcatalog"
	"github.com/cardforge/engine/pkg/controller"
	"github.com/cardforge/engine/pkg/engine"
	"github.com/cardforge/engine/pkg/enginelog"
	"github.com/cardforge/engine/pkg/ids"
	"github.com/cardforge/engine/pkg/snapshot"
	"github.com/cardforge/engine/pkg/snapshotstore"
	"github.com/cardforge/engine/pkg/state"
	"github.com/cardforge/engine/pkg/stopcond"
)

const openingHandSize = 7

func main() {
	var (
		deck1Path  string
		deck2Path  string
		cardsPath  string
		seed       int64
		life       int
		maxTurns   int
		p1Spec     string
		p2Spec     string
		stopSpec   string
		verbosity  string
		snapDBPath string
		runID      string
		resume     bool
	)
	flag.StringVar(&deck1Path, "deck1", "", "Path to player 1's deck file")
	flag.StringVar(&deck2Path, "deck2", "", "Path to player 2's deck file")
	flag.StringVar(&cardsPath, "cards", "", "Path to a directory of one card file per *.card")
	flag.Int64Var(&seed, "seed", 0, "Deterministic RNG seed (0 = derived from the current time)")
	flag.IntVar(&life, "life", 20, "Starting life total for each player")
	flag.IntVar(&maxTurns, "maxturns", engine.DefaultMaxTurns, "Turn limit before the game is called a draw")
	flag.StringVar(&p1Spec, "p1", "zero", "Player 1 controller: zero|random|fixed:i,j,k|heuristic|human")
	flag.StringVar(&p2Spec, "p2", "zero", "Player 2 controller: zero|random|fixed:i,j,k|heuristic|human")
	flag.StringVar(&stopSpec, "stop", "", "Stop condition, e.g. \"50\" or \"50:p1\" (empty = run to completion)")
	flag.StringVar(&verbosity, "verbosity", "normal", "Log verbosity: silent|minimal|normal|verbose")
	flag.StringVar(&snapDBPath, "snapshot-db", "", "Path to a sqlite snapshot store (required with -run-id)")
	flag.StringVar(&runID, "run-id", "", "Run id to save to (or resume from, with -resume)")
	flag.BoolVar(&resume, "resume", false, "Resume run-id from snapshot-db instead of starting a new game")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	backend := enginelog.NewBackend(os.Stderr, 0)
	logger := backend.Logger("cardenginectl", parseVerbosity(verbosity))

	var store *snapshotstore.Store
	if snapDBPath != "" {
		s, err := snapshotstore.Open(snapDBPath)
		if err != nil {
			fatal(err)
		}
		defer s.Close()
		store = s
	}

	var stopCond *stopcond.Condition
	if stopSpec != "" {
		sc, err := stopcond.Parse(stopSpec)
		if err != nil {
			fatal(err)
		}
		stopCond = sc
	}

	controllers := map[ids.PlayerID]controller.Controller{
		1: buildController(p1Spec),
		2: buildController(p2Spec),
	}

	var gs *state.GameState
	if resume {
		if store == nil || runID == "" {
			fatal(fmt.Errorf("-resume requires -snapshot-db and -run-id"))
		}
		snap, err := store.Load(runID)
		if err != nil {
			fatal(err)
		}
		resumed, err := snapshot.Resume(snap, logger, controllers)
		if err != nil {
			fatal(err)
		}
		gs = resumed.GameState
		controllers = resumed.Controllers
	} else {
		if deck1Path == "" || deck2Path == "" {
			fatal(fmt.Errorf("-deck1 and -deck2 are required unless -resume is set"))
		}
		cat, err := loadCatalog(cardsPath)
		if err != nil {
			fatal(err)
		}
		built, err := newGame(seed, logger, life, cat, deck1Path, deck2Path)
		if err != nil {
			fatal(err)
		}
		gs = built
	}

	eng := engine.New(gs, controllers, maxTurns, stopCond)
	result, err := eng.Run()
	if err != nil {
		fatal(err)
	}

	if result == nil {
		// The engine stopped without a result: a stop condition fired
		// mid-game rather than the game ending.
		if store == nil || runID == "" {
			fatal(fmt.Errorf("stop condition fired but no -snapshot-db/-run-id given to save to"))
		}
		snap, err := snapshot.Take(eng)
		if err != nil {
			fatal(err)
		}
		if err := store.Save(runID, snap); err != nil {
			fatal(err)
		}
		fmt.Printf("stopped at turn %d, saved as %q\n", gs.Turn.Number, runID)
		return
	}

	printResult(result)
}

// newGame builds a fresh two-player game state: loads both decks
// through cat, fills each player's library, shuffles, and draws each
// an opening hand.
func newGame(seed int64, logger slog.Logger, life int, cat cardcatalog.Catalog, deck1Path, deck2Path string) (*state.GameState, error) {
	gs := state.New(seed, logger, life, []struct {
		ID   ids.PlayerID
		Name string
	}{
		{ID: 1, Name: "Player 1"},
		{ID: 2, Name: "Player 2"},
	})

	decks := []string{deck1Path, deck2Path}
	for i, path := range decks {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		deck, err := cardcatalog.ParseDeck(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		player := gs.Players[i].ID
		if err := deck.FillLibrary(gs, cat, player); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for n := 0; n < openingHandSize; n++ {
			gs.DrawCard(player)
		}
	}
	return gs, nil
}

func printResult(result *engine.GameResult) {
	out := struct {
		Winner      *ids.PlayerID `json:"winner,omitempty"`
		TurnsPlayed int           `json:"turns_played"`
		EndReason   string        `json:"end_reason"`
	}{Winner: result.Winner, TurnsPlayed: result.TurnsPlayed, EndReason: result.EndReason.String()}
	data, _ := json.Marshal(out)
	fmt.Println(string(data))
}

func buildController(spec string) controller.Controller {
	kind, rest, _ := strings.Cut(spec, ":")
	switch kind {
	case "zero":
		return controller.Zero{}
	case "random":
		return controller.NewRandom(time.Now().UnixNano())
	case "fixed":
		return controller.NewFixedScript(parseIndices(rest))
	case "human":
		return controller.NewInteractive(os.Stdin)
	case "heuristic":
		fatal(fmt.Errorf("heuristic controller requires an external policy; wire one in via pkg/controller.NewHeuristic"))
		return nil
	default:
		fatal(fmt.Errorf("unrecognized controller spec %q", spec))
		return nil
	}
}

func parseIndices(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			fatal(fmt.Errorf("invalid fixed-script index %q: %w", p, err))
		}
		out = append(out, n)
	}
	return out
}

func parseVerbosity(s string) enginelog.Verbosity {
	switch s {
	case "silent":
		return enginelog.Silent
	case "minimal":
		return enginelog.Minimal
	case "verbose":
		return enginelog.Verbose
	default:
		return enginelog.Normal
	}
}

func loadCatalog(dir string) (cardcatalog.Catalog, error) {
	if dir == "" {
		return cardcatalog.Catalog{}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var defs []*cardcatalog.CardDefinition
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".card") {
			continue
		}
		data, err := os.ReadFile(dir + string(os.PathSeparator) + e.Name())
		if err != nil {
			return nil, err
		}
		def, err := cardcatalog.ParseCard(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		defs = append(defs, def)
	}
	return cardcatalog.NewCatalog(defs...), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
