package controller

import (
	"math/rand"

	"github.com/cardforge/engine/pkg/card"
	"github.com/cardforge/engine/pkg/ids"
)

// passProbability is the chance Random passes priority instead of
// acting when options are available, a livelock guard against two
// mutually-passive random agents stalling the game forever.
const passProbability = 0.3

// Random is seeded-PRNG controlled: at ChooseSpellAbilityToPlay it
// passes priority with probability 0.3 even when options exist, to
// avoid livelocks between two mutually-passive random agents; otherwise
// it picks uniformly from the offered options.
type Random struct {
	seed int64
	src  *countingSource
	rng  *rand.Rand
}

// NewRandom builds a Random controller seeded from seed.
func NewRandom(seed int64) *Random {
	src := &countingSource{src: rand.NewSource(seed)}
	return &Random{seed: seed, src: src, rng: rand.New(src)}
}

// countingSource wraps a math/rand.Source, counting every Int63 draw
// so the PRNG's position can be captured and restored exactly. It
// deliberately does not implement Source64: leaving Uint64 unimplemented
// forces every derived Rand method through Int63, so draws counts the
// complete entropy consumption regardless of which Rand method was
// called.
type countingSource struct {
	src   rand.Source
	draws uint64
}

func (c *countingSource) Int63() int64 {
	c.draws++
	return c.src.Int63()
}

func (c *countingSource) Seed(seed int64) {
	c.src.Seed(seed)
	c.draws = 0
}

// RandomSnapshotState is Random's serializable PRNG position: the
// original seed plus the number of values drawn from it since.
// Restoring replays exactly that many draws against a fresh source
// seeded the same way, landing the PRNG back at the same internal
// state it held when the snapshot was taken.
type RandomSnapshotState struct {
	Seed  int64  `json:"seed"`
	Draws uint64 `json:"draws"`
}

func (r *Random) ChooseSpellAbilityToPlay(_ View, available []Ability) (Ability, bool) {
	if len(available) == 0 {
		return Ability{}, false
	}
	if r.rng.Float64() < passProbability {
		return Ability{}, false
	}
	return available[r.rng.Intn(len(available))], true
}

func (r *Random) ChooseTargets(_ View, _ ids.CardID, validTargets []ids.CardID) []ids.CardID {
	if len(validTargets) == 0 {
		return nil
	}
	return []ids.CardID{validTargets[r.rng.Intn(len(validTargets))]}
}

func (r *Random) ChooseManaSourcesToPay(_ View, cost card.Cost, available []ids.CardID) []ids.CardID {
	shuffled := make([]ids.CardID, len(available))
	copy(shuffled, available)
	r.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	n := cost.Total()
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func (r *Random) ChooseAttackers(_ View, legalCreatures []ids.CardID) []ids.CardID {
	var out []ids.CardID
	for _, c := range legalCreatures {
		if r.rng.Float64() < 0.5 {
			out = append(out, c)
		}
	}
	return capAt(out, 8)
}

func (r *Random) ChooseBlockers(_ View, legalBlockers []ids.CardID, attackers []ids.CardID) []BlockAssignment {
	if len(legalBlockers) == 0 || len(attackers) == 0 {
		return nil
	}
	var out []BlockAssignment
	for _, b := range legalBlockers {
		if r.rng.Float64() < 0.3 {
			out = append(out, BlockAssignment{Blocker: b, Attacker: attackers[r.rng.Intn(len(attackers))]})
		}
	}
	return capAt2(out, 8)
}

func capAt2(a []BlockAssignment, n int) []BlockAssignment {
	if len(a) > n {
		return a[:n]
	}
	return a
}

func (r *Random) ChooseDamageAssignmentOrder(_ View, _ ids.CardID, blockers []ids.CardID) []ids.CardID {
	shuffled := make([]ids.CardID, len(blockers))
	copy(shuffled, blockers)
	r.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled
}

func (r *Random) ChooseCardsToDiscard(_ View, hand []ids.CardID, n int) []ids.CardID {
	shuffled := make([]ids.CardID, len(hand))
	copy(shuffled, hand)
	r.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func (r *Random) OnPriorityPassed(View) {}
func (r *Random) OnGameEnd(View, bool)  {}

// GetSnapshotState returns the seed and draw count needed to restore
// this PRNG to its current position.
func (r *Random) GetSnapshotState() any {
	return RandomSnapshotState{Seed: r.seed, Draws: r.src.draws}
}

// RestoreSnapshotState reseeds the PRNG and fast-forwards it by the
// recorded number of draws. Accepts either a RandomSnapshotState
// (same-process handoff) or the map/float64 shape a JSON round-trip
// through pkg/snapshotstore produces.
func (r *Random) RestoreSnapshotState(v any) {
	var st RandomSnapshotState
	switch t := v.(type) {
	case RandomSnapshotState:
		st = t
	case map[string]any:
		if seed, ok := t["seed"].(float64); ok {
			st.Seed = int64(seed)
		}
		if draws, ok := t["draws"].(float64); ok {
			st.Draws = uint64(draws)
		}
	default:
		return
	}
	r.seed = st.Seed
	r.src = &countingSource{src: rand.NewSource(st.Seed)}
	r.rng = rand.New(r.src)
	for i := uint64(0); i < st.Draws; i++ {
		r.src.Int63()
	}
}

var _ Controller = (*Random)(nil)
var _ SnapshotRestorer = (*Random)(nil)
