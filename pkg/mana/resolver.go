package mana

import (
	"sort"

	"github.com/cardforge/engine/pkg/card"
)

// Verdict is the resolver's three-valued payment result.
type Verdict int

const (
	// No means provably impossible: no permutation of sources can pay the cost.
	No Verdict = iota
	// Maybe means the greedy search could not find a solution but
	// backtracking search might.
	Maybe
	// Yes means a valid tap order was found.
	Yes
)

// Result is the outcome of a payment resolution attempt.
type Result struct {
	Verdict Verdict
	TapOrder []uint32 // valid when Verdict == Yes
}

var pipColors = []card.Color{card.White, card.Blue, card.Black, card.Red, card.Green}

// SimpleResolve is correct only when every source is Fixed or
// ColorlessKind. Returns Maybe immediately if any source has a
// non-Fixed/non-Colorless kind.
func SimpleResolve(cost card.Cost, sources []Source, capacity Capacity) Result {
	for _, s := range sources {
		if s.Kind != Fixed && s.Kind != ColorlessKind {
			return Result{Verdict: Maybe}
		}
	}

	for _, c := range pipColors {
		if cost.ColorCount(c) > capacity.Count(c) {
			return Result{Verdict: No}
		}
	}
	if cost.Colorless > capacity.Colorless {
		return Result{Verdict: No}
	}
	if cost.Total() > capacity.Total() {
		return Result{Verdict: No}
	}

	var tapOrder []uint32
	used := make(map[uint32]bool)

	for _, c := range pipColors {
		need := cost.ColorCount(c)
		for _, s := range sources {
			if need == 0 {
				break
			}
			if used[s.CardID] || !s.Available() {
				continue
			}
			if s.Kind == Fixed && s.FixedColor == c {
				tapOrder = append(tapOrder, s.CardID)
				used[s.CardID] = true
				need--
			}
		}
		if need > 0 {
			return Result{Verdict: Maybe}
		}
	}

	need := cost.Colorless
	for _, s := range sources {
		if need == 0 {
			break
		}
		if used[s.CardID] || !s.Available() {
			continue
		}
		if s.Kind == ColorlessKind {
			tapOrder = append(tapOrder, s.CardID)
			used[s.CardID] = true
			need--
		}
	}
	if need > 0 {
		return Result{Verdict: Maybe}
	}

	need = cost.Generic
	for _, s := range sources {
		if need == 0 {
			break
		}
		if used[s.CardID] || !s.Available() {
			continue
		}
		tapOrder = append(tapOrder, s.CardID)
		used[s.CardID] = true
		need--
	}
	if need > 0 {
		return Result{Verdict: Maybe}
	}

	return Result{Verdict: Yes, TapOrder: tapOrder}
}

// totalManaBound implements the greedy resolver's first bounds check.
func totalManaBound(cost card.Cost, sources []Source) bool {
	delta := 0
	for _, s := range sources {
		if !s.Available() {
			continue
		}
		delta += 1 - s.ActivationCost.Total()
	}
	return delta >= cost.Total()
}

// colorBound implements the greedy resolver's second bounds check: an
// optimistic upper bound on what each color could receive, treating
// Choice/AnyColor sources as able to serve every color they could tap
// for (activation costs ignored here).
func colorBound(cost card.Cost, sources []Source) bool {
	for _, c := range pipColors {
		need := cost.ColorCount(c)
		if need == 0 {
			continue
		}
		max := 0
		for _, s := range sources {
			if !s.Available() {
				continue
			}
			if s.canProduce(c) {
				max++
			}
		}
		if need > max {
			return false
		}
	}
	return true
}

// GreedyResolve additionally handles Choice and AnyColor sources.
func GreedyResolve(cost card.Cost, sources []Source) Result {
	if !totalManaBound(cost, sources) {
		return Result{Verdict: No}
	}
	if !colorBound(cost, sources) {
		return Result{Verdict: No}
	}

	used := make(map[uint32]bool)
	var tapOrder []uint32

	tapBestFor := func(c card.Color, need int) bool {
		candidates := make([]Source, 0, len(sources))
		for _, s := range sources {
			if used[s.CardID] || !s.Available() || !s.canProduce(c) {
				continue
			}
			candidates = append(candidates, s)
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score(c) < candidates[j].score(c)
		})
		for _, s := range candidates {
			if need == 0 {
				break
			}
			tapOrder = append(tapOrder, s.CardID)
			used[s.CardID] = true
			need--
		}
		return need == 0
	}

	for _, c := range pipColors {
		if need := cost.ColorCount(c); need > 0 {
			if !tapBestFor(c, need) {
				return Result{Verdict: Maybe}
			}
		}
	}

	if cost.Colorless > 0 {
		need := cost.Colorless
		for _, s := range sources {
			if need == 0 {
				break
			}
			if used[s.CardID] || !s.Available() || s.Kind != ColorlessKind {
				continue
			}
			tapOrder = append(tapOrder, s.CardID)
			used[s.CardID] = true
			need--
		}
		if need > 0 {
			return Result{Verdict: Maybe}
		}
	}

	if cost.Generic > 0 {
		need := cost.Generic
		for _, s := range sources {
			if need == 0 {
				break
			}
			if used[s.CardID] || !s.Available() {
				continue
			}
			tapOrder = append(tapOrder, s.CardID)
			used[s.CardID] = true
			need--
		}
		if need > 0 {
			return Result{Verdict: Maybe}
		}
	}

	return Result{Verdict: Yes, TapOrder: tapOrder}
}

// CanPay reports whether cost can definitely be paid from sources.
func CanPay(cost card.Cost, sources []Source, capacity Capacity) bool {
	return Resolve(cost, sources, capacity).Verdict == Yes
}

// Resolve dispatches to SimpleResolve when every source is simple, and
// to GreedyResolve otherwise.
func Resolve(cost card.Cost, sources []Source, capacity Capacity) Result {
	simple := true
	for _, s := range sources {
		if s.Kind != Fixed && s.Kind != ColorlessKind {
			simple = false
			break
		}
	}
	if simple {
		return SimpleResolve(cost, sources, capacity)
	}
	return GreedyResolve(cost, sources)
}

// QuickCheck performs only the greedy resolver's two bounds checks, for
// hot-path filtering of obviously-unpayable costs without constructing
// a tap order.
func QuickCheck(cost card.Cost, sources []Source) bool {
	return totalManaBound(cost, sources) && colorBound(cost, sources)
}
