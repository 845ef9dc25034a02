package openlist

import (
	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/state"
)

// Alternation round-robins across sub-lists with per-sub-list weights
// controlling the ratio of pops, per §4.5. BoostPreferred's semantics are
// not specified by source in this repository's retrieval pack (see
// SPEC_FULL.md "Open Question resolutions"): every BoostPreferred call adds
// one credit to a single pool shared by the preferred sub-lists; each credit
// buys one pop from the first non-empty preferred sub-list, ahead of the
// plain round-robin schedule, until the pool is exhausted.
type Alternation struct {
	subLists    []OpenList
	isPreferred []bool
	weights     []int

	cursor        int
	weightCounter int
	boostCredit   int
}

// NewAlternation builds an alternation list. isPreferred marks which
// sub-lists consume boost credit; weights controls how many consecutive
// pops each sub-list gets in the round-robin schedule (minimum 1).
func NewAlternation(subLists []OpenList, isPreferred []bool, weights []int) *Alternation {
	w := make([]int, len(subLists))
	copy(w, weights)
	for i := range w {
		if w[i] <= 0 {
			w[i] = 1
		}
	}
	return &Alternation{subLists: subLists, isPreferred: isPreferred, weights: w}
}

func (a *Alternation) Insert(ctx *evaluation.Context, id state.StateID) {
	for _, sub := range a.subLists {
		sub.Insert(ctx, id)
	}
}

func (a *Alternation) RemoveMin() state.StateID {
	if a.boostCredit > 0 {
		for i, preferred := range a.isPreferred {
			if preferred && !a.subLists[i].Empty() {
				a.boostCredit--
				return a.subLists[i].RemoveMin()
			}
		}
	}

	n := len(a.subLists)
	for tries := 0; tries < n; tries++ {
		i := a.cursor
		if a.subLists[i].Empty() {
			a.advance()
			continue
		}
		a.weightCounter++
		if a.weightCounter >= a.weights[i] {
			a.advance()
		}
		return a.subLists[i].RemoveMin()
	}
	panicEmpty("alternation")
	panic("unreachable")
}

func (a *Alternation) advance() {
	a.cursor = (a.cursor + 1) % len(a.subLists)
	a.weightCounter = 0
}

func (a *Alternation) Empty() bool {
	for _, sub := range a.subLists {
		if !sub.Empty() {
			return false
		}
	}
	return true
}

// IsDeadEnd reports a dead end as soon as any sub-list's evaluators find the
// state infinite.
func (a *Alternation) IsDeadEnd(ctx *evaluation.Context) bool {
	for _, sub := range a.subLists {
		if sub.IsDeadEnd(ctx) {
			return true
		}
	}
	return false
}

// BoostPreferred increments the shared credit pool and propagates to every
// sub-list.
func (a *Alternation) BoostPreferred() {
	a.boostCredit++
	for _, sub := range a.subLists {
		sub.BoostPreferred()
	}
}

func (a *Alternation) CollectPathDependentEvaluators(out *evaluation.EvaluatorSet) {
	for _, sub := range a.subLists {
		sub.CollectPathDependentEvaluators(out)
	}
}
