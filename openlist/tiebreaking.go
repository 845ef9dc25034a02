package openlist

import (
	"container/heap"

	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/state"
)

// Tiebreaking sorts entries lexicographically across multiple evaluators,
// with FIFO tie-break when every evaluator's value matches (§4.5
// "Tiebreaking open list").
type Tiebreaking struct {
	evaluators    []evaluation.Evaluator
	preferredOnly bool
	heap          tiebreakHeap
	nextSeq       int
}

type tiebreakEntry struct {
	keys []int
	seq  int
	id   state.StateID
}

type tiebreakHeap []tiebreakEntry

func (h tiebreakHeap) Len() int { return len(h) }

func (h tiebreakHeap) Less(i, j int) bool {
	a, b := h[i].keys, h[j].keys
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return h[i].seq < h[j].seq
}

func (h tiebreakHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *tiebreakHeap) Push(x any) { *h = append(*h, x.(tiebreakEntry)) }

func (h *tiebreakHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// NewTiebreaking builds a lexicographic open list over evaluators, evaluated
// in the given order (first evaluator is most significant).
func NewTiebreaking(preferredOnly bool, evaluators ...evaluation.Evaluator) *Tiebreaking {
	return &Tiebreaking{evaluators: evaluators, preferredOnly: preferredOnly}
}

func (t *Tiebreaking) Insert(ctx *evaluation.Context, id state.StateID) {
	if t.preferredOnly && !ctx.IsPreferred() {
		return
	}
	keys := make([]int, len(t.evaluators))
	for i, e := range t.evaluators {
		if ctx.IsInfinite(e) {
			return
		}
		keys[i] = ctx.Value(e)
	}
	heap.Push(&t.heap, tiebreakEntry{keys: keys, seq: t.nextSeq, id: id})
	t.nextSeq++
}

func (t *Tiebreaking) RemoveMin() state.StateID {
	if t.heap.Len() == 0 {
		panicEmpty("tiebreaking")
	}
	entry := heap.Pop(&t.heap).(tiebreakEntry)
	return entry.id
}

func (t *Tiebreaking) Empty() bool { return t.heap.Len() == 0 }

func (t *Tiebreaking) IsDeadEnd(ctx *evaluation.Context) bool {
	for _, e := range t.evaluators {
		if ctx.IsInfinite(e) {
			return true
		}
	}
	return false
}

func (t *Tiebreaking) BoostPreferred() {}

func (t *Tiebreaking) CollectPathDependentEvaluators(out *evaluation.EvaluatorSet) {
	evaluation.CollectPathDependentEvaluators(out, t.evaluators...)
}
