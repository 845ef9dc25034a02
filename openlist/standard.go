package openlist

import (
	"github.com/axiomplan/planner/collections"
	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/state"
)

// Standard is a single-evaluator open list: entries with the same evaluator
// value are stored in FIFO buckets, and buckets are popped in ascending key
// order (§4.5 "Standard", grounded on best_first_open_list.cc's
// map<int, deque<Entry>>).
type Standard struct {
	evaluator     evaluation.Evaluator
	preferredOnly bool

	buckets  map[int][]state.StateID
	liveKeys *collections.PriorityQueue[int]
	size     int
}

// NewStandard builds a standard open list sorted by evaluator. If
// preferredOnly is set, only states reached via a preferred transition are
// inserted.
func NewStandard(evaluator evaluation.Evaluator, preferredOnly bool) *Standard {
	return &Standard{
		evaluator:     evaluator,
		preferredOnly: preferredOnly,
		buckets:       make(map[int][]state.StateID),
		liveKeys:      collections.NewPriorityQueue[int](),
	}
}

func (s *Standard) Insert(ctx *evaluation.Context, id state.StateID) {
	if s.preferredOnly && !ctx.IsPreferred() {
		return
	}
	if ctx.IsInfinite(s.evaluator) {
		return
	}
	key := ctx.Value(s.evaluator)
	if _, exists := s.buckets[key]; !exists {
		s.liveKeys.Push(key, key)
	}
	s.buckets[key] = append(s.buckets[key], id)
	s.size++
}

func (s *Standard) RemoveMin() state.StateID {
	for !s.liveKeys.Empty() {
		key, _ := s.liveKeys.Pop()
		bucket, ok := s.buckets[key]
		if !ok || len(bucket) == 0 {
			continue
		}
		entry := bucket[0]
		bucket = bucket[1:]
		if len(bucket) == 0 {
			delete(s.buckets, key)
		} else {
			s.buckets[key] = bucket
			s.liveKeys.Push(key, key)
		}
		s.size--
		return entry
	}
	panicEmpty("standard")
	panic("unreachable")
}

func (s *Standard) Empty() bool { return s.size == 0 }

func (s *Standard) IsDeadEnd(ctx *evaluation.Context) bool {
	return ctx.IsInfinite(s.evaluator)
}

// BoostPreferred is a no-op: a single-evaluator list has no preferred/
// non-preferred sub-lists to rebalance between.
func (s *Standard) BoostPreferred() {}

func (s *Standard) CollectPathDependentEvaluators(out *evaluation.EvaluatorSet) {
	evaluation.CollectPathDependentEvaluators(out, s.evaluator)
}
