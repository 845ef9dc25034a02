package eagersearch

import "github.com/axiomplan/planner/evaluation"

// progress tracks the best (lowest) value seen so far per evaluator, the
// same role as the original's SearchProgress: check reports true exactly
// when some tracked evaluator improves on its previous best, which is the
// trigger eager_search.cc uses to call reward_progress and boost the
// preferred-operator open lists.
type progress struct {
	tracked []evaluation.Evaluator
	best    map[evaluation.Evaluator]int
	seen    map[evaluation.Evaluator]bool
}

func newProgress(tracked []evaluation.Evaluator) *progress {
	return &progress{
		tracked: tracked,
		best:    make(map[evaluation.Evaluator]int),
		seen:    make(map[evaluation.Evaluator]bool),
	}
}

func (p *progress) check(ctx *evaluation.Context) bool {
	improved := false
	for _, e := range p.tracked {
		if ctx.IsInfinite(e) {
			continue
		}
		v := ctx.Value(e)
		if !p.seen[e] || v < p.best[e] {
			p.best[e] = v
			p.seen[e] = true
			improved = true
		}
	}
	return improved
}
