// Package evaluation implements the evaluator abstraction: evaluators
// compute EvaluationResults against an EvaluationContext that memoizes
// per-state results so evaluator DAGs are evaluated once per state.
package evaluation

// Evaluator computes an EvaluationResult for the state an EvaluationContext
// was built for. Concrete evaluators (g-evaluator, max heuristic, sum, max,
// weighted sum, f = g+h) all implement this same interface; composition is a
// capability set, not a class hierarchy (§9 "evaluator composition").
type Evaluator interface {
	ComputeResult(ctx *Context) Result

	// DoesCacheEstimates declares whether results for this evaluator are
	// stable per StateID across separate EvaluationContexts (as opposed to
	// depending on path, like the g-evaluator).
	DoesCacheEstimates() bool
}

// PathDependentEvaluator is the optional capability an Evaluator may also
// implement: it maintains per-path mutable state and must be notified of the
// initial state and every state transition the search makes.
type PathDependentEvaluator interface {
	Evaluator
	NotifyInitialState(s StateView)
	NotifyStateTransition(parent StateView, op int, successor StateView)
}

// StateView is the minimal state accessor evaluators need; it decouples
// this package from the concrete state package's registry machinery.
type StateView interface {
	Value(v int) int
	Values() []int
}

// CollectPathDependentEvaluators appends every evaluator in evaluators that
// implements PathDependentEvaluator into the deduplicated, order-preserving
// set out (§4.6 initialization step 1). Evaluators already present in out
// are skipped.
func CollectPathDependentEvaluators(out *EvaluatorSet, evaluators ...Evaluator) {
	for _, e := range evaluators {
		if e == nil {
			continue
		}
		if _, ok := e.(PathDependentEvaluator); ok {
			out.Add(e)
		}
	}
}

// EvaluatorSet is an insertion-order-preserving, deduplicated collection of
// evaluators, identified by interface (pointer) identity.
type EvaluatorSet struct {
	seen  map[Evaluator]bool
	order []Evaluator
}

// NewEvaluatorSet returns an empty set.
func NewEvaluatorSet() *EvaluatorSet {
	return &EvaluatorSet{seen: make(map[Evaluator]bool)}
}

// Add inserts e if it isn't already present.
func (s *EvaluatorSet) Add(e Evaluator) {
	if s.seen[e] {
		return
	}
	s.seen[e] = true
	s.order = append(s.order, e)
}

// PathDependent returns every evaluator in the set as a PathDependentEvaluator,
// in insertion order. Evaluators are guaranteed to satisfy the interface by
// construction (only added via CollectPathDependentEvaluators).
func (s *EvaluatorSet) PathDependent() []PathDependentEvaluator {
	out := make([]PathDependentEvaluator, 0, len(s.order))
	for _, e := range s.order {
		out = append(out, e.(PathDependentEvaluator))
	}
	return out
}
