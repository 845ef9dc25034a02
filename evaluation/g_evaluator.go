package evaluation

// GEvaluator returns the current path g from the evaluation context. Its
// value depends on the path taken to reach a state, not just the state
// itself, so it never caches estimates.
type GEvaluator struct{}

// NewGEvaluator returns a g-evaluator. It has no internal state, so a single
// instance may be shared across every context.
func NewGEvaluator() *GEvaluator { return &GEvaluator{} }

func (e *GEvaluator) ComputeResult(ctx *Context) Result {
	return Finite(ctx.G())
}

func (e *GEvaluator) DoesCacheEstimates() bool { return false }
