package evaluation

// StatsSink receives a notification every time an evaluator is actually
// computed (as opposed to served from the context's cache). eagersearch's
// Statistics implements this to track the "evaluations" counter.
type StatsSink interface {
	IncEvaluations()
}

// Context mediates one state's evaluator lookups during a single
// expansion: it carries the state, its g-value, whether it was reached by a
// preferred operator, and a per-evaluator cache so that evaluator DAGs are
// computed once per state regardless of how many consumers ask for a given
// evaluator's result (§4.3 "EvaluationContext").
type Context struct {
	state     StateView
	g         int
	preferred bool
	sink      StatsSink
	cache     map[Evaluator]Result
}

// NewContext builds a context for state st with path cost g, marking
// whether st was reached via a preferred operator. sink may be nil.
func NewContext(st StateView, g int, preferred bool, sink StatsSink) *Context {
	return &Context{
		state:     st,
		g:         g,
		preferred: preferred,
		sink:      sink,
		cache:     make(map[Evaluator]Result),
	}
}

// State returns the state this context evaluates against.
func (c *Context) State() StateView { return c.state }

// G returns the path cost the context was built with.
func (c *Context) G() int { return c.g }

// IsPreferred reports whether the state was reached by a preferred operator.
func (c *Context) IsPreferred() bool { return c.preferred }

// Get returns e's memoized Result for this context, computing it on first
// request.
func (c *Context) Get(e Evaluator) Result {
	if r, ok := c.cache[e]; ok {
		return r
	}
	r := e.ComputeResult(c)
	if c.sink != nil {
		c.sink.IncEvaluations()
	}
	c.cache[e] = r
	return r
}

// IsInfinite reports whether e evaluates to Infinite for this context's
// state.
func (c *Context) IsInfinite(e Evaluator) bool {
	return c.Get(e).Infinite
}

// Value returns e's numeric value for this context's state. Callers should
// check IsInfinite first if e may report a dead end.
func (c *Context) Value(e Evaluator) int {
	return c.Get(e).Value
}

// CollectPreferred gathers and deduplicates preferred operator ids across
// evaluators, preserving first-seen order (§4.3 "preferred operators").
func CollectPreferred(c *Context, evaluators []Evaluator) []int {
	seen := make(map[int]bool)
	var out []int
	for _, e := range evaluators {
		for _, opID := range c.Get(e).Preferred {
			if !seen[opID] {
				seen[opID] = true
				out = append(out, opID)
			}
		}
	}
	return out
}
