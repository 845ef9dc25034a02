// Package maxheuristic implements the relaxation-based max heuristic
// (§4.4): a bipartite Proposition/UnaryOperator graph built once per task,
// evaluated per state by relaxed exploration. The algorithm itself is a
// direct translation of the reference implementation's three phases (reset,
// seed, relax) plus the goal-cost aggregation.
package maxheuristic

import (
	"github.com/axiomplan/planner/collections"
	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/task"
)

// unreached marks a proposition not yet reached in the current relaxed
// exploration.
const unreached = -1

// proposition is one (variable, value) pair in the relaxed task. precondOf
// is a slice into the shared pool rather than its own allocation, per §9
// "pooled precondition/effect lists".
type proposition struct {
	cost           int
	isGoal         bool
	precondOfStart int
	precondOfLen   int
}

// unaryOperator is one decomposed (precondition set -> single effect) unit,
// generated by splitting a task operator's possibly-multiple, possibly
// conditional effects into one unary operator per effect (§4.4).
type unaryOperator struct {
	baseCost             int
	cost                 int
	numPreconditions     int
	unsatisfiedPrecond   int
	effect               int // proposition index
}

// Heuristic is a built max-heuristic graph, implementing evaluation.Evaluator.
type Heuristic struct {
	propositions []proposition
	unaryOps     []unaryOperator
	pool         []int // precondOf pool: pool[start:start+len] are unary-op indices

	varOffset []int // proposition index of (var, 0) for each var
	goalProps []int

	queue *collections.PriorityQueue[int]
}

var _ evaluation.Evaluator = (*Heuristic)(nil)

// Build constructs the proposition/unary-operator graph for t. This is done
// once per task; Evaluate (via ComputeResult) is called once per state.
func Build(t task.Proxy) *Heuristic {
	vars := t.Variables()
	h := &Heuristic{varOffset: make([]int, len(vars))}

	total := 0
	for i, v := range vars {
		h.varOffset[i] = total
		total += v.DomainSize
	}
	h.propositions = make([]proposition, total)

	for _, g := range t.Goals() {
		h.propositions[h.propIndex(g.Var, g.Value)].isGoal = true
	}

	// Decompose every operator's effects into unary operators, one per
	// effect, with preconditions = operator preconditions + effect
	// conditions.
	type unaryPre struct {
		preconds []int
	}
	var pres []unaryPre
	for _, op := range t.Operators() {
		basePre := h.factsToProps(op.Preconditions)
		for _, eff := range op.Effects {
			condPre := h.factsToProps(eff.Conditions)
			all := append(append([]int(nil), basePre...), condPre...)
			h.unaryOps = append(h.unaryOps, unaryOperator{
				baseCost:         op.Cost,
				numPreconditions: len(all),
				effect:           h.propIndex(eff.Fact.Var, eff.Fact.Value),
			})
			pres = append(pres, unaryPre{preconds: all})
		}
	}

	// Build the precondOf pool: count per proposition, compute offsets,
	// then fill.
	counts := make([]int, total)
	for _, p := range pres {
		for _, prop := range p.preconds {
			counts[prop]++
		}
	}
	offset := 0
	for i := range h.propositions {
		h.propositions[i].precondOfStart = offset
		offset += counts[i]
	}
	h.pool = make([]int, offset)
	cursor := make([]int, total)
	for i := range h.propositions {
		cursor[i] = h.propositions[i].precondOfStart
	}
	for opIdx, p := range pres {
		for _, prop := range p.preconds {
			h.pool[cursor[prop]] = opIdx
			cursor[prop]++
			h.propositions[prop].precondOfLen++
		}
	}

	for i, p := range h.propositions {
		if p.isGoal {
			h.goalProps = append(h.goalProps, i)
		}
	}

	h.queue = collections.NewPriorityQueue[int]()
	return h
}

func (h *Heuristic) propIndex(v, value int) int {
	return h.varOffset[v] + value
}

func (h *Heuristic) factsToProps(facts []task.Fact) []int {
	out := make([]int, len(facts))
	for i, f := range facts {
		out[i] = h.propIndex(f.Var, f.Value)
	}
	return out
}

// precondOf returns the unary-operator indices for which prop is a
// precondition.
func (h *Heuristic) precondOf(prop int) []int {
	p := h.propositions[prop]
	return h.pool[p.precondOfStart : p.precondOfStart+p.precondOfLen]
}

// Evaluate runs the four-phase relaxed-exploration algorithm (§4.4) against
// values, one entry per variable, and returns the max-heuristic estimate, or
// ok=false if the state is a dead end.
func (h *Heuristic) Evaluate(values []int) (int, bool) {
	for i := range h.propositions {
		h.propositions[i].cost = unreached
	}
	for i := range h.unaryOps {
		h.unaryOps[i].unsatisfiedPrecond = h.unaryOps[i].numPreconditions
		h.unaryOps[i].cost = h.unaryOps[i].baseCost
	}

	for q := h.queue; !q.Empty(); {
		q.Pop()
	}

	// Unary operators with no preconditions are trivially satisfied; seed
	// their effect at base cost before seeding the state's own facts.
	for i := range h.unaryOps {
		if h.unaryOps[i].numPreconditions == 0 {
			h.relax(h.unaryOps[i].effect, h.unaryOps[i].cost)
		}
	}
	for v, val := range values {
		h.seed(h.propIndex(v, val))
	}

	unsolvedGoals := len(h.goalProps)
	for !h.queue.Empty() {
		d, prop := h.queue.Pop()
		if h.propositions[prop].cost < d {
			continue // stale
		}
		if h.propositions[prop].isGoal {
			unsolvedGoals--
			if unsolvedGoals == 0 {
				break
			}
		}
		for _, opIdx := range h.precondOf(prop) {
			op := &h.unaryOps[opIdx]
			if op.cost < op.baseCost+h.propositions[prop].cost {
				op.cost = op.baseCost + h.propositions[prop].cost
			}
			op.unsatisfiedPrecond--
			if op.unsatisfiedPrecond == 0 {
				h.relax(op.effect, op.cost)
			}
		}
	}

	best := 0
	for _, g := range h.goalProps {
		c := h.propositions[g].cost
		if c == unreached {
			return 0, false
		}
		if c > best {
			best = c
		}
	}
	return best, true
}

func (h *Heuristic) seed(prop int) {
	h.relax(prop, 0)
}

func (h *Heuristic) relax(prop, cost int) {
	if h.propositions[prop].cost == unreached || cost < h.propositions[prop].cost {
		h.propositions[prop].cost = cost
		h.queue.Push(cost, prop)
	}
}

// ComputeResult implements evaluation.Evaluator.
func (h *Heuristic) ComputeResult(ctx *evaluation.Context) evaluation.Result {
	value, ok := h.Evaluate(ctx.State().Values())
	if !ok {
		return evaluation.DeadEnd()
	}
	return evaluation.Finite(value)
}

// DoesCacheEstimates reports true: the max heuristic is a pure function of
// the state, so its result is stable per StateID across contexts.
func (h *Heuristic) DoesCacheEstimates() bool { return true }
