// Package eagersearch implements the eager best-first search loop (§4.6):
// pop the open list's minimum, close it, expand it into successors, repeat
// until a goal is closed or the open list empties. This is a direct
// translation of eager_search.cc's initialize/step/expand/generate_successors
// sequence.
package eagersearch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/observability"
	"github.com/axiomplan/planner/openlist"
	"github.com/axiomplan/planner/plan"
	"github.com/axiomplan/planner/pruning"
	"github.com/axiomplan/planner/searchspace"
	"github.com/axiomplan/planner/state"
	"github.com/axiomplan/planner/successorgen"
	"github.com/axiomplan/planner/task"
)

// Status is the outcome of a single Step call.
type Status int

const (
	StatusInProgress Status = iota
	StatusSolved
	StatusFailed
)

// EagerSearch owns every piece of mutable search state (§5 "shared-resource
// policy"): the state registry, search space, open list, and statistics.
// Its TaskProxy is read-only and aliased, never copied.
type EagerSearch struct {
	cfg Config

	runID string

	registry     *state.Registry
	space        *searchspace.SearchSpace
	successorGen *successorgen.Generator
	pruningMtd   pruning.Method
	observer     observability.Observer

	openList openlist.OpenList

	pathDependent []evaluation.PathDependentEvaluator
	progress      *progress

	opByID map[int]task.Operator

	stats *Statistics
	plan  plan.Plan

	lazyCache  map[state.StateID]int
	lazyCached map[state.StateID]bool
}

// New validates cfg and builds an EagerSearch ready for Initialize/Run.
func New(cfg Config) (*EagerSearch, error) {
	if cfg.Task == nil {
		return nil, fmt.Errorf("%w: task is required", ErrInputError)
	}
	if cfg.OpenList == nil {
		return nil, fmt.Errorf("%w: open list is required", ErrInputError)
	}
	if cfg.LazyEvaluator != nil && !cfg.LazyEvaluator.DoesCacheEstimates() {
		return nil, fmt.Errorf("%w: lazy_evaluator must cache its estimates", ErrInputError)
	}

	opByID := make(map[int]task.Operator)
	for _, op := range cfg.Task.Operators() {
		opByID[op.ID] = op
	}

	es := &EagerSearch{
		cfg:          cfg,
		runID:        uuid.New().String(),
		registry:     state.NewRegistry(cfg.Task),
		space:        searchspace.NewSearchSpace(),
		successorGen: successorgen.Build(cfg.Task),
		pruningMtd:   cfg.effectivePruning(),
		observer:     cfg.effectiveObserver(),
		openList:     cfg.OpenList,
		opByID:       opByID,
		stats:        NewStatistics(),
		lazyCache:    make(map[state.StateID]int),
		lazyCached:   make(map[state.StateID]bool),
	}

	tracked := append([]evaluation.Evaluator(nil), cfg.Preferred...)
	if cfg.FEvaluator != nil {
		tracked = append(tracked, cfg.FEvaluator)
	}
	es.progress = newProgress(tracked)

	return es, nil
}

// RunID identifies this search instance in statistics and observability
// events, mirroring orchestrate/state.State.RunID.
func (es *EagerSearch) RunID() string { return es.runID }

// Statistics exposes the running counters.
func (es *EagerSearch) Statistics() *Statistics { return es.stats }

func (es *EagerSearch) emit(level observability.Level, eventType observability.EventType, data map[string]any) {
	es.observer.OnEvent(context.Background(), observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "eagersearch.Run",
		Data:      data,
	})
}

// Initialize performs §4.6's initialization step: collect path-dependent
// evaluators, notify them of the initial state, evaluate it, and either
// open it or declare it a dead end.
func (es *EagerSearch) Initialize() {
	set := evaluation.NewEvaluatorSet()
	es.openList.CollectPathDependentEvaluators(set)
	evaluation.CollectPathDependentEvaluators(set, es.cfg.Preferred...)
	if es.cfg.FEvaluator != nil {
		evaluation.CollectPathDependentEvaluators(set, es.cfg.FEvaluator)
	}
	if es.cfg.LazyEvaluator != nil {
		evaluation.CollectPathDependentEvaluators(set, es.cfg.LazyEvaluator)
	}
	es.pathDependent = set.PathDependent()

	id, initial := es.registry.GetInitialState()
	for _, pde := range es.pathDependent {
		pde.NotifyInitialState(initial)
	}

	ctx := evaluation.NewContext(initial, 0, true, es.stats)
	es.stats.IncEvaluatedStates()

	if es.openList.IsDeadEnd(ctx) {
		es.emit(observability.LevelInfo, observability.EventInitialStateDead, nil)
	} else {
		es.progress.check(ctx)
		es.reportFValue(ctx)
		es.space.OpenInitial(id)
		es.openList.Insert(ctx, id)
		es.recordLazy(id, ctx)
	}

	es.pruningMtd.Initialize(es.cfg.Task)
	es.emit(observability.LevelInfo, observability.EventSearchStart, map[string]any{
		"run_id":        es.runID,
		"reopen_closed": es.cfg.ReopenClosed,
		"bound":         es.cfg.effectiveBound(),
	})
}

// Step performs one iteration: pop the next expandable node and expand it,
// or report that the search is exhausted.
func (es *EagerSearch) Step() Status {
	node, id, ok := es.getNextNodeToExpand()
	if !ok {
		es.emit(observability.LevelInfo, observability.EventSearchExhausted, nil)
		return StatusFailed
	}
	return es.expand(node, id)
}

func (es *EagerSearch) getNextNodeToExpand() (*searchspace.SearchNode, state.StateID, bool) {
	for !es.openList.Empty() {
		id := es.openList.RemoveMin()
		st := es.registry.LookupState(id)
		node := es.space.GetNode(id)

		if node.Status == searchspace.StatusClosed {
			continue
		}

		ctx := evaluation.NewContext(st, node.G, false, es.stats)

		if es.cfg.LazyEvaluator != nil {
			if node.Status == searchspace.StatusDeadEnd {
				continue
			}
			if oldH, cached := es.lazyCache[id]; cached {
				newH := ctx.Value(es.cfg.LazyEvaluator)
				if ctx.IsInfinite(es.cfg.LazyEvaluator) {
					newH = unboundedBound
				}
				if es.openList.IsDeadEnd(ctx) {
					es.space.MarkDeadEnd(node)
					es.stats.IncDeadEnds()
					continue
				}
				if newH != oldH {
					es.openList.Insert(ctx, id)
					es.recordLazy(id, ctx)
					continue
				}
			}
		}

		es.space.CloseNode(node)
		es.reportFValue(ctx)
		return node, id, true
	}
	return nil, 0, false
}

func (es *EagerSearch) recordLazy(id state.StateID, ctx *evaluation.Context) {
	if es.cfg.LazyEvaluator == nil {
		return
	}
	if ctx.IsInfinite(es.cfg.LazyEvaluator) {
		es.lazyCache[id] = unboundedBound
	} else {
		es.lazyCache[id] = ctx.Value(es.cfg.LazyEvaluator)
	}
	es.lazyCached[id] = true
}

func (es *EagerSearch) reportFValue(ctx *evaluation.Context) {
	if es.cfg.FEvaluator == nil {
		return
	}
	if ctx.IsInfinite(es.cfg.FEvaluator) {
		return
	}
	es.stats.ReportFValueProgress(ctx.Value(es.cfg.FEvaluator))
}

func (es *EagerSearch) collectPreferredOperators(node *searchspace.SearchNode, id state.StateID) map[int]bool {
	st := es.registry.LookupState(id)
	ctx := evaluation.NewContext(st, node.G, false, es.stats)
	preferred := make(map[int]bool)
	for _, opID := range evaluation.CollectPreferred(ctx, es.cfg.Preferred) {
		preferred[opID] = true
	}
	return preferred
}

func (es *EagerSearch) expand(node *searchspace.SearchNode, id state.StateID) Status {
	es.stats.IncExpanded()

	st := es.registry.LookupState(id)
	if st.SatisfiesAll(es.cfg.Task.Goals()) {
		es.buildPlan(id)
		es.emit(observability.LevelInfo, observability.EventGoalFound, map[string]any{
			"cost": es.plan.Cost,
		})
		return StatusSolved
	}

	es.emit(observability.LevelVerbose, observability.EventNodeExpanded, map[string]any{
		"g": node.G,
	})
	es.generateSuccessors(node, id, st)
	return StatusInProgress
}

func (es *EagerSearch) generateSuccessors(node *searchspace.SearchNode, id state.StateID, st *state.State) {
	applicable := es.successorGen.ApplicableOperators(st.Values())
	es.stats.IncGeneratedOps(len(applicable))
	applicable = es.pruningMtd.PruneOperators(st.Values(), applicable)

	preferredSet := es.collectPreferredOperators(node, id)
	bound := es.cfg.effectiveBound()

	for _, op := range applicable {
		if node.RealG+op.Cost >= bound {
			continue
		}

		succID, succState := es.registry.GetSuccessorState(st, op)
		es.stats.IncGenerated()
		succNode := es.space.GetNode(succID)

		for _, pde := range es.pathDependent {
			pde.NotifyStateTransition(st, op.ID, succState)
		}

		if succNode.Status == searchspace.StatusDeadEnd {
			continue
		}

		isPreferred := preferredSet[op.ID]
		adjusted := es.cfg.adjustedCost(op)

		switch {
		case succNode.Status == searchspace.StatusNew:
			succG := node.G + adjusted
			succCtx := evaluation.NewContext(succState, succG, isPreferred, es.stats)
			es.stats.IncEvaluatedStates()

			if es.openList.IsDeadEnd(succCtx) {
				es.space.MarkDeadEnd(succNode)
				es.stats.IncDeadEnds()
				continue
			}

			es.space.OpenNewNode(succNode, node, id, op.ID, adjusted, op.Cost)
			es.openList.Insert(succCtx, succID)
			es.recordLazy(succID, succCtx)
			if es.progress.check(succCtx) {
				es.rewardProgress()
			}

		case succNode.G > node.G+adjusted:
			switch {
			case succNode.Status == searchspace.StatusOpen:
				es.space.UpdateOpenNodeParent(succNode, node, id, op.ID, adjusted, op.Cost)
				succCtx := evaluation.NewContext(succState, succNode.G, isPreferred, es.stats)
				es.openList.Insert(succCtx, succID)
				es.recordLazy(succID, succCtx)

			case succNode.Status == searchspace.StatusClosed && es.cfg.ReopenClosed:
				es.stats.IncReopened()
				es.space.ReopenClosedNode(succNode, node, id, op.ID, adjusted, op.Cost)
				succCtx := evaluation.NewContext(succState, succNode.G, isPreferred, es.stats)
				es.openList.Insert(succCtx, succID)
				es.recordLazy(succID, succCtx)
				es.emit(observability.LevelVerbose, observability.EventNodeReopened, nil)

			default:
				// Reopening disabled: only the parent chain is rewired, per
				// §9 "reopen-without-reopen policy".
				es.space.UpdateClosedNodeParent(succNode, id, op.ID)
			}

		default:
			// Equally or more expensive path; nothing to do.
		}
	}
}

func (es *EagerSearch) rewardProgress() {
	es.openList.BoostPreferred()
}

func (es *EagerSearch) buildPlan(goalID state.StateID) {
	opIDs, err := es.space.TracePath(goalID)
	if err != nil {
		// The goal node was just closed by expand's caller, so this can
		// only happen from a programming error in the expand/close sequence.
		panic(InternalError{Component: "eagersearch", Message: err.Error()})
	}

	ops := make([]task.Operator, len(opIDs))
	cost := 0
	for i, opID := range opIDs {
		op := es.opByID[opID]
		ops[i] = op
		cost += op.Cost
	}
	es.plan = plan.Plan{Operators: ops, Cost: cost}
}

// Run drives Step in a loop until the search solves, fails, or ctx is
// cancelled / the configured MaxTime elapses (§5: the context is polled only
// at loop boundaries between steps, never inside heuristic computation).
func (es *EagerSearch) Run(ctx context.Context) (plan.Plan, error) {
	es.Initialize()

	deadline := time.Time{}
	if es.cfg.MaxTime > 0 {
		deadline = time.Now().Add(time.Duration(es.cfg.MaxTime * float64(time.Second)))
	}

	for {
		select {
		case <-ctx.Done():
			es.emit(observability.LevelWarning, observability.EventTimeout, nil)
			return plan.Plan{}, fmt.Errorf("%w: %v", ErrOutOfResources, ctx.Err())
		default:
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			es.emit(observability.LevelWarning, observability.EventTimeout, nil)
			return plan.Plan{}, fmt.Errorf("%w: max_time exceeded", ErrOutOfResources)
		}

		switch es.Step() {
		case StatusSolved:
			return es.plan, nil
		case StatusFailed:
			return plan.Plan{}, ErrNoPlan
		}
	}
}
