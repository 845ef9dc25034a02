// Package openlist implements the open-list abstraction: ordered frontiers
// of (sort key, StateID) entries that the eager search loop pops from in
// sort-key order, tie-broken FIFO.
package openlist

import (
	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/internalerror"
	"github.com/axiomplan/planner/state"
)

// OpenList is the contract every open-list variant implements (§4.5).
type OpenList interface {
	// Insert evaluates the list's evaluators via ctx; if the state is a
	// dead end under this list's evaluators, the entry is not inserted.
	Insert(ctx *evaluation.Context, id state.StateID)

	// RemoveMin returns the entry with the lexicographically smallest sort
	// key, ties broken FIFO. Panics if the list is empty.
	RemoveMin() state.StateID

	Empty() bool

	// IsDeadEnd reports whether any of the list's evaluators is infinite for
	// the state ctx was built for.
	IsDeadEnd(ctx *evaluation.Context) bool

	// BoostPreferred increases the priority of entries reached via
	// preferred transitions. Default is a no-op; alternation-style lists
	// override it.
	BoostPreferred()

	// CollectPathDependentEvaluators appends every evaluator owned
	// (recursively) by this list that needs transition notifications.
	CollectPathDependentEvaluators(out *evaluation.EvaluatorSet)
}

func panicEmpty(listKind string) {
	internalerror.Panicf("openlist", "RemoveMin called on an empty %s open list", listKind)
}
