// Package pruning implements the pruning hook (§4.9): a PruningMethod
// filters the applicable operators the successor generator returns for a
// state, before the search loop expands them.
package pruning

import "github.com/axiomplan/planner/task"

// Method matches PruningMethod from the configuration surface (§6). It
// tracks before/after successor counts the way pruning_method.h does, so any
// implementation's effectiveness can be reported in search statistics.
type Method interface {
	Initialize(t task.Proxy)
	PruneOperators(values []int, ops []task.Operator) []task.Operator
	NumSuccessorsBeforePruning() int
	NumSuccessorsAfterPruning() int
}

// NullMethod prunes nothing. It is the shipped default: §1 treats concrete
// landmark-factory-backed pruning as out of scope, so this is what every
// consumer of Method gets without pulling in a landmark factory.
type NullMethod struct {
	before int
	after  int
}

// NewNullMethod returns a pass-through pruning method.
func NewNullMethod() *NullMethod { return &NullMethod{} }

func (m *NullMethod) Initialize(t task.Proxy) {}

func (m *NullMethod) PruneOperators(values []int, ops []task.Operator) []task.Operator {
	m.before += len(ops)
	m.after += len(ops)
	return ops
}

func (m *NullMethod) NumSuccessorsBeforePruning() int { return m.before }
func (m *NullMethod) NumSuccessorsAfterPruning() int  { return m.after }
