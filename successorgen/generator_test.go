package successorgen

import "github.com/axiomplan/planner/task"

type fakeTask struct {
	vars []task.Variable
	ops  []task.Operator
}

func (f *fakeTask) Variables() []task.Variable    { return f.vars }
func (f *fakeTask) Operators() []task.Operator    { return f.ops }
func (f *fakeTask) Axioms() []task.Axiom          { return nil }
func (f *fakeTask) InitialStateValues() []int     { return nil }
func (f *fakeTask) Goals() []task.Fact            { return nil }
