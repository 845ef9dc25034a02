package maxheuristic

import "github.com/axiomplan/planner/task"

type fakeTask struct {
	vars    []task.Variable
	ops     []task.Operator
	axioms  []task.Axiom
	initial []int
	goals   []task.Fact
}

func (f *fakeTask) Variables() []task.Variable { return f.vars }
func (f *fakeTask) Operators() []task.Operator { return f.ops }
func (f *fakeTask) Axioms() []task.Axiom       { return f.axioms }
func (f *fakeTask) InitialStateValues() []int  { return f.initial }
func (f *fakeTask) Goals() []task.Fact         { return f.goals }
