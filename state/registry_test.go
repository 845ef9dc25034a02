package state

import "github.com/axiomplan/planner/task"

type fakeTask struct {
	vars     []task.Variable
	ops      []task.Operator
	axioms   []task.Axiom
	initial  []int
	goals    []task.Fact
}

func (f *fakeTask) Variables() []task.Variable     { return f.vars }
func (f *fakeTask) Operators() []task.Operator     { return f.ops }
func (f *fakeTask) Axioms() []task.Axiom           { return f.axioms }
func (f *fakeTask) InitialStateValues() []int      { return f.initial }
func (f *fakeTask) Goals() []task.Fact             { return f.goals }

func singleVarTask() *fakeTask {
	return &fakeTask{
		vars:    []task.Variable{{DomainSize: 3, AxiomLayer: -1}},
		initial: []int{0},
		goals:   []task.Fact{{Var: 0, Value: 2}},
		ops: []task.Operator{
			{ID: 0, Name: "op0", Preconditions: []task.Fact{{Var: 0, Value: 0}},
				Effects: []task.Effect{{Fact: task.Fact{Var: 0, Value: 1}}}, Cost: 1},
			{ID: 1, Name: "op1", Preconditions: []task.Fact{{Var: 0, Value: 1}},
				Effects: []task.Effect{{Fact: task.Fact{Var: 0, Value: 2}}}, Cost: 1},
		},
	}
}
