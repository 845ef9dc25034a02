package eagersearch_test

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

// s1Task is spec scenario S1: a single variable V in {0,1,2}, two
// unit-cost operators chaining V:0->1->2.
func s1Task() *fakeTask {
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

// s2Task is S1 plus a shortcut operator op2: V:0->2 at cost 5, still
// strictly worse than the two-step path.
func s2Task() *fakeTask {
	t := s1Task()
	t.ops = append(t.ops, task.Operator{
		ID: 2, Name: "op2", Preconditions: []task.Fact{{Var: 0, Value: 0}},
		Effects: []task.Effect{{Fact: task.Fact{Var: 0, Value: 2}}}, Cost: 5,
	})
	return t
}

// s3Task is the unsolvable scenario: no operator can ever move V from 0 to
// its goal value 1.
func s3Task() *fakeTask {
	return &fakeTask{
		vars:    []task.Variable{{DomainSize: 2, AxiomLayer: -1}},
		initial: []int{0},
		goals:   []task.Fact{{Var: 0, Value: 1}},
	}
}

// s4Task is two independent binary variables, each flipped by its own
// unit-cost operator; the goal requires both flipped.
func s4Task() *fakeTask {
	return &fakeTask{
		vars:    []task.Variable{{DomainSize: 2, AxiomLayer: -1}, {DomainSize: 2, AxiomLayer: -1}},
		initial: []int{0, 0},
		goals:   []task.Fact{{Var: 0, Value: 1}, {Var: 1, Value: 1}},
		ops: []task.Operator{
			{ID: 0, Name: "flip-a", Preconditions: []task.Fact{{Var: 0, Value: 0}},
				Effects: []task.Effect{{Fact: task.Fact{Var: 0, Value: 1}}}, Cost: 1},
			{ID: 1, Name: "flip-b", Preconditions: []task.Fact{{Var: 1, Value: 0}},
				Effects: []task.Effect{{Fact: task.Fact{Var: 1, Value: 1}}}, Cost: 1},
		},
	}
}

// s5Task is S1's chain task, used with a bound of 1 to prune the entire
// frontier (the cheapest plan costs 2).
func s5Task() *fakeTask {
	return s1Task()
}

// s6Task exercises a conditional effect: op0 sets Y=1 only when X=0 holds,
// which it does in the initial state.
func s6Task() *fakeTask {
	return &fakeTask{
		vars:    []task.Variable{{DomainSize: 2, AxiomLayer: -1}, {DomainSize: 2, AxiomLayer: -1}},
		initial: []int{0, 0},
		goals:   []task.Fact{{Var: 1, Value: 1}},
		ops: []task.Operator{
			{
				ID: 0, Name: "op0",
				Preconditions: []task.Fact{{Var: 0, Value: 0}},
				Effects: []task.Effect{
					{Fact: task.Fact{Var: 1, Value: 1}, Conditions: []task.Fact{{Var: 0, Value: 0}}},
				},
				Cost: 1,
			},
		},
	}
}
