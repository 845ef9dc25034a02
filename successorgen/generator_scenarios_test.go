package successorgen

import (
	"testing"

	"github.com/axiomplan/planner/task"
)

func twoVarTask() *fakeTask {
	return &fakeTask{
		vars: []task.Variable{{DomainSize: 2, AxiomLayer: -1}, {DomainSize: 2, AxiomLayer: -1}},
		ops: []task.Operator{
			{ID: 0, Name: "opA", Preconditions: []task.Fact{{Var: 0, Value: 0}},
				Effects: []task.Effect{{Fact: task.Fact{Var: 0, Value: 1}}}, Cost: 1},
			{ID: 1, Name: "opB", Preconditions: []task.Fact{{Var: 1, Value: 0}},
				Effects: []task.Effect{{Fact: task.Fact{Var: 1, Value: 1}}}, Cost: 1},
			{ID: 2, Name: "opBoth", Preconditions: []task.Fact{{Var: 0, Value: 0}, {Var: 1, Value: 0}},
				Effects: []task.Effect{{Fact: task.Fact{Var: 0, Value: 1}}}, Cost: 1},
			{ID: 3, Name: "opFree", Preconditions: nil,
				Effects: []task.Effect{{Fact: task.Fact{Var: 0, Value: 1}}}, Cost: 1},
		},
	}
}

func TestApplicableOperatorsOnlyReturnsSatisfiedOnes(t *testing.T) {
	g := Build(twoVarTask())
	ops := g.ApplicableOperators([]int{0, 1})
	names := map[string]bool{}
	for _, op := range ops {
		names[op.Name] = true
	}
	if !names["opA"] || !names["opFree"] {
		t.Fatalf("expected opA and opFree to be applicable, got %v", names)
	}
	if names["opB"] || names["opBoth"] {
		t.Fatalf("opB/opBoth should not be applicable when var1=1, got %v", names)
	}
}

func TestApplicableOperatorsRequiresAllPreconditions(t *testing.T) {
	g := Build(twoVarTask())
	ops := g.ApplicableOperators([]int{0, 0})
	names := map[string]bool{}
	for _, op := range ops {
		names[op.Name] = true
	}
	for _, want := range []string{"opA", "opB", "opBoth", "opFree"} {
		if !names[want] {
			t.Fatalf("expected %s to be applicable when both vars are 0, got %v", want, names)
		}
	}
}

func TestApplicableOperatorsSatisfyPreconditionsInQueriedState(t *testing.T) {
	g := Build(twoVarTask())
	values := []int{1, 0}
	for _, op := range g.ApplicableOperators(values) {
		for _, pre := range op.Preconditions {
			if values[pre.Var] != pre.Value {
				t.Fatalf("operator %s returned as applicable but precondition %v unmet in %v", op.Name, pre, values)
			}
		}
	}
}
