package state

import (
	"testing"

	"github.com/axiomplan/planner/task"
)

func TestGetInitialStateCanonicalizes(t *testing.T) {
	r := NewRegistry(singleVarTask())
	id1, s1 := r.GetInitialState()
	id2, s2 := r.GetInitialState()
	if id1 != id2 {
		t.Fatalf("initial state registered twice under different ids: %d vs %d", id1, id2)
	}
	if s1.Value(0) != 0 || s2.Value(0) != 0 {
		t.Fatalf("unexpected initial values")
	}
	if r.Size() != 1 {
		t.Fatalf("registry size = %d, want 1", r.Size())
	}
}

func TestGetSuccessorStateAppliesEffects(t *testing.T) {
	r := NewRegistry(singleVarTask())
	_, init := r.GetInitialState()
	id, succ := r.GetSuccessorState(init, singleVarTask().ops[0])
	if succ.Value(0) != 1 {
		t.Fatalf("successor value = %d, want 1", succ.Value(0))
	}
	look := r.LookupState(id)
	if look.Value(0) != 1 {
		t.Fatalf("lookup value = %d, want 1", look.Value(0))
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := NewRegistry(singleVarTask())
	_, init := r.GetInitialState()
	op := singleVarTask().ops[0]
	id1, _ := r.GetSuccessorState(init, op)
	id2, _ := r.GetSuccessorState(init, op)
	if id1 != id2 {
		t.Fatalf("same successor registered under different ids: %d vs %d", id1, id2)
	}
}

func TestApplyInapplicableOperatorPanics(t *testing.T) {
	r := NewRegistry(singleVarTask())
	_, init := r.GetInitialState()
	badOp := singleVarTask().ops[1] // requires V=1, but init has V=0
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for inapplicable operator")
		}
	}()
	r.GetSuccessorState(init, badOp)
}

func TestAxiomClosure(t *testing.T) {
	// Derived variable D (layer 0) mirrors V=1 via an axiom; V is non-derived.
	ft := &fakeTask{
		vars: []task.Variable{
			{DomainSize: 2, AxiomLayer: -1},
			{DomainSize: 2, AxiomLayer: 0},
		},
		initial: []int{1, 0},
		axioms: []task.Axiom{
			{
				Preconditions: []task.Fact{{Var: 0, Value: 1}},
				Effects:       []task.Effect{{Fact: task.Fact{Var: 1, Value: 1}}},
			},
		},
	}
	r := NewRegistry(ft)
	_, init := r.GetInitialState()
	if init.Value(1) != 1 {
		t.Fatalf("derived variable = %d, want 1 after axiom closure", init.Value(1))
	}
}
