package searchspace

import (
	"testing"

	"github.com/axiomplan/planner/state"
)

func TestOpenInitialAndExpand(t *testing.T) {
	ss := NewSearchSpace()
	ss.OpenInitial(0)
	initNode := ss.GetNode(0)
	if initNode.Status != StatusOpen || initNode.G != 0 {
		t.Fatalf("initial node = %+v", initNode)
	}

	succNode := ss.GetNode(1)
	ss.OpenNewNode(succNode, initNode, 0, 5, 1, 1)
	if succNode.G != 1 || succNode.Parent != state.StateID(0) || succNode.ParentOp != 5 {
		t.Fatalf("successor node = %+v", succNode)
	}
}

func TestTracePathWalksParentChain(t *testing.T) {
	ss := NewSearchSpace()
	ss.OpenInitial(0)
	n0 := ss.GetNode(0)
	ss.CloseNode(n0)

	n1 := ss.GetNode(1)
	ss.OpenNewNode(n1, n0, 0, 10, 1, 1)
	ss.CloseNode(n1)

	n2 := ss.GetNode(2)
	ss.OpenNewNode(n2, n1, 1, 20, 1, 1)
	ss.CloseNode(n2)

	plan, err := ss.TracePath(2)
	if err != nil {
		t.Fatalf("TracePath: %v", err)
	}
	want := []int{10, 20}
	if len(plan) != len(want) || plan[0] != want[0] || plan[1] != want[1] {
		t.Fatalf("plan = %v, want %v", plan, want)
	}
}

func TestTracePathRejectsNonClosed(t *testing.T) {
	ss := NewSearchSpace()
	ss.OpenInitial(0)
	if _, err := ss.TracePath(0); err != ErrNotClosed {
		t.Fatalf("err = %v, want ErrNotClosed", err)
	}
}

func TestReopenClosedNodeFlipsStatus(t *testing.T) {
	ss := NewSearchSpace()
	ss.OpenInitial(0)
	n0 := ss.GetNode(0)

	n1 := ss.GetNode(1)
	ss.OpenNewNode(n1, n0, 0, 1, 5, 5)
	ss.CloseNode(n1)
	if n1.Status != StatusClosed {
		t.Fatalf("expected closed")
	}

	ss.ReopenClosedNode(n1, n0, 0, 1, 2, 2)
	if n1.Status != StatusOpen {
		t.Fatalf("expected reopened to Open, got %v", n1.Status)
	}
	if n1.G != 2 {
		t.Fatalf("g after reopen = %d, want 2", n1.G)
	}
}
