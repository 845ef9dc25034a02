package eagersearch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/axiomplan/planner/eagersearch"
	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/maxheuristic"
	"github.com/axiomplan/planner/openlist"
	"github.com/axiomplan/planner/task"
)

func names(ops []task.Operator) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Name
	}
	return out
}

func equalNames(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// S1: single chain, open list sorted by h=max, reopen disabled.
func TestS1_SingleVariableChain(t *testing.T) {
	tk := s1Task()
	h := maxheuristic.Build(tk)

	es, err := eagersearch.New(eagersearch.Config{
		Task:     tk,
		OpenList: openlist.NewStandard(h, false),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	p, err := es.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !equalNames(names(p.Operators), "op0", "op1") {
		t.Errorf("got plan %v, want [op0 op1]", names(p.Operators))
	}
	if p.Cost != 2 {
		t.Errorf("got cost %d, want 2", p.Cost)
	}
	if es.Statistics().Expanded() != 3 {
		t.Errorf("got %d expansions, want 3", es.Statistics().Expanded())
	}
}

// S2: a cost-5 shortcut exists alongside the cost-2 chain; ordering by
// f = g + h with reopening enabled and an admissible h must still find the
// cheaper plan.
func TestS2_CheaperPathWinsOverShortcut(t *testing.T) {
	tk := s2Task()
	h := maxheuristic.Build(tk)
	g := evaluation.NewGEvaluator()
	f := evaluation.NewSumEvaluator(g, h)

	es, err := eagersearch.New(eagersearch.Config{
		Task:         tk,
		OpenList:     openlist.NewStandard(f, false),
		ReopenClosed: true,
		FEvaluator:   f,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	p, err := es.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if p.Cost != 2 {
		t.Errorf("got cost %d, want 2", p.Cost)
	}
	if !equalNames(names(p.Operators), "op0", "op1") {
		t.Errorf("got plan %v, want [op0 op1]", names(p.Operators))
	}
}

// S3: no operators exist, so the goal is unreachable.
func TestS3_Unsolvable(t *testing.T) {
	tk := s3Task()
	h := maxheuristic.Build(tk)

	es, err := eagersearch.New(eagersearch.Config{
		Task:     tk,
		OpenList: openlist.NewStandard(h, false),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = es.Run(context.Background())
	if !errors.Is(err, eagersearch.ErrNoPlan) {
		t.Fatalf("got err %v, want ErrNoPlan", err)
	}
}

// S4: two independent variables; max-heuristic-guided search must still
// find the two-operator plan without expanding every intermediate state.
func TestS4_IndependentVariables(t *testing.T) {
	tk := s4Task()
	h := maxheuristic.Build(tk)

	es, err := eagersearch.New(eagersearch.Config{
		Task:     tk,
		OpenList: openlist.NewStandard(h, false),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	p, err := es.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(p.Operators) != 2 || p.Cost != 2 {
		t.Errorf("got plan %v cost %d, want length 2 cost 2", names(p.Operators), p.Cost)
	}
	if es.Statistics().Generated() < 2 {
		t.Errorf("got %d generated, want at least 2", es.Statistics().Generated())
	}
	if es.Statistics().Expanded() > 3 {
		t.Errorf("got %d expansions, want <= 3", es.Statistics().Expanded())
	}
}

// S5: bound=1 prunes every successor of a task whose cheapest plan costs 2.
func TestS5_BoundPrunesFrontier(t *testing.T) {
	tk := s5Task()
	h := maxheuristic.Build(tk)

	es, err := eagersearch.New(eagersearch.Config{
		Task:     tk,
		OpenList: openlist.NewStandard(h, false),
		Bound:    1,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = es.Run(context.Background())
	if !errors.Is(err, eagersearch.ErrNoPlan) {
		t.Fatalf("got err %v, want ErrNoPlan", err)
	}
}

// S6: op0's effect on Y is conditioned on X=0, which holds in the initial
// state, so a single application solves the task.
func TestS6_ConditionalEffect(t *testing.T) {
	tk := s6Task()
	h := maxheuristic.Build(tk)

	es, err := eagersearch.New(eagersearch.Config{
		Task:     tk,
		OpenList: openlist.NewStandard(h, false),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	p, err := es.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !equalNames(names(p.Operators), "op0") {
		t.Errorf("got plan %v, want [op0]", names(p.Operators))
	}
	if p.Cost != 1 {
		t.Errorf("got cost %d, want 1", p.Cost)
	}
}
