package searchspace

import (
	"errors"

	"github.com/axiomplan/planner/state"
)

// ErrNotClosed is returned by TracePath when the queried state's node is
// not Closed (§4.2: "Fails with NoPlan only if status != Closed for the
// queried state").
var ErrNotClosed = errors.New("searchspace: state is not closed, cannot trace a plan")

// TracePath reconstructs a plan by walking parents back to a root with no
// parent, returning the operator ids in forward (root-to-goal) order.
func (ss *SearchSpace) TracePath(id state.StateID) ([]int, error) {
	node := ss.GetNode(id)
	if node.Status != StatusClosed {
		return nil, ErrNotClosed
	}

	var reversed []int
	cur := id
	curNode := node
	for curNode.HasParent() {
		reversed = append(reversed, curNode.ParentOp)
		cur = curNode.Parent
		curNode = ss.GetNode(cur)
	}

	plan := make([]int, len(reversed))
	for i, op := range reversed {
		plan[len(reversed)-1-i] = op
	}
	return plan, nil
}
