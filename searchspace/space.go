package searchspace

import (
	"github.com/axiomplan/planner/collections"
	"github.com/axiomplan/planner/state"
)

// SearchSpace is a dense StateID -> SearchNode mapping, backed by a
// segmented vector indexed by the numeric id (§4.2).
type SearchSpace struct {
	nodes *collections.SegmentedVector[SearchNode]
}

// NewSearchSpace returns an empty search space.
func NewSearchSpace() *SearchSpace {
	return &SearchSpace{nodes: collections.NewSegmentedVector[SearchNode]()}
}

// GetNode returns a handle to mutate the node for id, creating it (as
// StatusNew, with no parent) on first access.
func (ss *SearchSpace) GetNode(id state.StateID) *SearchNode {
	idx := int(id)
	for ss.nodes.Size() <= idx {
		ss.nodes.Push(SearchNode{Status: StatusNew, G: -1, RealG: -1, Parent: NoParent, ParentOp: NoOperator})
	}
	return ss.nodes.Get(idx)
}

// OpenInitial sets the initial state's node to Open with g = 0, no parent.
func (ss *SearchSpace) OpenInitial(id state.StateID) *SearchNode {
	node := ss.GetNode(id)
	node.Status = StatusOpen
	node.G = 0
	node.RealG = 0
	node.Parent = NoParent
	node.ParentOp = NoOperator
	return node
}

// OpenNewNode sets a freshly-discovered successor node to Open, linking the
// parent chain and computing g = parent.g + adjustedCost (and the
// corresponding real_g).
func (ss *SearchSpace) OpenNewNode(node, parent *SearchNode, parentID state.StateID, op int, adjustedCost, realCost int) {
	node.Status = StatusOpen
	node.G = parent.G + adjustedCost
	node.RealG = parent.RealG + realCost
	node.Parent = parentID
	node.ParentOp = op
}

// UpdateOpenNodeParent rewires an already-Open node onto a cheaper path: the
// old open-list entry for it becomes stale and must be skipped on pop.
func (ss *SearchSpace) UpdateOpenNodeParent(node, parent *SearchNode, parentID state.StateID, op int, adjustedCost, realCost int) {
	node.G = parent.G + adjustedCost
	node.RealG = parent.RealG + realCost
	node.Parent = parentID
	node.ParentOp = op
}

// ReopenClosedNode flips a Closed node back to Open when reopening is
// enabled and a strictly cheaper path has been found.
func (ss *SearchSpace) ReopenClosedNode(node, parent *SearchNode, parentID state.StateID, op int, adjustedCost, realCost int) {
	node.Status = StatusOpen
	node.G = parent.G + adjustedCost
	node.RealG = parent.RealG + realCost
	node.Parent = parentID
	node.ParentOp = op
}

// UpdateClosedNodeParent rewires only the parent chain of a Closed node
// when reopening is disabled. g and real_g are left untouched, so the
// recorded g may become inconsistent with the reconstructed path cost — this
// is documented behavior (§9 "reopen-without-reopen policy"), not a bug.
func (ss *SearchSpace) UpdateClosedNodeParent(node *SearchNode, parentID state.StateID, op int) {
	node.Parent = parentID
	node.ParentOp = op
}

// CloseNode transitions an Open node to Closed.
func (ss *SearchSpace) CloseNode(node *SearchNode) {
	node.Status = StatusClosed
}

// MarkDeadEnd transitions a node to the terminal DeadEnd status.
func (ss *SearchSpace) MarkDeadEnd(node *SearchNode) {
	node.Status = StatusDeadEnd
}
