// Package searchspace maps StateID to SearchNode: the per-state status, cost
// so far, and parent chain the search loop reads and mutates every step.
package searchspace

import "github.com/axiomplan/planner/state"

// NodeStatus is a search node's place in the New -> Open -> Closed state
// machine (§3 invariant 3). DeadEnd is reachable from Open or Closed and is
// terminal.
type NodeStatus int

const (
	StatusNew NodeStatus = iota
	StatusOpen
	StatusClosed
	StatusDeadEnd
)

func (s NodeStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	case StatusDeadEnd:
		return "dead-end"
	default:
		return "unknown"
	}
}

// NoParent marks a node with no parent (the initial state, or a node never
// opened).
const NoParent = state.StateID(-1)

// NoOperator marks a node with no generating operator.
const NoOperator = -1

// SearchNode is a handle into the search space: status, both g-values
// (§9 "bound and cost adjustment"), and the parent chain used to
// reconstruct a plan.
type SearchNode struct {
	Status NodeStatus

	// G uses adjusted cost and drives open-list ordering.
	G int
	// RealG uses true operator cost and enforces the search bound. The two
	// coincide when cost_type is Normal.
	RealG int

	Parent    state.StateID
	ParentOp  int
}

// HasParent reports whether this node has a recorded parent.
func (n *SearchNode) HasParent() bool { return n.Parent != NoParent }
