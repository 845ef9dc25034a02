// Package plan formats the search loop's output: an ordered operator
// sequence and its textual rendering, plus the process-level exit codes
// every outcome maps to (§6).
package plan

import (
	"fmt"
	"strings"

	"github.com/axiomplan/planner/task"
)

// Plan is an ordered operator sequence from the initial state to a goal
// state, together with its total cost.
type Plan struct {
	Operators []task.Operator
	Cost      int
}

// Format renders p in the textual form of §6: one operator name per line
// followed by a cost comment line. unitCost selects which cost-kind label
// the comment line carries.
func Format(p Plan, unitCost bool) string {
	var b strings.Builder
	for _, op := range p.Operators {
		b.WriteString(op.Name)
		b.WriteByte('\n')
	}
	kind := "general cost"
	if unitCost {
		kind = "unit cost"
	}
	fmt.Fprintf(&b, "; cost = %d (%s)\n", p.Cost, kind)
	return b.String()
}

// Exit codes, process-level and informational (§6).
const (
	ExitPlanFound          = 0
	ExitNoPlan             = 11
	ExitResourceLimit      = 12
	ExitInputError         = 22
	ExitUnsupportedFeature = 23
)
