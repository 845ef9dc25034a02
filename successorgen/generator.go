// Package successorgen enumerates applicable operators for a state. This
// implements SPEC_FULL.md §4.8's counting strategy: a deliberate
// simplification of the original decision/match-tree generator, recorded as
// an open-question resolution in DESIGN.md, since the tree-based
// implementation is not present in this repository's retrieval pack.
package successorgen

import "github.com/axiomplan/planner/task"

// Generator enumerates applicable operators efficiently by precomputing,
// for every (variable, value) fact, the operators that have it as a
// precondition, and counting how many of an operator's preconditions are
// satisfied in a queried state.
type Generator struct {
	operators    []task.Operator
	byFact       [][]int // byFact[propIndex] = operator indices with that fact as a precondition
	varOffset    []int
	alwaysApplicable []int // operators with zero preconditions
}

// Build constructs a Generator for t's operators.
func Build(t task.Proxy) *Generator {
	vars := t.Variables()
	g := &Generator{operators: t.Operators(), varOffset: make([]int, len(vars))}

	total := 0
	for i, v := range vars {
		g.varOffset[i] = total
		total += v.DomainSize
	}
	g.byFact = make([][]int, total)

	for opIdx, op := range g.operators {
		if len(op.Preconditions) == 0 {
			g.alwaysApplicable = append(g.alwaysApplicable, opIdx)
			continue
		}
		for _, pre := range op.Preconditions {
			idx := g.propIndex(pre.Var, pre.Value)
			g.byFact[idx] = append(g.byFact[idx], opIdx)
		}
	}
	return g
}

func (g *Generator) propIndex(v, value int) int {
	return g.varOffset[v] + value
}

// ApplicableOperators returns every operator whose preconditions are
// satisfied by values (one entry per variable). Every returned operator
// satisfies its preconditions in the queried state (§8 property 3); no
// inapplicable operator is ever returned.
func (g *Generator) ApplicableOperators(values []int) []task.Operator {
	counts := make(map[int]int)
	var applicable []int
	applicable = append(applicable, g.alwaysApplicable...)

	for v, val := range values {
		for _, opIdx := range g.byFact[g.propIndex(v, val)] {
			counts[opIdx]++
			if counts[opIdx] == len(g.operators[opIdx].Preconditions) {
				applicable = append(applicable, opIdx)
			}
		}
	}

	out := make([]task.Operator, len(applicable))
	for i, idx := range applicable {
		out[i] = g.operators[idx]
	}
	return out
}
