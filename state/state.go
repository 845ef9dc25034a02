package state

import "github.com/axiomplan/planner/task"

// StateID is an opaque, dense integer index assigned by the Registry. It is
// stable for the Registry's lifetime regardless of further registrations.
type StateID int

// State is a transient unpacked view of a registered state's full variable
// assignment, produced by Registry.LookupState.
type State struct {
	id     StateID
	values []int
}

// ID returns the StateID this view was looked up for.
func (s *State) ID() StateID { return s.id }

// Value returns the value assigned to variable v.
func (s *State) Value(v int) int { return s.values[v] }

// Values returns the full assignment, one entry per variable. Callers must
// not mutate the returned slice.
func (s *State) Values() []int { return s.values }

// HasFact reports whether this state satisfies f.
func (s *State) HasFact(f task.Fact) bool {
	return s.values[f.Var] == f.Value
}

// SatisfiesAll reports whether this state satisfies every fact in facts.
func (s *State) SatisfiesAll(facts []task.Fact) bool {
	for _, f := range facts {
		if !s.HasFact(f) {
			return false
		}
	}
	return true
}
