package eagersearch

// Statistics mirrors search_statistics.h's counters. Field names follow the
// original's get_*/inc_* pairs, translated into plain Go getters/setters
// since there is no access-control reason for the indirection here.
type Statistics struct {
	expandedStates  int
	evaluatedStates int
	evaluations     int
	generatedStates int
	reopenedStates  int
	deadEndStates   int
	generatedOps    int

	lastjumpFValue          int
	lastjumpExpandedStates  int
	lastjumpReopenedStates  int
	lastjumpEvaluatedStates int
	lastjumpGeneratedStates int
}

// NewStatistics returns a zeroed statistics counter set.
func NewStatistics() *Statistics { return &Statistics{lastjumpFValue: -1} }

func (s *Statistics) IncExpanded()          { s.expandedStates++ }
func (s *Statistics) IncEvaluatedStates()   { s.evaluatedStates++ }
func (s *Statistics) IncEvaluations()       { s.evaluations++ }
func (s *Statistics) IncGenerated()         { s.generatedStates++ }
func (s *Statistics) IncReopened()          { s.reopenedStates++ }
func (s *Statistics) IncGeneratedOps(n int) { s.generatedOps += n }
func (s *Statistics) IncDeadEnds()          { s.deadEndStates++ }

func (s *Statistics) Expanded() int        { return s.expandedStates }
func (s *Statistics) EvaluatedStates() int { return s.evaluatedStates }
func (s *Statistics) Evaluations() int     { return s.evaluations }
func (s *Statistics) Generated() int       { return s.generatedStates }
func (s *Statistics) Reopened() int        { return s.reopenedStates }
func (s *Statistics) GeneratedOps() int    { return s.generatedOps }
func (s *Statistics) DeadEnds() int        { return s.deadEndStates }

func (s *Statistics) LastJumpFValue() int          { return s.lastjumpFValue }
func (s *Statistics) LastJumpExpandedStates() int  { return s.lastjumpExpandedStates }
func (s *Statistics) LastJumpReopenedStates() int  { return s.lastjumpReopenedStates }
func (s *Statistics) LastJumpEvaluatedStates() int { return s.lastjumpEvaluatedStates }
func (s *Statistics) LastJumpGeneratedStates() int { return s.lastjumpGeneratedStates }

// ReportFValueProgress notices "jumps": the first time (or every further
// time) the reported f exceeds the highest value seen so far, it snapshots
// the other counters alongside it, matching search_statistics.cc's
// reasoning that jump-point statistics are tie-break-independent for an
// admissible, consistent heuristic.
func (s *Statistics) ReportFValueProgress(f int) {
	if f <= s.lastjumpFValue {
		return
	}
	s.lastjumpFValue = f
	s.lastjumpExpandedStates = s.expandedStates
	s.lastjumpReopenedStates = s.reopenedStates
	s.lastjumpEvaluatedStates = s.evaluatedStates
	s.lastjumpGeneratedStates = s.generatedStates
}
