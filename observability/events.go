package observability

// Event types emitted by the search core and its CLI wrapper.
const (
	EventSearchStart      EventType = "search.start"
	EventInitialStateDead EventType = "search.initial_state_dead"
	EventNodeExpanded     EventType = "search.node_expanded"
	EventNodeReopened     EventType = "search.node_reopened"
	EventDeadEnd          EventType = "search.dead_end"
	EventGoalFound        EventType = "search.goal_found"
	EventSearchExhausted  EventType = "search.exhausted"
	EventBoundPruned      EventType = "search.bound_pruned"
	EventTimeout          EventType = "search.timeout"
	EventProgress         EventType = "search.progress"
)
