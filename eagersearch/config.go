package eagersearch

import (
	"math"

	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/observability"
	"github.com/axiomplan/planner/openlist"
	"github.com/axiomplan/planner/pruning"
	"github.com/axiomplan/planner/task"
)

// CostType mirrors OperatorCost ∈ {Normal, One, PlusOne} (spec §6).
type CostType int

const (
	CostTypeNormal CostType = iota
	CostTypeOne
	CostTypePlusOne
)

// unboundedBound is the sentinel used when Config.Bound is left at its zero
// value, meaning "no bound" (spec §6: "default Infinity").
const unboundedBound = math.MaxInt32

// Config is the full construction-time configuration of an EagerSearch
// instance (spec §6's configuration surface, plus the task and open list
// every search needs a concrete instance of).
type Config struct {
	Task task.Proxy

	OpenList openlist.OpenList

	ReopenClosed bool

	// FEvaluator is used only for progress reporting (spec §9
	// "start/update_f_value_statistics"), not for ordering — the open list
	// already encodes its own ordering evaluator(s).
	FEvaluator evaluation.Evaluator

	Preferred []evaluation.Evaluator

	Pruning pruning.Method

	// LazyEvaluator, if set, must report DoesCacheEstimates() == true or
	// New returns an error wrapping ErrInputError.
	LazyEvaluator evaluation.Evaluator

	CostType CostType

	// Bound is the upper real-cost bound; zero means unbounded.
	Bound int

	// MaxTime is the wall-clock budget in seconds; zero means unlimited.
	MaxTime float64

	Observer observability.Observer
}

func (c *Config) effectiveBound() int {
	if c.Bound <= 0 {
		return unboundedBound
	}
	return c.Bound
}

func (c *Config) effectiveObserver() observability.Observer {
	if c.Observer == nil {
		return observability.NoOpObserver{}
	}
	return c.Observer
}

func (c *Config) effectivePruning() pruning.Method {
	if c.Pruning == nil {
		return pruning.NewNullMethod()
	}
	return c.Pruning
}

// adjustedCost applies the configured OperatorCost transform to op (spec §9
// "bound and cost adjustment").
func (c *Config) adjustedCost(op task.Operator) int {
	switch c.CostType {
	case CostTypeOne:
		return 1
	case CostTypePlusOne:
		return op.Cost + 1
	default:
		return op.Cost
	}
}
