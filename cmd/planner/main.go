// Command planner runs the eager best-first search core over a JSON task
// file (SPEC_FULL.md §3) and prints the resulting plan in the textual form
// of spec.md §6, exiting with the matching process-level code.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/axiomplan/planner/config"
	"github.com/axiomplan/planner/eagersearch"
	"github.com/axiomplan/planner/evaluation"
	"github.com/axiomplan/planner/internalerror"
	"github.com/axiomplan/planner/maxheuristic"
	"github.com/axiomplan/planner/observability"
	"github.com/axiomplan/planner/openlist"
	"github.com/axiomplan/planner/plan"
	"github.com/axiomplan/planner/pruning"
	"github.com/axiomplan/planner/task"
)

func main() {
	var (
		taskFile   = flag.String("task", "", "Path to task JSON file (required)")
		configFile = flag.String("config", "", "Path to config JSON file")
		bound      = flag.Int("bound", 0, "Upper cost bound (overrides config when positive); 0 keeps the config value")
		maxTime    = flag.Float64("max-time", 0, "Wall-clock budget in seconds (overrides config when positive); 0 keeps the config value")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if *taskFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: planner -task <file.json> [-config <file.json>] [-bound N] [-max-time SECONDS] [-verbose]")
		flag.PrintDefaults()
		os.Exit(plan.ExitInputError)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(plan.ExitInputError)
		}
		cfg = *loaded
	}
	if *bound > 0 {
		cfg.Bound = *bound
	}
	if *maxTime > 0 {
		cfg.MaxTimeSeconds = *maxTime
	}

	t, err := task.Load(*taskFile)
	if err != nil {
		logger.Error("failed to load task", "error", err)
		os.Exit(plan.ExitInputError)
	}

	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		logger.Error("failed to resolve observer", "error", err)
		os.Exit(plan.ExitInputError)
	}

	if cfg.Heuristic != "max" {
		logger.Error("unsupported heuristic", "name", cfg.Heuristic)
		os.Exit(plan.ExitUnsupportedFeature)
	}

	h := maxheuristic.Build(t)
	g := evaluation.NewGEvaluator()
	f := evaluation.NewSumEvaluator(g, h)

	var preferred []evaluation.Evaluator
	for _, name := range cfg.Preferred {
		if name != "max" {
			logger.Error("unsupported preferred evaluator", "name", name)
			os.Exit(plan.ExitUnsupportedFeature)
		}
		preferred = append(preferred, h)
	}

	if cfg.Pruning != "null" {
		logger.Error("unsupported pruning method", "name", cfg.Pruning)
		os.Exit(plan.ExitUnsupportedFeature)
	}

	openList := buildOpenList(f, preferred)

	es, err := eagersearch.New(eagersearch.Config{
		Task:         t,
		OpenList:     openList,
		ReopenClosed: cfg.ReopenClosed(),
		FEvaluator:   f,
		Preferred:    preferred,
		Pruning:      pruning.NewNullMethod(),
		CostType:     convertCostType(cfg.CostType),
		Bound:        cfg.Bound,
		MaxTime:      cfg.MaxTimeSeconds,
		Observer:     observer,
	})
	if err != nil {
		logger.Error("invalid search configuration", "error", err)
		os.Exit(plan.ExitInputError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, runErr := runWithRecovery(ctx, es)
	if runErr != nil {
		switch {
		case errors.Is(runErr, eagersearch.ErrNoPlan):
			logger.Info("search exhausted the state space", "run_id", es.RunID())
			os.Exit(plan.ExitNoPlan)
		case errors.Is(runErr, eagersearch.ErrOutOfResources):
			logger.Warn("search aborted by resource limit", "error", runErr)
			os.Exit(plan.ExitResourceLimit)
		default:
			logger.Error("search failed", "error", runErr)
			os.Exit(plan.ExitInputError)
		}
	}

	fmt.Print(plan.Format(result, cfg.CostType == config.CostTypeOne))
	logReport(logger, es)
	os.Exit(plan.ExitPlanFound)
}

func buildOpenList(f evaluation.Evaluator, preferred []evaluation.Evaluator) openlist.OpenList {
	mainList := openlist.NewStandard(f, false)
	if len(preferred) == 0 {
		return mainList
	}
	preferredList := openlist.NewStandard(f, true)
	return openlist.NewAlternation(
		[]openlist.OpenList{mainList, preferredList},
		[]bool{false, true},
		[]int{1, 1},
	)
}

func convertCostType(c config.CostType) eagersearch.CostType {
	switch c {
	case config.CostTypeOne:
		return eagersearch.CostTypeOne
	case config.CostTypePlusOne:
		return eagersearch.CostTypePlusOne
	default:
		return eagersearch.CostTypeNormal
	}
}

// runWithRecovery converts an Internal invariant-violation panic (spec §7)
// into a returned error so main can still choose an exit code, rather than
// letting it crash the process with a bare stack trace.
func runWithRecovery(ctx context.Context, es *eagersearch.EagerSearch) (result plan.Plan, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(internalerror.InternalError); ok {
				err = fmt.Errorf("internal error: %w", ie)
				return
			}
			panic(r)
		}
	}()
	result, err = es.Run(ctx)
	return result, err
}

func logReport(logger *slog.Logger, es *eagersearch.EagerSearch) {
	stats := es.Statistics()
	logger.Info("search finished",
		"run_id", es.RunID(),
		"expanded", stats.Expanded(),
		"evaluated", stats.EvaluatedStates(),
		"generated", stats.Generated(),
		"reopened", stats.Reopened(),
	)
}
