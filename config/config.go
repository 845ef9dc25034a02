// Package config provides the JSON-driven configuration surface for the
// search core (spec §6 "Configuration surface"), following the same
// default-then-merge pattern as kernel.Config and orchestrate/config:
// package-level defaults, a Merge(*Config) that only overwrites fields the
// loaded document actually set, and LoadConfig to tie the two together.
//
// Evaluators and the pruning method are runtime objects, not JSON values, so
// this package only carries the names cmd/planner resolves them by
// (Heuristic, Preferred, Pruning, Observer) plus the scalar knobs cmd/planner
// passes on to eagersearch.Config (ReopenClosed, CostType, Bound,
// MaxTimeSeconds). Verbosity is loaded and merged like the other fields, but
// no other package reads it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Verbosity mirrors spec §6's {Silent, Normal, Verbose, Debug} levels.
type Verbosity string

const (
	VerbositySilent  Verbosity = "silent"
	VerbosityNormal  Verbosity = "normal"
	VerbosityVerbose Verbosity = "verbose"
	VerbosityDebug   Verbosity = "debug"
)

// CostType mirrors spec §6's OperatorCost ∈ {Normal, One, PlusOne}.
type CostType string

const (
	CostTypeNormal  CostType = "normal"
	CostTypeOne     CostType = "one"
	CostTypePlusOne CostType = "plus_one"
)

// Config is the configuration surface of spec §6, minus the evaluator and
// pruning objects themselves (those are constructed by cmd/planner from the
// Heuristic/Pruning/Preferred names once the task is loaded).
type Config struct {
	// ReopenClosedNil follows the *bool-with-true-default convention: nil
	// means "use the default" (true), distinguishing "unset" from
	// "explicitly disabled" after a partial JSON merge.
	ReopenClosedNil *bool `json:"reopen_closed,omitempty"`

	// Heuristic names the evaluator used as the f-evaluator's h-term; "max"
	// is the only one this repository ships.
	Heuristic string `json:"heuristic,omitempty"`

	// Preferred lists evaluator names whose preferred-operator sets feed
	// the alternation open list's preferred sub-lists.
	Preferred []string `json:"preferred,omitempty"`

	// Pruning names the pruning.Method to construct; "null" is the only
	// one this repository ships.
	Pruning string `json:"pruning,omitempty"`

	CostType CostType `json:"cost_type,omitempty"`

	// Bound is the upper cost bound (spec §6); zero means "no bound". Merge
	// only copies a positive Bound, so a zero in a loaded document never
	// overrides an existing bound.
	Bound int `json:"bound,omitempty"`

	// MaxTimeSeconds is the wall-clock budget; zero means unlimited.
	MaxTimeSeconds float64 `json:"max_time,omitempty"`

	Verbosity Verbosity `json:"verbosity,omitempty"`

	// Observer names the observability.Observer to register the search
	// loop's events with ("noop" or "slog").
	Observer string `json:"observer,omitempty"`
}

// DefaultConfig returns a Config with the core's default behavior: closed
// nodes are reopened on a cheaper path, no bound, no time limit, normal
// verbosity, the max heuristic used both for ordering and as the preferred
// evaluator, null pruning, and a slog observer.
func DefaultConfig() Config {
	return Config{
		Heuristic: "max",
		Preferred: []string{"max"},
		Pruning:   "null",
		CostType:  CostTypeNormal,
		Verbosity: VerbosityNormal,
		Observer:  "slog",
	}
}

// ReopenClosed reports the effective reopen-closed-nodes setting, defaulting
// to true when unset.
func (c *Config) ReopenClosed() bool {
	if c.ReopenClosedNil == nil {
		return true
	}
	return *c.ReopenClosedNil
}

// Merge applies non-zero-valued fields from source into c.
func (c *Config) Merge(source *Config) {
	if source.ReopenClosedNil != nil {
		c.ReopenClosedNil = source.ReopenClosedNil
	}
	if source.Heuristic != "" {
		c.Heuristic = source.Heuristic
	}
	if len(source.Preferred) > 0 {
		c.Preferred = source.Preferred
	}
	if source.Pruning != "" {
		c.Pruning = source.Pruning
	}
	if source.CostType != "" {
		c.CostType = source.CostType
	}
	if source.Bound > 0 {
		c.Bound = source.Bound
	}
	if source.MaxTimeSeconds > 0 {
		c.MaxTimeSeconds = source.MaxTimeSeconds
	}
	if source.Verbosity != "" {
		c.Verbosity = source.Verbosity
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a JSON config file and merges it over DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
