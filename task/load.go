package task

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonFact mirrors Fact for the task file format.
type jsonFact struct {
	Var   int `json:"var"`
	Value int `json:"value"`
}

type jsonEffect struct {
	Fact       jsonFact   `json:"fact"`
	Conditions []jsonFact `json:"conditions"`
}

type jsonOperator struct {
	Name          string       `json:"name"`
	Preconditions []jsonFact   `json:"preconditions"`
	Effects       []jsonEffect `json:"effects"`
	Cost          int          `json:"cost"`
}

type jsonAxiom struct {
	Preconditions []jsonFact   `json:"preconditions"`
	Effects       []jsonEffect `json:"effects"`
}

type jsonVariable struct {
	DomainSize int `json:"domain_size"`
	AxiomLayer int `json:"axiom_layer"`
}

// document is the on-disk shape described in SPEC_FULL.md §3.
type document struct {
	Variables     []jsonVariable `json:"variables"`
	Operators     []jsonOperator `json:"operators"`
	Axioms        []jsonAxiom    `json:"axioms"`
	InitialState  []int          `json:"initial_state"`
	Goals         []jsonFact     `json:"goals"`
}

// Task is a concrete, loaded Proxy. The search core never constructs one
// directly; it only ever holds a Proxy.
type Task struct {
	variables          []Variable
	operators          []Operator
	axioms             []Axiom
	initialStateValues []int
	goals              []Fact
}

var _ Proxy = (*Task)(nil)

func (t *Task) Variables() []Variable         { return t.variables }
func (t *Task) Operators() []Operator         { return t.operators }
func (t *Task) Axioms() []Axiom               { return t.axioms }
func (t *Task) InitialStateValues() []int     { return t.initialStateValues }
func (t *Task) Goals() []Fact                 { return t.goals }

// Load reads a JSON task file and validates it structurally (domain sizes,
// fact references, axiom layers). It does not perform axiom stratification
// or reachability analysis — those remain the job of the task-transformation
// pipeline this core explicitly treats as an external collaborator.
func Load(filename string) (*Task, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}

	t, err := fromDocument(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to load task file %q: %w", filename, err)
	}
	return t, nil
}

func fromDocument(doc *document) (*Task, error) {
	t := &Task{
		initialStateValues: doc.InitialState,
	}

	t.variables = make([]Variable, len(doc.Variables))
	for i, v := range doc.Variables {
		if v.DomainSize <= 0 {
			return nil, fmt.Errorf("%w: variable %d has non-positive domain size %d", ErrMalformedTask, i, v.DomainSize)
		}
		if v.AxiomLayer < -1 {
			return nil, fmt.Errorf("%w: variable %d has invalid axiom layer %d", ErrMalformedTask, i, v.AxiomLayer)
		}
		t.variables[i] = Variable{DomainSize: v.DomainSize, AxiomLayer: v.AxiomLayer}
	}

	if len(doc.InitialState) != len(t.variables) {
		return nil, fmt.Errorf("%w: initial state has %d values, want %d", ErrMalformedTask, len(doc.InitialState), len(t.variables))
	}
	for i, v := range doc.InitialState {
		if v < 0 || v >= t.variables[i].DomainSize {
			return nil, fmt.Errorf("%w: initial value %d for variable %d out of domain", ErrMalformedTask, v, i)
		}
	}

	t.operators = make([]Operator, len(doc.Operators))
	for i, op := range doc.Operators {
		converted, err := convertOperator(i, op, t.variables)
		if err != nil {
			return nil, err
		}
		t.operators[i] = converted
	}

	t.axioms = make([]Axiom, len(doc.Axioms))
	for i, ax := range doc.Axioms {
		pre, err := convertFacts(ax.Preconditions, t.variables)
		if err != nil {
			return nil, fmt.Errorf("axiom %d: %w", i, err)
		}
		eff, err := convertEffects(ax.Effects, t.variables)
		if err != nil {
			return nil, fmt.Errorf("axiom %d: %w", i, err)
		}
		t.axioms[i] = Axiom{Preconditions: pre, Effects: eff}
	}

	t.goals = make([]Fact, len(doc.Goals))
	for i, g := range doc.Goals {
		f, err := convertFact(g, t.variables)
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i, err)
		}
		t.goals[i] = f
	}

	return t, nil
}

func convertOperator(id int, op jsonOperator, vars []Variable) (Operator, error) {
	pre, err := convertFacts(op.Preconditions, vars)
	if err != nil {
		return Operator{}, fmt.Errorf("operator %d (%s): %w", id, op.Name, err)
	}
	eff, err := convertEffects(op.Effects, vars)
	if err != nil {
		return Operator{}, fmt.Errorf("operator %d (%s): %w", id, op.Name, err)
	}
	if op.Cost < 0 {
		return Operator{}, fmt.Errorf("%w: operator %d (%s) has negative cost %d", ErrMalformedTask, id, op.Name, op.Cost)
	}
	name := op.Name
	if name == "" {
		name = fmt.Sprintf("op%d", id)
	}
	return Operator{ID: id, Name: name, Preconditions: pre, Effects: eff, Cost: op.Cost}, nil
}

func convertFacts(facts []jsonFact, vars []Variable) ([]Fact, error) {
	out := make([]Fact, len(facts))
	for i, f := range facts {
		conv, err := convertFact(f, vars)
		if err != nil {
			return nil, err
		}
		out[i] = conv
	}
	return out, nil
}

func convertFact(f jsonFact, vars []Variable) (Fact, error) {
	if f.Var < 0 || f.Var >= len(vars) {
		return Fact{}, fmt.Errorf("%w: fact references unknown variable %d", ErrMalformedTask, f.Var)
	}
	if f.Value < 0 || f.Value >= vars[f.Var].DomainSize {
		return Fact{}, fmt.Errorf("%w: fact value %d out of domain for variable %d", ErrMalformedTask, f.Value, f.Var)
	}
	return Fact{Var: f.Var, Value: f.Value}, nil
}

func convertEffects(effects []jsonEffect, vars []Variable) ([]Effect, error) {
	out := make([]Effect, len(effects))
	for i, e := range effects {
		fact, err := convertFact(e.Fact, vars)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		conds, err := convertFacts(e.Conditions, vars)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		out[i] = Effect{Fact: fact, Conditions: conds}
	}
	return out, nil
}
