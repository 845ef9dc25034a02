// Package task defines the read-only contract the search core consumes: a
// grounded planning task exposed through the Proxy interface. Parsing a
// concrete task file is a supplement to the core, not part of it — nothing
// under the other search packages imports the Load function in load.go,
// only the Proxy interface below.
package task

// Fact is a (variable, value) pair.
type Fact struct {
	Var   int
	Value int
}

// Variable describes one state variable: its finite domain size and, for
// derived variables, the axiom layer it belongs to (-1 for non-derived).
type Variable struct {
	DomainSize int
	AxiomLayer int
}

// EffectCondition is tested against the state an operator or axiom is
// applied to; an effect with no conditions is unconditional.
type EffectCondition = Fact

// Effect is one (possibly conditional) fact an operator or axiom asserts
// when applied.
type Effect struct {
	Fact       Fact
	Conditions []EffectCondition
}

// Operator is a grounded action: applicable when every precondition fact
// holds, and asserting every effect fact whose conditions (if any) hold.
type Operator struct {
	ID            int
	Name          string
	Preconditions []Fact
	Effects       []Effect
	Cost          int
}

// Axiom has the same shape as Operator but is evaluated to closure by layer
// rather than applied by the search loop directly.
type Axiom struct {
	Preconditions []Fact
	Effects       []Effect
}

// Proxy is the read-only task contract the search core depends on. A
// concrete task never needs to satisfy more than this; the core holds onto
// a Proxy and treats it as immutable and freely aliasable for its entire
// lifetime (§5 shared-resource policy).
type Proxy interface {
	Variables() []Variable
	Operators() []Operator
	Axioms() []Axiom
	InitialStateValues() []int
	Goals() []Fact
}
