package state

import (
	"encoding/binary"

	"github.com/axiomplan/planner/collections"
	"github.com/axiomplan/planner/internalerror"
	"github.com/axiomplan/planner/task"
)

// Registry deduplicates and persistently stores every reached state using a
// packed bit-level encoding. It is the sole owner of packed states; every
// other component addresses them by StateID.
type Registry struct {
	task        task.Proxy
	packer      *Packer
	numVars     int
	store       *collections.SegmentedArrayVector
	index       map[string]StateID
	axiomLayers []axiomLayer

	packBuf []uint32
}

// NewRegistry builds a Registry for t. Packing layout and axiom layering are
// computed once here.
func NewRegistry(t task.Proxy) *Registry {
	vars := t.Variables()
	packer := NewPacker(vars)
	return &Registry{
		task:        t,
		packer:      packer,
		numVars:     len(vars),
		store:       collections.NewSegmentedArrayVector(packer.NumWords()),
		index:       make(map[string]StateID),
		axiomLayers: buildAxiomLayers(t.Axioms(), vars),
		packBuf:     make([]uint32, packer.NumWords()),
	}
}

// GetInitialState registers and returns the task's initial state with
// axioms evaluated to closure.
func (r *Registry) GetInitialState() (StateID, *State) {
	values := append([]int(nil), r.task.InitialStateValues()...)
	evaluateAxioms(r.axiomLayers, values)
	id := r.register(values)
	return id, &State{id: id, values: values}
}

// GetSuccessorState computes the successor of parent under op: effects are
// applied with their conditions tested against the parent state (not the
// evolving successor), then axioms are evaluated to closure. op must be
// applicable in parent; calling this with an inapplicable operator is a
// programming error.
func (r *Registry) GetSuccessorState(parent *State, op task.Operator) (StateID, *State) {
	if !parent.SatisfiesAll(op.Preconditions) {
		internalerror.Panicf("state", "operator %q is not applicable in the given state", op.Name)
	}

	values := append([]int(nil), parent.Values()...)
	for _, eff := range op.Effects {
		if parent.SatisfiesAll(eff.Conditions) {
			values[eff.Fact.Var] = eff.Fact.Value
		}
	}
	evaluateAxioms(r.axiomLayers, values)

	id := r.register(values)
	return id, &State{id: id, values: values}
}

// LookupState returns an unpacked view of the state registered under id.
func (r *Registry) LookupState(id StateID) *State {
	bits := r.store.Get(int(id))
	values := make([]int, r.numVars)
	r.packer.Unpack(bits, values)
	return &State{id: id, values: values}
}

// Size returns the number of distinct states registered so far.
func (r *Registry) Size() int { return r.store.Size() }

// register canonicalizes values: equal assignments always yield the same
// StateID (invariant 1, §3).
func (r *Registry) register(values []int) StateID {
	r.packer.Pack(values, r.packBuf)
	key := packedKey(r.packBuf)
	if id, ok := r.index[key]; ok {
		return id
	}
	index := r.store.Push(r.packBuf)
	id := StateID(index)
	r.index[key] = id
	return id
}

// packedKey turns packed words into a byte-exact map key so that equal
// packed states (bitwise) always collide, matching §3 invariant 1.
func packedKey(words []uint32) string {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return string(buf)
}
