// Package state owns canonical packed states and hands out stable StateIDs.
// It is the only package that packs and unpacks variable assignments; every
// other package addresses states by StateID.
package state

import (
	"math/bits"

	"github.com/axiomplan/planner/task"
)

const wordBits = 32

// fieldLoc is where one variable's value lives within a packed state: which
// word, what bit offset within that word, and how many bits it occupies.
type fieldLoc struct {
	word   int
	shift  uint
	mask   uint32
	domain int
}

// Packer packs a full variable assignment into a fixed-width sequence of
// uint32 words and back. It is built once per task.
type Packer struct {
	fields   []fieldLoc
	numWords int
}

// NewPacker computes a bit-field layout for vars: each variable gets
// ceil(log2(domainSize)) bits (at least 1), packed greedily into 32-bit
// words without splitting a field across a word boundary.
func NewPacker(vars []task.Variable) *Packer {
	p := &Packer{fields: make([]fieldLoc, len(vars))}

	word := 0
	bitInWord := uint(0)
	for i, v := range vars {
		width := bitWidth(v.DomainSize)
		if bitInWord+width > wordBits {
			word++
			bitInWord = 0
		}
		p.fields[i] = fieldLoc{
			word:   word,
			shift:  bitInWord,
			mask:   uint32(1)<<width - 1,
			domain: v.DomainSize,
		}
		bitInWord += width
	}
	if bitInWord > 0 {
		word++
	}
	p.numWords = word
	if p.numWords == 0 {
		p.numWords = 1
	}
	return p
}

func bitWidth(domainSize int) uint {
	if domainSize <= 1 {
		return 1
	}
	return uint(bits.Len(uint(domainSize - 1)))
}

// NumWords is the number of uint32 words one packed state occupies.
func (p *Packer) NumWords() int { return p.numWords }

// Pack writes values into dest, which must have length NumWords().
func (p *Packer) Pack(values []int, dest []uint32) {
	for i := range dest {
		dest[i] = 0
	}
	for i, loc := range p.fields {
		v := uint32(values[i]) & loc.mask
		dest[loc.word] |= v << loc.shift
	}
}

// Unpack writes the value of each variable encoded in bits into dest, which
// must have length len(p.fields).
func (p *Packer) Unpack(bits []uint32, dest []int) {
	for i, loc := range p.fields {
		dest[i] = int((bits[loc.word] >> loc.shift) & loc.mask)
	}
}

// NumVariables is the number of variables this packer was built for.
func (p *Packer) NumVariables() int { return len(p.fields) }
