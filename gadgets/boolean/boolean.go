// Package boolean implements a single-bit gadget over the constraint system.
//
// A Bit wraps a linear combination that is guaranteed to evaluate to 0 or 1.
// Newly injected wires pay one booleanity constraint; bits produced by the
// logic gadgets are boolean by construction and pay none.
package boolean

import (
	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Bit is a boolean value in the circuit.
type Bit struct {
	s  *constraint.System
	lc *constraint.LinearCombination
}

// New injects a boolean into the circuit. Constants are folded and cost
// nothing; public and private bits allocate one wire and one booleanity
// constraint (1 - b) * b = 0.
func New(s *constraint.System, mode constraint.Mode, value bool) Bit {
	v := frBit(value)
	if mode.IsConstant() {
		return Bit{s: s, lc: s.Constant(v).ToLinearCombination()}
	}
	var w constraint.Variable
	if mode.IsPublic() {
		w = s.NewPublic(v)
	} else {
		w = s.NewPrivate(v)
	}
	lc := w.ToLinearCombination()
	s.Enforce(oneLC().Sub(lc), lc, &constraint.LinearCombination{})
	return Bit{s: s, lc: lc}
}

// FromLinearCombination wraps an existing combination as a Bit. The caller
// must have constrained lc to evaluate to 0 or 1; no booleanity constraint is
// added here, but a malformed combination aborts construction.
func FromLinearCombination(s *constraint.System, lc *constraint.LinearCombination) Bit {
	if err := lc.CheckBoolean(); err != nil {
		s.Malformedf("not a boolean combination: %v", err)
	}
	return Bit{s: s, lc: lc}
}

// Value returns the witness value of the bit.
func (b Bit) Value() bool {
	v := b.lc.Value()
	return v.IsOne()
}

// Mode returns the visibility of the bit.
func (b Bit) Mode() constraint.Mode { return b.lc.Mode() }

// IsConstant reports whether the bit is a folded constant.
func (b Bit) IsConstant() bool { return b.lc.IsConstant() }

// LinearCombination returns the underlying combination of the bit.
func (b Bit) LinearCombination() *constraint.LinearCombination { return b.lc }

// System returns the constraint system the bit belongs to.
func (b Bit) System() *constraint.System { return b.s }

// AssertTrue adds the constraint b = 1. On a constant false bit this halts
// construction.
func (b Bit) AssertTrue() {
	b.s.AssertEq(b.lc, oneLC())
}

// AssertFalse adds the constraint b = 0. On a constant true bit this halts
// construction.
func (b Bit) AssertFalse() {
	b.s.AssertEq(b.lc, &constraint.LinearCombination{})
}

func (b Bit) String() string { return b.lc.String() }

func frOf(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func frBit(v bool) fr.Element {
	var e fr.Element
	if v {
		e.SetOne()
	}
	return e
}

func oneLC() *constraint.LinearCombination {
	var one fr.Element
	one.SetOne()
	return constraint.FromConstant(one)
}

// witness allocates a private wire holding v without a booleanity constraint.
// Used by gadgets whose enforced identity already pins the wire to 0 or 1.
func witness(s *constraint.System, v bool) (Bit, *constraint.LinearCombination) {
	w := s.NewPrivate(frBit(v))
	lc := w.ToLinearCombination()
	return Bit{s: s, lc: lc}, lc
}
