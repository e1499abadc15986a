// Package field implements a base field element gadget over the constraint
// system.
//
// Linear operations (addition, subtraction, negation, scaling by constants)
// rewrite the underlying combination and cost nothing; only multiplicative
// operations allocate wires and constraints.
package field

import (
	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element is a base field value in the circuit.
type Element struct {
	s  *constraint.System
	lc *constraint.LinearCombination
}

// New injects a field element into the circuit. Field wires are
// unconstrained; only constants pay the constant counter.
func New(s *constraint.System, mode constraint.Mode, v fr.Element) Element {
	if mode.IsConstant() {
		return Element{s: s, lc: s.Constant(v).ToLinearCombination()}
	}
	var w constraint.Variable
	if mode.IsPublic() {
		w = s.NewPublic(v)
	} else {
		w = s.NewPrivate(v)
	}
	return Element{s: s, lc: w.ToLinearCombination()}
}

// FromLinearCombination wraps an existing combination as an Element.
func FromLinearCombination(s *constraint.System, lc *constraint.LinearCombination) Element {
	return Element{s: s, lc: lc}
}

// FromBits recomposes little-endian bits into Σ 2^i b_i. The recomposition
// is a rewrite of the bit combinations and costs nothing.
func FromBits(s *constraint.System, bits []boolean.Bit) Element {
	lc := &constraint.LinearCombination{}
	var coeff fr.Element
	coeff.SetOne()
	for i := range bits {
		lc = lc.Add(bits[i].LinearCombination().MulByConstant(coeff))
		coeff.Double(&coeff)
	}
	return Element{s: s, lc: lc}
}

// Value returns the witness value of the element.
func (e Element) Value() fr.Element { return e.lc.Value() }

// Mode returns the visibility of the element.
func (e Element) Mode() constraint.Mode { return e.lc.Mode() }

// IsConstant reports whether the element is a folded constant.
func (e Element) IsConstant() bool { return e.lc.IsConstant() }

// LinearCombination returns the underlying combination of the element.
func (e Element) LinearCombination() *constraint.LinearCombination { return e.lc }

// System returns the constraint system the element belongs to.
func (e Element) System() *constraint.System { return e.s }

func (e Element) String() string { return e.lc.String() }

// Add returns a + b for free.
func (a Element) Add(b Element) Element {
	return Element{s: a.s, lc: a.lc.Add(b.lc)}
}

// Sub returns a - b for free.
func (a Element) Sub(b Element) Element {
	return Element{s: a.s, lc: a.lc.Sub(b.lc)}
}

// Neg returns -a for free.
func (a Element) Neg() Element {
	return Element{s: a.s, lc: a.lc.Neg()}
}

// Double returns 2a for free.
func (a Element) Double() Element {
	var two fr.Element
	two.SetUint64(2)
	return Element{s: a.s, lc: a.lc.MulByConstant(two)}
}

// MulByConstant returns c * a for free.
func (a Element) MulByConstant(c fr.Element) Element {
	return Element{s: a.s, lc: a.lc.MulByConstant(c)}
}

// AssertEq adds the constraint a = b.
func (a Element) AssertEq(b Element) {
	a.s.AssertEq(a.lc, b.lc)
}
