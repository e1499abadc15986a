package field

import (
	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Mul returns a * b. With a constant side the product is a rewrite of the
// other combination and costs nothing; otherwise it allocates one private
// wire and the constraint a * b = out.
func (a Element) Mul(b Element) Element {
	if a.IsConstant() {
		c := a.lc.Constant()
		return Element{s: a.s, lc: b.lc.MulByConstant(c)}
	}
	if b.IsConstant() {
		return b.Mul(a)
	}
	av, bv := a.Value(), b.Value()
	var p fr.Element
	p.Mul(&av, &bv)
	out := a.s.NewPrivate(p).ToLinearCombination()
	a.s.Enforce(a.lc, b.lc, out)
	return Element{s: a.s, lc: out}
}

// Square returns a * a.
func (a Element) Square() Element { return a.Mul(a) }

// Inverse returns 1 / a via the constraint a * out = 1. A constant zero
// halts construction; a non-constant zero leaves the constraint
// unsatisfiable.
func (a Element) Inverse() Element {
	if a.IsConstant() {
		v := a.Value()
		if v.IsZero() {
			a.s.Haltf("cannot invert zero")
		}
		v.Inverse(&v)
		return Element{s: a.s, lc: constraint.FromConstant(v)}
	}
	v := a.Value()
	var inv fr.Element
	inv.Inverse(&v)
	out := a.s.NewPrivate(inv).ToLinearCombination()
	a.s.Enforce(a.lc, out, oneLC())
	return Element{s: a.s, lc: out}
}

// Div returns a / b.
func (a Element) Div(b Element) Element {
	return a.Mul(b.Inverse())
}

// IsZero returns a bit set iff a = 0, via the constraints
// a * inv = 1 - out and a * out = 0.
func (a Element) IsZero() boolean.Bit {
	if a.IsConstant() {
		v := a.Value()
		return boolean.FromLinearCombination(a.s, constraint.FromConstant(frBit(v.IsZero())))
	}
	v := a.Value()
	var inv fr.Element
	inv.Inverse(&v) // zero maps to zero
	z := a.s.NewPrivate(frBit(v.IsZero())).ToLinearCombination()
	invLC := a.s.NewPrivate(inv).ToLinearCombination()
	a.s.Enforce(a.lc, invLC, oneLC().Sub(z))
	a.s.Enforce(a.lc, z, &constraint.LinearCombination{})
	return boolean.FromLinearCombination(a.s, z)
}

// IsEqual returns a bit set iff a = b.
func (a Element) IsEqual(b Element) boolean.Bit {
	return a.Sub(b).IsZero()
}

// Ternary returns ifTrue when cond is set and ifFalse otherwise.
func Ternary(cond boolean.Bit, ifTrue, ifFalse Element) Element {
	s := ifTrue.s
	if cond.IsConstant() {
		if cond.Value() {
			return ifTrue
		}
		return ifFalse
	}
	v := ifFalse.Value()
	if cond.Value() {
		v = ifTrue.Value()
	}
	out := s.NewPrivate(v).ToLinearCombination()
	s.Enforce(cond.LinearCombination(), ifTrue.lc.Sub(ifFalse.lc), out.Sub(ifFalse.lc))
	return Element{s: s, lc: out}
}

func oneLC() *constraint.LinearCombination {
	var one fr.Element
	one.SetOne()
	return constraint.FromConstant(one)
}

func frBit(v bool) fr.Element {
	var e fr.Element
	if v {
		e.SetOne()
	}
	return e
}
