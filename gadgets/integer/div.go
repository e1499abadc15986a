package integer

import (
	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/holiman/uint256"
)

// Division witnesses the magnitude quotient and remainder, then enforces
// q * d + r = n with r < d. The range check on d - r - 1 doubles as the
// nonzero-divisor check: division by zero is unsatisfiable, and halts
// construction when both operands are constant.
//
// The checked and wrapped variants share one circuit: the only case in which
// they could differ is MIN / -1, which wraps to MIN in both.

// DivWrapped returns the quotient of x / y, truncated toward zero.
func (x Int[P]) DivWrapped(y Int[P]) Int[P] { return x.div(y) }

// DivChecked returns the quotient of x / y, truncated toward zero. MIN / -1
// wraps to MIN rather than overflowing.
func (x Int[P]) DivChecked(y Int[P]) Int[P] { return x.div(y) }

// RemWrapped returns the remainder of x / y, with the sign of the dividend.
func (x Int[P]) RemWrapped(y Int[P]) Int[P] { return x.rem(y) }

// RemChecked returns the remainder of x / y, with the sign of the dividend.
func (x Int[P]) RemChecked(y Int[P]) Int[P] { return x.rem(y) }

func (x Int[P]) div(y Int[P]) Int[P] {
	q, _, sx, sy := x.divRem(y)
	if !isSigned[P]() {
		return q
	}
	return negIf(sx.Xor(sy), q)
}

func (x Int[P]) rem(y Int[P]) Int[P] {
	_, r, sx, _ := x.divRem(y)
	if !isSigned[P]() {
		return r
	}
	return negIf(sx, r)
}

// divRem builds the magnitude division circuit shared by the quotient and
// remainder operations.
func (x Int[P]) divRem(y Int[P]) (q, r Int[P], sx, sy boolean.Bit) {
	s := x.s
	w := width[P]()

	n, d := x, y
	if isSigned[P]() {
		sx, sy = x.MSB(), y.MSB()
		n, d = x.magnitude(), y.magnitude()
	}

	mode := x.Mode().Combine(y.Mode())
	qPat, rPat := nativeQuoRem(patternOfBits(n.bits), patternOfBits(d.bits))
	q = newWitness[P](s, mode, qPat)
	r = newWitness[P](s, mode, rPat)

	nF, dF, rF := n.ToField(), d.ToField(), r.ToField()
	if w <= 64 {
		s.Enforce(q.ToField().LinearCombination(), dF.LinearCombination(),
			nF.Sub(rF).LinearCombination())
	} else {
		qLo, qHi := q.halves()
		dLo, dHi := d.halves()
		mid := qLo.Mul(dHi).Add(qHi.Mul(dLo))
		prod := qLo.Mul(dLo).Add(mid.MulByConstant(frPow2(64)))
		s.Enforce(qHi.LinearCombination(), dHi.LinearCombination(), constraint.Zero())
		prod.Add(rF).AssertEq(nF)
	}

	// r < d, which also rules out a zero divisor
	dF.Sub(rF).Sub(constElem(s, frOf(1))).ToLowerBitsLE(w)

	return q, r, sx, sy
}

// newWitness allocates the bits of an auxiliary integer value: constants
// when the surrounding operation folds entirely, private wires with a
// booleanity constraint each otherwise.
func newWitness[P Params](s *constraint.System, mode constraint.Mode, pat *uint256.Int) Int[P] {
	w := width[P]()
	bits := make([]boolean.Bit, w)
	for i := range bits {
		bits[i] = boolean.New(s, mode, patternBit(pat, i))
	}
	return Int[P]{s: s, bits: bits}
}
