package integer

import (
	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/consensys/circuitry/gadgets/field"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Multiplication works on the unsigned bit patterns: the two's complement
// product agrees with the unsigned product modulo 2^W, so the wrapped result
// is the same circuit for both signednesses. Widths up to 64 fit a single
// field product; 128-bit operands are split into 64-bit halves so that no
// intermediate exceeds the field.

// MulWrapped returns x * y mod 2^W.
func (x Int[P]) MulWrapped(y Int[P]) Int[P] {
	w := width[P]()
	if w <= 64 {
		return truncate[P](x.ToField().Mul(y.ToField()), 2*w)
	}
	return truncate[P](x.low194(y), 194)
}

// halves splits the pattern into its low and high 64-bit limbs, for free.
func (x Int[P]) halves() (lo, hi field.Element) {
	return field.FromBits(x.s, x.bits[:64]), field.FromBits(x.s, x.bits[64:])
}

// low194 computes the product of two 128-bit patterns modulo 2^194 from
// three half products, omitting the 2^128 hh term. Every intermediate stays
// below 2^194 and therefore below the field modulus.
func (x Int[P]) low194(y Int[P]) field.Element {
	xLo, xHi := x.halves()
	yLo, yHi := y.halves()
	mid := xLo.Mul(yHi).Add(xHi.Mul(yLo))
	return xLo.Mul(yLo).Add(mid.MulByConstant(frPow2(64)))
}

// MulChecked returns x * y. Overflow makes the circuit unsatisfiable, or
// halts construction when both operands are constant.
func (x Int[P]) MulChecked(y Int[P]) Int[P] {
	w := width[P]()
	s := x.s
	switch {
	case !isSigned[P]() && w <= 64:
		bits := x.ToField().Mul(y.ToField()).ToLowerBitsLE(2 * w)
		field.FromBits(s, bits[w:]).AssertEq(constElem(s, fr.Element{}))
		return Int[P]{s: s, bits: bits[:w]}

	case !isSigned[P]():
		xHi, yHi := hiHalf(x), hiHalf(y)
		bits := x.low194(y).ToLowerBitsLE(194)
		field.FromBits(s, bits[128:]).AssertEq(constElem(s, fr.Element{}))
		s.Enforce(xHi.LinearCombination(), yHi.LinearCombination(), constraint.Zero())
		return Int[P]{s: s, bits: bits[:128]}

	case w <= 64:
		// the exact signed product fits the field; it is representable
		// iff p + 2^(W-1) fits W bits, whose pattern is the result with
		// the sign bit flipped
		p := x.fieldSigned().Mul(y.fieldSigned())
		u := p.Add(constElem(s, frPow2(w-1)))
		ub := u.ToLowerBitsLE(w)
		bits := append([]boolean.Bit(nil), ub...)
		bits[w-1] = ub[w-1].Not()
		return Int[P]{s: s, bits: bits}

	default:
		out, overflow := x.mulFlaggedSigned(y)
		overflow.AssertFalse()
		return out
	}
}

func hiHalf[P Params](x Int[P]) field.Element {
	_, hi := x.halves()
	return hi
}

// mulFlagged returns the wrapped product together with an overflow bit, for
// callers that gate the overflow check on another condition.
func (x Int[P]) mulFlagged(y Int[P]) (Int[P], boolean.Bit) {
	if isSigned[P]() {
		return x.mulFlaggedSigned(y)
	}
	return x.mulFlaggedUnsigned(y)
}

func (x Int[P]) mulFlaggedUnsigned(y Int[P]) (Int[P], boolean.Bit) {
	w := width[P]()
	s := x.s
	if w <= 64 {
		bits := x.ToField().Mul(y.ToField()).ToLowerBitsLE(2 * w)
		high := field.FromBits(s, bits[w:])
		return Int[P]{s: s, bits: bits[:w]}, high.IsZero().Not()
	}
	xLo, xHi := x.halves()
	yLo, yHi := y.halves()
	mid := xLo.Mul(yHi).Add(xHi.Mul(yLo))
	hh := xHi.Mul(yHi)
	bits := xLo.Mul(yLo).Add(mid.MulByConstant(frPow2(64))).ToLowerBitsLE(194)
	high := field.FromBits(s, bits[128:]).Add(hh)
	return Int[P]{s: s, bits: bits[:128]}, high.IsZero().Not()
}

// mulFlaggedSigned multiplies the magnitudes and fixes the sign afterwards.
// The overflow flag is set when the magnitude product carries past W bits,
// when a positive product reaches the sign bit, or when a negative product
// exceeds the magnitude of the minimum value.
func (x Int[P]) mulFlaggedSigned(y Int[P]) (Int[P], boolean.Bit) {
	w := width[P]()
	s := x.s
	magProduct, carry := x.magnitude().mulFlaggedUnsigned(y.magnitude())
	sameSign := x.MSB().IsEqual(y.MSB())
	positiveOverflow := sameSign.And(magProduct.MSB())
	lowerNonzero := field.FromBits(s, magProduct.bits[:w-1]).IsZero().Not()
	negativeUnderflow := sameSign.Not().And(magProduct.MSB()).And(lowerNonzero)
	overflow := carry.Or(positiveOverflow).Or(negativeUnderflow)
	return negIf(sameSign.Not(), magProduct), overflow
}

// magnitude returns |x| as a W-bit pattern; the magnitude of the minimum
// value is 2^(W-1), which still fits the width.
func (x Int[P]) magnitude() Int[P] {
	w := width[P]()
	xF := x.ToField()
	neg := constElem(x.s, frPow2(w)).Sub(xF)
	mag := field.Ternary(x.MSB(), neg, xF)
	return Int[P]{s: x.s, bits: mag.ToLowerBitsLE(w)}
}

// negIf returns the two's complement negation of m when neg is set.
func negIf[P Params](neg boolean.Bit, m Int[P]) Int[P] {
	w := width[P]()
	mF := m.ToField()
	if neg.IsConstant() && !neg.Value() {
		return m
	}
	negF := constElem(m.s, frPow2(w)).Sub(mF)
	if neg.IsConstant() {
		return truncate[P](negF, w+1)
	}
	return truncate[P](field.Ternary(neg, negF, mF), w+1)
}
