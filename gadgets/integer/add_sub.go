package integer

// AddWrapped returns x + y mod 2^W. The operands are lifted into the field,
// summed for free, and decomposed back into W+1 range-checked bits; the
// carry bit is discarded.
func (x Int[P]) AddWrapped(y Int[P]) Int[P] {
	sum := x.ToField().Add(y.ToField())
	return truncate[P](sum, width[P]()+1)
}

// AddChecked returns x + y. Overflow makes the circuit unsatisfiable, or
// halts construction when both operands are constant. Unsigned overflow is a
// set carry bit; signed overflow is operands sharing a sign the result does
// not.
func (x Int[P]) AddChecked(y Int[P]) Int[P] {
	w := width[P]()
	sum := x.ToField().Add(y.ToField())
	bits := sum.ToLowerBitsLE(w + 1)
	out := Int[P]{s: x.s, bits: bits[:w]}
	if isSigned[P]() {
		sameSign := x.MSB().IsEqual(y.MSB())
		flipped := out.MSB().Xor(x.MSB())
		sameSign.And(flipped).AssertFalse()
	} else {
		bits[w].AssertFalse()
	}
	return out
}

// SubWrapped returns x - y mod 2^W. The difference is offset by 2^W to stay
// non-negative in the field; bit W of the decomposition is the complement of
// the borrow.
func (x Int[P]) SubWrapped(y Int[P]) Int[P] {
	w := width[P]()
	diff := x.ToField().Sub(y.ToField()).Add(constElem(x.s, frPow2(w)))
	return truncate[P](diff, w+1)
}

// SubChecked returns x - y. Unsigned underflow is a set borrow; signed
// overflow is operands of differing sign with the result matching the
// subtrahend's sign.
func (x Int[P]) SubChecked(y Int[P]) Int[P] {
	w := width[P]()
	diff := x.ToField().Sub(y.ToField()).Add(constElem(x.s, frPow2(w)))
	bits := diff.ToLowerBitsLE(w + 1)
	out := Int[P]{s: x.s, bits: bits[:w]}
	if isSigned[P]() {
		signsDiffer := x.MSB().IsEqual(y.MSB()).Not()
		signsDiffer.And(out.MSB().IsEqual(y.MSB())).AssertFalse()
	} else {
		bits[w].AssertTrue()
	}
	return out
}

// NegWrapped returns -x mod 2^W. Negation is only defined on signed types;
// the minimum value wraps to itself.
func (x Int[P]) NegWrapped() Int[P] {
	x.requireSigned("neg")
	w := width[P]()
	neg := constElem(x.s, frPow2(w)).Sub(x.ToField())
	return truncate[P](neg, w+1)
}

// NegChecked returns -x, unsatisfiable (or halting on a constant) when x is
// the minimum value.
func (x Int[P]) NegChecked() Int[P] {
	x.requireSigned("neg")
	out := x.NegWrapped()
	x.MSB().And(out.MSB()).AssertFalse()
	return out
}

// AbsWrapped returns |x| mod 2^W; the minimum value wraps to itself.
func (x Int[P]) AbsWrapped() Int[P] {
	x.requireSigned("abs")
	return Ternary(x.MSB(), x.NegWrapped(), x)
}

// AbsChecked returns |x|, unsatisfiable (or halting on a constant) when x is
// the minimum value.
func (x Int[P]) AbsChecked() Int[P] {
	x.requireSigned("abs")
	out := x.AbsWrapped()
	out.MSB().AssertFalse()
	return out
}

func (x Int[P]) requireSigned(op string) {
	if !isSigned[P]() {
		var p P
		x.s.Malformedf("%s is not defined on %s", op, p.TypeName())
	}
}
