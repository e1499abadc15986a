package boolean

import "github.com/consensys/circuitry/constraint"

// Not returns the negation of the bit. A constant folds to its complement;
// otherwise the combination is rewritten as one-wire - b so that a boolean
// combination never mixes a constant with wire terms. Negation never costs a
// constraint.
func (b Bit) Not() Bit {
	if b.IsConstant() {
		return Bit{s: b.s, lc: constraint.FromConstant(frBit(!b.Value()))}
	}
	one := b.s.One().ToLinearCombination()
	return Bit{s: b.s, lc: one.Sub(b.lc)}
}

// And returns a AND b. If either side is constant the result folds for free;
// otherwise it costs one private wire and the constraint a * b = out.
func (a Bit) And(b Bit) Bit {
	if a.IsConstant() {
		if a.Value() {
			return b
		}
		return Bit{s: a.s, lc: &constraint.LinearCombination{}}
	}
	if b.IsConstant() {
		return b.And(a)
	}
	out, outLC := witness(a.s, a.Value() && b.Value())
	a.s.Enforce(a.lc, b.lc, outLC)
	return out
}

// Or returns a OR b using the identity a * b = a + b - out.
func (a Bit) Or(b Bit) Bit {
	if a.IsConstant() {
		if a.Value() {
			return Bit{s: a.s, lc: oneLC()}
		}
		return b
	}
	if b.IsConstant() {
		return b.Or(a)
	}
	out, outLC := witness(a.s, a.Value() || b.Value())
	a.s.Enforce(a.lc, b.lc, a.lc.Add(b.lc).Sub(outLC))
	return out
}

// Xor returns a XOR b using the identity 2a * b = a + b - out.
func (a Bit) Xor(b Bit) Bit {
	if a.IsConstant() {
		if a.Value() {
			return b.Not()
		}
		return b
	}
	if b.IsConstant() {
		return b.Xor(a)
	}
	out, outLC := witness(a.s, a.Value() != b.Value())
	a.s.Enforce(a.lc.MulByConstant(frOf(2)), b.lc, a.lc.Add(b.lc).Sub(outLC))
	return out
}

// Nand returns NOT (a AND b) using the identity a * b = 1 - out.
func (a Bit) Nand(b Bit) Bit {
	if a.IsConstant() {
		if a.Value() {
			return b.Not()
		}
		return Bit{s: a.s, lc: oneLC()}
	}
	if b.IsConstant() {
		return b.Nand(a)
	}
	out, outLC := witness(a.s, !(a.Value() && b.Value()))
	a.s.Enforce(a.lc, b.lc, oneLC().Sub(outLC))
	return out
}

// Nor returns NOT (a OR b) using the identity (1 - a) * (1 - b) = out.
func (a Bit) Nor(b Bit) Bit {
	if a.IsConstant() {
		if a.Value() {
			return Bit{s: a.s, lc: &constraint.LinearCombination{}}
		}
		return b.Not()
	}
	if b.IsConstant() {
		return b.Nor(a)
	}
	out, outLC := witness(a.s, !(a.Value() || b.Value()))
	a.s.Enforce(oneLC().Sub(a.lc), oneLC().Sub(b.lc), outLC)
	return out
}

// IsEqual returns a XNOR b using the identity 2a * b = a + b + out - 1.
func (a Bit) IsEqual(b Bit) Bit {
	if a.IsConstant() {
		if a.Value() {
			return b
		}
		return b.Not()
	}
	if b.IsConstant() {
		return b.IsEqual(a)
	}
	out, outLC := witness(a.s, a.Value() == b.Value())
	a.s.Enforce(a.lc.MulByConstant(frOf(2)), b.lc, a.lc.Add(b.lc).Add(outLC).Sub(oneLC()))
	return out
}
