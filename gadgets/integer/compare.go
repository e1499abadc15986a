package integer

import (
	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/consensys/circuitry/gadgets/field"
)

// IsLess returns a bit set iff x < y. The difference is offset by 2^W to
// stay non-negative; bit W of its decomposition is set exactly when x >= y.
func (x Int[P]) IsLess(y Int[P]) boolean.Bit {
	w := width[P]()
	var xF, yF field.Element
	if isSigned[P]() {
		xF, yF = x.fieldSigned(), y.fieldSigned()
	} else {
		xF, yF = x.ToField(), y.ToField()
	}
	t := xF.Sub(yF).Add(constElem(x.s, frPow2(w)))
	bits := t.ToLowerBitsLE(w + 1)
	return bits[w].Not()
}

// IsLessOrEqual returns a bit set iff x <= y.
func (x Int[P]) IsLessOrEqual(y Int[P]) boolean.Bit {
	return y.IsLess(x).Not()
}

// IsGreater returns a bit set iff x > y.
func (x Int[P]) IsGreater(y Int[P]) boolean.Bit {
	return y.IsLess(x)
}

// IsGreaterOrEqual returns a bit set iff x >= y.
func (x Int[P]) IsGreaterOrEqual(y Int[P]) boolean.Bit {
	return x.IsLess(y).Not()
}
