package integer

import (
	"math/big"

	"github.com/consensys/circuitry/constraint"
)

// Exponentiation is square-and-multiply over the exponent bits, most
// significant first. The exponent must be one of the small unsigned types.

// PowWrapped returns x ** e with every intermediate product wrapped.
func PowWrapped[P Params, E Magnitude](x Int[P], e Int[E]) Int[P] {
	result := New[P](x.s, constraint.ModeConstant, big.NewInt(1))
	for i := len(e.bits) - 1; i >= 0; i-- {
		result = result.MulWrapped(result)
		bit := e.bits[i]
		if bit.IsConstant() {
			if bit.Value() {
				result = result.MulWrapped(x)
			}
			continue
		}
		result = Ternary(bit, result.MulWrapped(x), result)
	}
	return result
}

// PowChecked returns x ** e. The squaring chain is checked unconditionally
// since every square feeds the result; the per-step multiply check is gated
// on the exponent bit, so only multiplies that contribute can fail.
func PowChecked[P Params, E Magnitude](x Int[P], e Int[E]) Int[P] {
	result := New[P](x.s, constraint.ModeConstant, big.NewInt(1))
	for i := len(e.bits) - 1; i >= 0; i-- {
		result = result.MulChecked(result)
		bit := e.bits[i]
		if bit.IsConstant() {
			if bit.Value() {
				result = result.MulChecked(x)
			}
			continue
		}
		product, overflow := result.mulFlagged(x)
		overflow.And(bit).AssertFalse()
		result = Ternary(bit, product, result)
	}
	return result
}
