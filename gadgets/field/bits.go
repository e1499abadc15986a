package field

import (
	"math/big"

	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// ToLowerBitsLE decomposes the element into its k low bits, little endian,
// and enforces that the recomposition equals the element. The decomposition
// is therefore only satisfiable when the value fits in k bits.
//
// Non-constant elements pay k private wires and k+1 constraints; constant
// elements pay k constants, and a constant that does not fit in k bits halts
// construction.
func (e Element) ToLowerBitsLE(k int) []boolean.Bit {
	if k <= 0 || k >= fr.Bits {
		e.s.Malformedf("cannot decompose into %d bits", k)
	}
	v := e.Value()
	var vi big.Int
	v.BigInt(&vi)

	mode := constraint.ModePrivate
	if e.IsConstant() {
		mode = constraint.ModeConstant
	}
	bits := make([]boolean.Bit, k)
	for i := 0; i < k; i++ {
		bits[i] = boolean.New(e.s, mode, vi.Bit(i) == 1)
	}
	// for constants this folds and halts on an out-of-range value
	FromBits(e.s, bits).AssertEq(e)
	return bits
}
