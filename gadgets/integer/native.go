package integer

import (
	"math/big"

	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/holiman/uint256"
)

// Native arithmetic on W-bit two's complement patterns, used to compute
// witness values. Patterns are held zero-extended in a uint256.Int.

func patternBit(p *uint256.Int, i int) bool {
	return p[i/64]>>(i%64)&1 == 1
}

func patternOfBits(bits []boolean.Bit) *uint256.Int {
	z := new(uint256.Int)
	for i := range bits {
		if bits[i].Value() {
			z[i/64] |= 1 << (i % 64)
		}
	}
	return z
}

// patternOfBig reduces a two's complement value into its W-bit pattern.
func patternOfBig(w int, v *big.Int) *uint256.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(w))
	p, _ := uint256.FromBig(new(big.Int).Mod(v, m))
	return p
}

// bigOfPattern interprets a W-bit pattern as a signed or unsigned value.
func bigOfPattern(w int, signed bool, p *uint256.Int) *big.Int {
	v := p.ToBig()
	if signed && patternBit(p, w-1) {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(w)))
	}
	return v
}

// nativeQuoRem divides magnitudes; division by zero yields (0, 0), which no
// witness can turn into a satisfiable division circuit anyway.
func nativeQuoRem(n, d *uint256.Int) (q, r *uint256.Int) {
	q = new(uint256.Int).Div(n, d)
	r = new(uint256.Int).Mod(n, d)
	return q, r
}
