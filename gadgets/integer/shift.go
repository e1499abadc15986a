package integer

import (
	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/consensys/circuitry/gadgets/field"
)

// Shifts are barrel shifters: one ternary stage per bit of the effective
// shift amount, selecting between the unshifted and shifted bit layout. The
// wrapped variants use only the low log2(W) exponent bits, matching the
// masked semantics of wrapping shifts; the checked variants additionally
// require every higher exponent bit to be zero, halting at construction
// time when a constant shift amount reaches the width.

// ShlWrapped returns x << (e mod W), discarding bits shifted out.
func ShlWrapped[P Params, E Magnitude](x Int[P], e Int[E]) Int[P] {
	return shl(x, e)
}

// ShlChecked returns x << e, unsatisfiable when e >= W.
func ShlChecked[P Params, E Magnitude](x Int[P], e Int[E]) Int[P] {
	assertShiftInRange(x.s, e.bits, log2(width[P]()))
	return shl(x, e)
}

// ShrWrapped returns x >> (e mod W): logical for unsigned types, arithmetic
// for signed ones.
func ShrWrapped[P Params, E Magnitude](x Int[P], e Int[E]) Int[P] {
	return shr(x, e)
}

// ShrChecked returns x >> e, unsatisfiable when e >= W.
func ShrChecked[P Params, E Magnitude](x Int[P], e Int[E]) Int[P] {
	assertShiftInRange(x.s, e.bits, log2(width[P]()))
	return shr(x, e)
}

func shl[P Params, E Magnitude](x Int[P], e Int[E]) Int[P] {
	w := width[P]()
	stages := log2(w)
	if stages > len(e.bits) {
		stages = len(e.bits)
	}
	zero := boolean.New(x.s, constraint.ModeConstant, false)
	bits := x.Bits()
	for j := 0; j < stages; j++ {
		sh := 1 << j
		next := make([]boolean.Bit, w)
		for i := range next {
			from := zero
			if i >= sh {
				from = bits[i-sh]
			}
			next[i] = boolean.Ternary(e.bits[j], from, bits[i])
		}
		bits = next
	}
	return Int[P]{s: x.s, bits: bits}
}

func shr[P Params, E Magnitude](x Int[P], e Int[E]) Int[P] {
	w := width[P]()
	stages := log2(w)
	if stages > len(e.bits) {
		stages = len(e.bits)
	}
	signed := isSigned[P]()
	var zero boolean.Bit
	if !signed {
		zero = boolean.New(x.s, constraint.ModeConstant, false)
	}
	bits := x.Bits()
	for j := 0; j < stages; j++ {
		sh := 1 << j
		fill := zero
		if signed {
			fill = bits[w-1]
		}
		next := make([]boolean.Bit, w)
		for i := range next {
			from := fill
			if i+sh < w {
				from = bits[i+sh]
			}
			next[i] = boolean.Ternary(e.bits[j], from, bits[i])
		}
		bits = next
	}
	return Int[P]{s: x.s, bits: bits}
}

// assertShiftInRange requires every exponent bit at or above position k to
// be zero.
func assertShiftInRange(s *constraint.System, expBits []boolean.Bit, k int) {
	if len(expBits) <= k {
		return
	}
	s.AssertEq(field.FromBits(s, expBits[k:]).LinearCombination(), constraint.Zero())
}

func log2(w int) int {
	n := 0
	for 1<<n < w {
		n++
	}
	return n
}
