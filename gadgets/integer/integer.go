package integer

import (
	"fmt"
	"math/big"

	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/boolean"
	"github.com/consensys/circuitry/gadgets/field"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Int is a fixed-width machine integer in the circuit, backed by its
// little-endian bit decomposition.
type Int[P Params] struct {
	s    *constraint.System
	bits []boolean.Bit
}

func width[P Params]() int {
	var p P
	return p.BitWidth()
}

func isSigned[P Params]() bool {
	var p P
	return p.Signed()
}

// New injects a value into the circuit. A value outside the representable
// range of the type is a caller defect and aborts construction.
func New[P Params](s *constraint.System, mode constraint.Mode, value *big.Int) Int[P] {
	var p P
	if value.Cmp(MinValue[P]()) < 0 || value.Cmp(MaxValue[P]()) > 0 {
		s.Malformedf("%v is out of range for %s", value, p.TypeName())
	}
	w := p.BitWidth()
	pat := patternOfBig(w, value)
	bits := make([]boolean.Bit, w)
	for i := range bits {
		bits[i] = boolean.New(s, mode, patternBit(pat, i))
	}
	return Int[P]{s: s, bits: bits}
}

// NewFromUint64 injects an unsigned value.
func NewFromUint64[P Params](s *constraint.System, mode constraint.Mode, v uint64) Int[P] {
	return New[P](s, mode, new(big.Int).SetUint64(v))
}

// NewFromInt64 injects a signed value.
func NewFromInt64[P Params](s *constraint.System, mode constraint.Mode, v int64) Int[P] {
	return New[P](s, mode, big.NewInt(v))
}

// FromBits assembles an integer from little-endian bits. The slice length
// must match the type width exactly.
func FromBits[P Params](s *constraint.System, bits []boolean.Bit) Int[P] {
	var p P
	if len(bits) != p.BitWidth() {
		s.Malformedf("expected %d bits for %s, got %d", p.BitWidth(), p.TypeName(), len(bits))
	}
	return Int[P]{s: s, bits: append([]boolean.Bit(nil), bits...)}
}

// Bits returns a copy of the little-endian bit decomposition.
func (x Int[P]) Bits() []boolean.Bit {
	return append([]boolean.Bit(nil), x.bits...)
}

// Value returns the witnessed value of the integer.
func (x Int[P]) Value() *big.Int {
	return bigOfPattern(width[P](), isSigned[P](), patternOfBits(x.bits))
}

// IsConstant reports whether every bit of the integer is constant.
func (x Int[P]) IsConstant() bool {
	for i := range x.bits {
		if !x.bits[i].IsConstant() {
			return false
		}
	}
	return true
}

// Mode returns the visibility of the integer: constant when every bit is
// constant, private when any bit is private, public otherwise.
func (x Int[P]) Mode() constraint.Mode {
	if x.IsConstant() {
		return constraint.ModeConstant
	}
	for i := range x.bits {
		if x.bits[i].Mode() == constraint.ModePrivate {
			return constraint.ModePrivate
		}
	}
	return constraint.ModePublic
}

// System returns the constraint system the integer belongs to.
func (x Int[P]) System() *constraint.System { return x.s }

// MSB returns the most significant bit, the sign bit of signed types.
func (x Int[P]) MSB() boolean.Bit { return x.bits[len(x.bits)-1] }

func (x Int[P]) String() string {
	var p P
	return fmt.Sprintf("%s(%v, %s)", p.TypeName(), x.Value(), x.Mode())
}

// ToField recomposes the unsigned bit pattern into one field element, for
// free.
func (x Int[P]) ToField() field.Element {
	return field.FromBits(x.s, x.bits)
}

// fieldSigned lifts the two's complement value into the field, weighting the
// sign bit by -2^(W-1).
func (x Int[P]) fieldSigned() field.Element {
	w := width[P]()
	low := field.FromBits(x.s, x.bits[:w-1])
	msb := field.FromBits(x.s, x.bits[w-1:]).MulByConstant(frPow2(w - 1))
	return low.Sub(msb)
}

// AssertEq adds the constraint x = y.
func (x Int[P]) AssertEq(y Int[P]) {
	x.ToField().AssertEq(y.ToField())
}

// IsEqual returns a bit set iff x = y.
func (x Int[P]) IsEqual(y Int[P]) boolean.Bit {
	return x.ToField().IsEqual(y.ToField())
}

// IsNotEqual returns a bit set iff x != y.
func (x Int[P]) IsNotEqual(y Int[P]) boolean.Bit {
	return x.IsEqual(y).Not()
}

// Ternary returns ifTrue when cond is set and ifFalse otherwise, selecting
// bit by bit.
func Ternary[P Params](cond boolean.Bit, ifTrue, ifFalse Int[P]) Int[P] {
	bits := make([]boolean.Bit, width[P]())
	for i := range bits {
		bits[i] = boolean.Ternary(cond, ifTrue.bits[i], ifFalse.bits[i])
	}
	return Int[P]{s: ifTrue.s, bits: bits}
}

// truncate decomposes e into k range-checked bits and keeps the low W as the
// result.
func truncate[P Params](e field.Element, k int) Int[P] {
	bits := e.ToLowerBitsLE(k)
	return Int[P]{s: e.System(), bits: bits[:width[P]()]}
}

// constElem wraps a field constant without touching the constant counter.
func constElem(s *constraint.System, v fr.Element) field.Element {
	return field.FromLinearCombination(s, constraint.FromConstant(v))
}

func frPow2(k int) fr.Element {
	var e fr.Element
	e.SetBigInt(new(big.Int).Lsh(big.NewInt(1), uint(k)))
	return e
}

func frOf(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}
