// Package integer implements fixed-width machine integers over the
// constraint system, in widths of 8 to 128 bits, signed and unsigned.
//
// An Int is backed by its little-endian bit decomposition. Arithmetic lifts
// the bits into one field element, computes there, and decomposes the result
// back into range-checked bits. Checked operations turn overflow into an
// unsatisfiable constraint (or a construction halt when every operand is
// constant); wrapped operations always return the modular result.
package integer

import "math/big"

// Params describes a machine integer type: its bit width and signedness.
type Params interface {
	BitWidth() int
	Signed() bool
	TypeName() string
}

// Magnitude is implemented by the unsigned types small enough to serve as
// exponent or shift-amount operands.
type Magnitude interface {
	Params
	magnitude()
}

type (
	U8   struct{}
	U16  struct{}
	U32  struct{}
	U64  struct{}
	U128 struct{}

	I8   struct{}
	I16  struct{}
	I32  struct{}
	I64  struct{}
	I128 struct{}
)

func (U8) BitWidth() int   { return 8 }
func (U16) BitWidth() int  { return 16 }
func (U32) BitWidth() int  { return 32 }
func (U64) BitWidth() int  { return 64 }
func (U128) BitWidth() int { return 128 }
func (I8) BitWidth() int   { return 8 }
func (I16) BitWidth() int  { return 16 }
func (I32) BitWidth() int  { return 32 }
func (I64) BitWidth() int  { return 64 }
func (I128) BitWidth() int { return 128 }

func (U8) Signed() bool   { return false }
func (U16) Signed() bool  { return false }
func (U32) Signed() bool  { return false }
func (U64) Signed() bool  { return false }
func (U128) Signed() bool { return false }
func (I8) Signed() bool   { return true }
func (I16) Signed() bool  { return true }
func (I32) Signed() bool  { return true }
func (I64) Signed() bool  { return true }
func (I128) Signed() bool { return true }

func (U8) TypeName() string   { return "u8" }
func (U16) TypeName() string  { return "u16" }
func (U32) TypeName() string  { return "u32" }
func (U64) TypeName() string  { return "u64" }
func (U128) TypeName() string { return "u128" }
func (I8) TypeName() string   { return "i8" }
func (I16) TypeName() string  { return "i16" }
func (I32) TypeName() string  { return "i32" }
func (I64) TypeName() string  { return "i64" }
func (I128) TypeName() string { return "i128" }

func (U8) magnitude()  {}
func (U16) magnitude() {}
func (U32) magnitude() {}

// MinValue returns the smallest representable value of the type.
func MinValue[P Params]() *big.Int {
	var p P
	if !p.Signed() {
		return new(big.Int)
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(p.BitWidth()-1))
	return min.Neg(min)
}

// MaxValue returns the largest representable value of the type.
func MaxValue[P Params]() *big.Int {
	var p P
	w := uint(p.BitWidth())
	if p.Signed() {
		w--
	}
	max := new(big.Int).Lsh(big.NewInt(1), w)
	return max.Sub(max, big.NewInt(1))
}
