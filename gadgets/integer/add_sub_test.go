package integer_test

import (
	"math/big"
	"testing"

	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/integer"
	"github.com/consensys/circuitry/internal/circuittest"
	"github.com/stretchr/testify/require"
)

func bigAdd(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func bigSub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

func TestAddWrappedValues(t *testing.T) {
	t.Run("u8", func(t *testing.T) { checkWrapped[integer.U8](t, integer.Int[integer.U8].AddWrapped, bigAdd) })
	t.Run("u16", func(t *testing.T) { checkWrapped[integer.U16](t, integer.Int[integer.U16].AddWrapped, bigAdd) })
	t.Run("u32", func(t *testing.T) { checkWrapped[integer.U32](t, integer.Int[integer.U32].AddWrapped, bigAdd) })
	t.Run("u64", func(t *testing.T) { checkWrapped[integer.U64](t, integer.Int[integer.U64].AddWrapped, bigAdd) })
	t.Run("u128", func(t *testing.T) { checkWrapped[integer.U128](t, integer.Int[integer.U128].AddWrapped, bigAdd) })
	t.Run("i8", func(t *testing.T) { checkWrapped[integer.I8](t, integer.Int[integer.I8].AddWrapped, bigAdd) })
	t.Run("i16", func(t *testing.T) { checkWrapped[integer.I16](t, integer.Int[integer.I16].AddWrapped, bigAdd) })
	t.Run("i32", func(t *testing.T) { checkWrapped[integer.I32](t, integer.Int[integer.I32].AddWrapped, bigAdd) })
	t.Run("i64", func(t *testing.T) { checkWrapped[integer.I64](t, integer.Int[integer.I64].AddWrapped, bigAdd) })
	t.Run("i128", func(t *testing.T) { checkWrapped[integer.I128](t, integer.Int[integer.I128].AddWrapped, bigAdd) })
}

func TestAddCheckedValues(t *testing.T) {
	t.Run("u8", func(t *testing.T) { checkChecked[integer.U8](t, integer.Int[integer.U8].AddChecked, bigAdd) })
	t.Run("u16", func(t *testing.T) { checkChecked[integer.U16](t, integer.Int[integer.U16].AddChecked, bigAdd) })
	t.Run("u32", func(t *testing.T) { checkChecked[integer.U32](t, integer.Int[integer.U32].AddChecked, bigAdd) })
	t.Run("u64", func(t *testing.T) { checkChecked[integer.U64](t, integer.Int[integer.U64].AddChecked, bigAdd) })
	t.Run("u128", func(t *testing.T) { checkChecked[integer.U128](t, integer.Int[integer.U128].AddChecked, bigAdd) })
	t.Run("i8", func(t *testing.T) { checkChecked[integer.I8](t, integer.Int[integer.I8].AddChecked, bigAdd) })
	t.Run("i16", func(t *testing.T) { checkChecked[integer.I16](t, integer.Int[integer.I16].AddChecked, bigAdd) })
	t.Run("i32", func(t *testing.T) { checkChecked[integer.I32](t, integer.Int[integer.I32].AddChecked, bigAdd) })
	t.Run("i64", func(t *testing.T) { checkChecked[integer.I64](t, integer.Int[integer.I64].AddChecked, bigAdd) })
	t.Run("i128", func(t *testing.T) { checkChecked[integer.I128](t, integer.Int[integer.I128].AddChecked, bigAdd) })
}

func TestSubWrappedValues(t *testing.T) {
	t.Run("u8", func(t *testing.T) { checkWrapped[integer.U8](t, integer.Int[integer.U8].SubWrapped, bigSub) })
	t.Run("u16", func(t *testing.T) { checkWrapped[integer.U16](t, integer.Int[integer.U16].SubWrapped, bigSub) })
	t.Run("u32", func(t *testing.T) { checkWrapped[integer.U32](t, integer.Int[integer.U32].SubWrapped, bigSub) })
	t.Run("u64", func(t *testing.T) { checkWrapped[integer.U64](t, integer.Int[integer.U64].SubWrapped, bigSub) })
	t.Run("u128", func(t *testing.T) { checkWrapped[integer.U128](t, integer.Int[integer.U128].SubWrapped, bigSub) })
	t.Run("i8", func(t *testing.T) { checkWrapped[integer.I8](t, integer.Int[integer.I8].SubWrapped, bigSub) })
	t.Run("i16", func(t *testing.T) { checkWrapped[integer.I16](t, integer.Int[integer.I16].SubWrapped, bigSub) })
	t.Run("i32", func(t *testing.T) { checkWrapped[integer.I32](t, integer.Int[integer.I32].SubWrapped, bigSub) })
	t.Run("i64", func(t *testing.T) { checkWrapped[integer.I64](t, integer.Int[integer.I64].SubWrapped, bigSub) })
	t.Run("i128", func(t *testing.T) { checkWrapped[integer.I128](t, integer.Int[integer.I128].SubWrapped, bigSub) })
}

func TestSubCheckedValues(t *testing.T) {
	t.Run("u8", func(t *testing.T) { checkChecked[integer.U8](t, integer.Int[integer.U8].SubChecked, bigSub) })
	t.Run("u16", func(t *testing.T) { checkChecked[integer.U16](t, integer.Int[integer.U16].SubChecked, bigSub) })
	t.Run("u32", func(t *testing.T) { checkChecked[integer.U32](t, integer.Int[integer.U32].SubChecked, bigSub) })
	t.Run("u64", func(t *testing.T) { checkChecked[integer.U64](t, integer.Int[integer.U64].SubChecked, bigSub) })
	t.Run("u128", func(t *testing.T) { checkChecked[integer.U128](t, integer.Int[integer.U128].SubChecked, bigSub) })
	t.Run("i8", func(t *testing.T) { checkChecked[integer.I8](t, integer.Int[integer.I8].SubChecked, bigSub) })
	t.Run("i16", func(t *testing.T) { checkChecked[integer.I16](t, integer.Int[integer.I16].SubChecked, bigSub) })
	t.Run("i32", func(t *testing.T) { checkChecked[integer.I32](t, integer.Int[integer.I32].SubChecked, bigSub) })
	t.Run("i64", func(t *testing.T) { checkChecked[integer.I64](t, integer.Int[integer.I64].SubChecked, bigSub) })
	t.Run("i128", func(t *testing.T) { checkChecked[integer.I128](t, integer.Int[integer.I128].SubChecked, bigSub) })
}

// checkAddCheckedModes runs checked addition over every operand-mode pair,
// once with an in-range sum and once with an overflowing one. Overflow halts
// when both operands are constant and leaves the system unsatisfiable in
// every other combination.
func checkAddCheckedModes[P integer.Params](t *testing.T) {
	t.Helper()
	max := integer.MaxValue[P]()
	one := big.NewInt(1)
	for _, mx := range modes() {
		for _, my := range modes() {
			s := constraint.New()
			x := integer.New[P](s, mx, new(big.Int).Sub(max, one))
			y := integer.New[P](s, my, one)
			out := x.AddChecked(y)
			require.Zero(t, max.Cmp(out.Value()))
			require.True(t, s.IsSatisfied())
			require.Equal(t, mx.Combine(my), out.Mode())

			s = constraint.New()
			x = integer.New[P](s, mx, max)
			y = integer.New[P](s, my, one)
			if mx.IsConstant() && my.IsConstant() {
				circuittest.RequireHalt(t, func() { x.AddChecked(y) })
				continue
			}
			x.AddChecked(y)
			require.False(t, s.IsSatisfied(), "%s + %s overflow", mx, my)
		}
	}
}

func TestAddCheckedModeMatrix(t *testing.T) {
	t.Run("u8", func(t *testing.T) { checkAddCheckedModes[integer.U8](t) })
	t.Run("u16", func(t *testing.T) { checkAddCheckedModes[integer.U16](t) })
	t.Run("u32", func(t *testing.T) { checkAddCheckedModes[integer.U32](t) })
	t.Run("u64", func(t *testing.T) { checkAddCheckedModes[integer.U64](t) })
	t.Run("u128", func(t *testing.T) { checkAddCheckedModes[integer.U128](t) })
	t.Run("i8", func(t *testing.T) { checkAddCheckedModes[integer.I8](t) })
	t.Run("i16", func(t *testing.T) { checkAddCheckedModes[integer.I16](t) })
	t.Run("i32", func(t *testing.T) { checkAddCheckedModes[integer.I32](t) })
	t.Run("i64", func(t *testing.T) { checkAddCheckedModes[integer.I64](t) })
	t.Run("i128", func(t *testing.T) { checkAddCheckedModes[integer.I128](t) })
}

// TestAddU8Overflow pins the canonical overflow pair: 255 + 1 is
// unsatisfiable checked and zero wrapped.
func TestAddU8Overflow(t *testing.T) {
	s := constraint.New()
	x := integer.NewFromUint64[integer.U8](s, constraint.ModePrivate, 255)
	y := integer.NewFromUint64[integer.U8](s, constraint.ModePrivate, 1)
	x.AddChecked(y)
	require.False(t, s.IsSatisfied())

	s = constraint.New()
	x = integer.NewFromUint64[integer.U8](s, constraint.ModePrivate, 255)
	y = integer.NewFromUint64[integer.U8](s, constraint.ModePrivate, 1)
	out := x.AddWrapped(y)
	require.Equal(t, "0", out.Value().String())
	require.True(t, s.IsSatisfied())

	s = constraint.New()
	cx := integer.NewFromUint64[integer.U8](s, constraint.ModeConstant, 255)
	cy := integer.NewFromUint64[integer.U8](s, constraint.ModeConstant, 1)
	circuittest.RequireHalt(t, func() { cx.AddChecked(cy) })
}

func TestAddWrappedCounts(t *testing.T) {
	for _, mx := range modes() {
		for _, my := range modes() {
			s := constraint.New()
			x := integer.New[integer.U8](s, mx, big.NewInt(200))
			y := integer.New[integer.U8](s, my, big.NewInt(100))
			want := circuittest.Counts{Private: 9, Constraints: 10}
			if mx.IsConstant() && my.IsConstant() {
				want = circuittest.Counts{Constants: 9}
			}
			circuittest.RequireCounts(t, s, "add_wrapped", want, func() { x.AddWrapped(y) })
			require.True(t, s.IsSatisfied())
		}
	}
}

func TestAddCheckedCountsUnsigned(t *testing.T) {
	s := constraint.New()
	x := integer.NewFromUint64[integer.U8](s, constraint.ModePrivate, 3)
	y := integer.NewFromUint64[integer.U8](s, constraint.ModePrivate, 4)
	circuittest.RequireCounts(t, s, "add_checked",
		circuittest.Counts{Private: 9, Constraints: 11},
		func() { x.AddChecked(y) })
}

func TestAddCheckedCountsSigned(t *testing.T) {
	cases := []struct {
		mx, my constraint.Mode
		want   circuittest.Counts
	}{
		{constraint.ModePrivate, constraint.ModePrivate, circuittest.Counts{Private: 12, Constraints: 14}},
		{constraint.ModeConstant, constraint.ModePrivate, circuittest.Counts{Private: 10, Constraints: 12}},
		{constraint.ModePrivate, constraint.ModeConstant, circuittest.Counts{Private: 11, Constraints: 13}},
		{constraint.ModeConstant, constraint.ModeConstant, circuittest.Counts{Constants: 9}},
	}
	for _, tc := range cases {
		s := constraint.New()
		x := integer.New[integer.I8](s, tc.mx, big.NewInt(5))
		y := integer.New[integer.I8](s, tc.my, big.NewInt(-7))
		circuittest.RequireCounts(t, s, "add_checked", tc.want, func() { x.AddChecked(y) })
		require.True(t, s.IsSatisfied())
	}
}

func TestSubCheckedCountsSigned(t *testing.T) {
	s := constraint.New()
	x := integer.NewFromInt64[integer.I8](s, constraint.ModePrivate, 5)
	y := integer.NewFromInt64[integer.I8](s, constraint.ModePrivate, -7)
	circuittest.RequireCounts(t, s, "sub_checked",
		circuittest.Counts{Private: 12, Constraints: 14},
		func() { x.SubChecked(y) })
}

func TestNeg(t *testing.T) {
	for _, v := range edgeValues[integer.I16](t) {
		s := constraint.New()
		x := integer.New[integer.I16](s, constraint.ModePrivate, v)
		got := x.NegWrapped().Value()
		want := wrapTo[integer.I16](new(big.Int).Neg(v))
		require.Zero(t, want.Cmp(got), "neg %v", v)
		require.True(t, s.IsSatisfied())

		s = constraint.New()
		x = integer.New[integer.I16](s, constraint.ModePrivate, v)
		x.NegChecked()
		fits := inRange[integer.I16](new(big.Int).Neg(v))
		require.Equal(t, fits, s.IsSatisfied(), "neg_checked %v", v)
	}

	s := constraint.New()
	cx := integer.New[integer.I16](s, constraint.ModeConstant, integer.MinValue[integer.I16]())
	circuittest.RequireHalt(t, func() { cx.NegChecked() })
	require.Zero(t, integer.MinValue[integer.I16]().Cmp(cx.NegWrapped().Value()))

	circuittest.RequireMalformed(t, func() {
		integer.NewFromUint64[integer.U16](s, constraint.ModePrivate, 1).NegWrapped()
	})
}

func TestAbs(t *testing.T) {
	for _, v := range edgeValues[integer.I32](t) {
		s := constraint.New()
		x := integer.New[integer.I32](s, constraint.ModePrivate, v)
		got := x.AbsWrapped().Value()
		want := wrapTo[integer.I32](new(big.Int).Abs(v))
		require.Zero(t, want.Cmp(got), "abs %v", v)
		require.True(t, s.IsSatisfied())

		s = constraint.New()
		x = integer.New[integer.I32](s, constraint.ModePrivate, v)
		x.AbsChecked()
		fits := inRange[integer.I32](new(big.Int).Abs(v))
		require.Equal(t, fits, s.IsSatisfied(), "abs_checked %v", v)
	}

	s := constraint.New()
	circuittest.RequireMalformed(t, func() {
		integer.NewFromUint64[integer.U32](s, constraint.ModePrivate, 1).AbsChecked()
	})
}
