package integer_test

import (
	"math/big"
	"testing"

	"github.com/consensys/circuitry/constraint"
	"github.com/consensys/circuitry/gadgets/integer"
	"github.com/consensys/circuitry/internal/circuittest"
	"github.com/stretchr/testify/require"
)

// checkDivRem runs both division variants over the edge-value grid. The
// quotient truncates toward zero and the remainder takes the dividend's sign;
// a zero divisor is unsatisfiable with witnessed operands and halts with
// constant ones. The checked and wrapped variants agree everywhere, MIN / -1
// included.
func checkDivRem[P integer.Params](t *testing.T) {
	t.Helper()
	ops := []struct {
		name  string
		op    binOp[P]
		model func(a, b *big.Int) *big.Int
	}{
		{"div_wrapped", integer.Int[P].DivWrapped, func(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }},
		{"div_checked", integer.Int[P].DivChecked, func(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }},
		{"rem_wrapped", integer.Int[P].RemWrapped, func(a, b *big.Int) *big.Int { return new(big.Int).Rem(a, b) }},
		{"rem_checked", integer.Int[P].RemChecked, func(a, b *big.Int) *big.Int { return new(big.Int).Rem(a, b) }},
	}
	vals := edgeValues[P](t)
	for _, op := range ops {
		for _, av := range vals {
			for _, bv := range vals {
				if bv.Sign() == 0 {
					s := constraint.New()
					x := integer.New[P](s, constraint.ModePrivate, av)
					y := integer.New[P](s, constraint.ModePrivate, bv)
					op.op(x, y)
					require.False(t, s.IsSatisfied(), "%s: %v / 0 should not be provable", op.name, av)

					s = constraint.New()
					cx := integer.New[P](s, constraint.ModeConstant, av)
					cy := integer.New[P](s, constraint.ModeConstant, bv)
					circuittest.RequireHalt(t, func() { op.op(cx, cy) })
					continue
				}

				s := constraint.New()
				x := integer.New[P](s, constraint.ModePrivate, av)
				y := integer.New[P](s, constraint.ModePrivate, bv)
				got := op.op(x, y).Value()
				want := wrapTo[P](op.model(av, bv))
				require.Zero(t, want.Cmp(got), "%s: %v, %v: got %v want %v", op.name, av, bv, got, want)
				require.True(t, s.IsSatisfied(), "%s: %v, %v", op.name, av, bv)

				s = constraint.New()
				cout := op.op(integer.New[P](s, constraint.ModeConstant, av), integer.New[P](s, constraint.ModeConstant, bv))
				require.Zero(t, want.Cmp(cout.Value()), "%s const: %v, %v", op.name, av, bv)
				require.True(t, cout.IsConstant())
				require.Equal(t, uint64(0), s.NumConstraints())
			}
		}
	}
}

func TestDivRemValues(t *testing.T) {
	t.Run("u8", func(t *testing.T) { checkDivRem[integer.U8](t) })
	t.Run("u16", func(t *testing.T) { checkDivRem[integer.U16](t) })
	t.Run("u32", func(t *testing.T) { checkDivRem[integer.U32](t) })
	t.Run("u64", func(t *testing.T) { checkDivRem[integer.U64](t) })
	t.Run("u128", func(t *testing.T) { checkDivRem[integer.U128](t) })
	t.Run("i8", func(t *testing.T) { checkDivRem[integer.I8](t) })
	t.Run("i16", func(t *testing.T) { checkDivRem[integer.I16](t) })
	t.Run("i32", func(t *testing.T) { checkDivRem[integer.I32](t) })
	t.Run("i64", func(t *testing.T) { checkDivRem[integer.I64](t) })
	t.Run("i128", func(t *testing.T) { checkDivRem[integer.I128](t) })
}

// TestDivMinByMinusOne pins the one case where a checked quotient could have
// differed from the wrapped one: both wrap MIN / -1 to MIN.
func TestDivMinByMinusOne(t *testing.T) {
	min := integer.MinValue[integer.I8]()
	for _, div := range []binOp[integer.I8]{
		integer.Int[integer.I8].DivWrapped,
		integer.Int[integer.I8].DivChecked,
	} {
		s := constraint.New()
		x := integer.New[integer.I8](s, constraint.ModePrivate, min)
		y := integer.NewFromInt64[integer.I8](s, constraint.ModePrivate, -1)
		out := div(x, y)
		require.Zero(t, min.Cmp(out.Value()))
		require.True(t, s.IsSatisfied())
	}
}

func TestDivCountsUnsigned(t *testing.T) {
	s := constraint.New()
	x := integer.NewFromUint64[integer.U8](s, constraint.ModePrivate, 200)
	y := integer.NewFromUint64[integer.U8](s, constraint.ModePrivate, 7)
	circuittest.RequireCounts(t, s, "div",
		circuittest.Counts{Private: 24, Constraints: 26},
		func() { x.DivWrapped(y) })
}

// TestDivRemBound checks a pair where the remainder is close to the divisor,
// exercising the r < d range constraint away from the corners.
func TestDivRemBound(t *testing.T) {
	s := constraint.New()
	x := integer.NewFromUint64[integer.U16](s, constraint.ModePrivate, 50000)
	y := integer.NewFromUint64[integer.U16](s, constraint.ModePrivate, 129)
	q := x.DivWrapped(y)
	r := x.RemWrapped(y)
	require.Equal(t, "387", q.Value().String())
	require.Equal(t, "77", r.Value().String())
	require.True(t, s.IsSatisfied())
}
