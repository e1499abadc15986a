package constraint

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/sync/errgroup"
)

// evaluating a linear combination with more terms than this splits the work
// across NumCPU goroutines.
const parallelEvalThreshold = 500_000

type wireKey struct {
	mode  Mode
	index uint64
}

type term struct {
	variable Variable
	coeff    fr.Element
}

// LinearCombination is an affine combination c0 + Σ ci * wi over the wires of
// a System. Terms are kept in insertion order, constants are folded into the
// constant part, and terms whose coefficient cancels to zero are removed.
//
// The zero value is the empty combination, equal to the constant 0.
type LinearCombination struct {
	constant fr.Element
	terms    []term
	index    map[wireKey]int
}

// NewLinearCombination returns the sum of the given variables.
func NewLinearCombination(vs ...Variable) *LinearCombination {
	lc := &LinearCombination{}
	var one fr.Element
	one.SetOne()
	for _, v := range vs {
		if v.mode == ModeConstant {
			lc.constant.Add(&lc.constant, &v.value)
			continue
		}
		lc.addTerm(v, one)
	}
	return lc
}

// FromConstant returns a linear combination holding the constant c and no
// terms.
func FromConstant(c fr.Element) *LinearCombination {
	return &LinearCombination{constant: c}
}

// Zero returns the empty combination.
func Zero() *LinearCombination { return &LinearCombination{} }

// One returns the combination holding the constant one and no terms.
func One() *LinearCombination {
	var one fr.Element
	one.SetOne()
	return &LinearCombination{constant: one}
}

// Constant returns the constant part of the combination.
func (lc *LinearCombination) Constant() fr.Element { return lc.constant }

// NumTerms returns the number of wire terms in the combination.
func (lc *LinearCombination) NumTerms() int { return len(lc.terms) }

// IsConstant reports whether the combination holds no wire terms.
func (lc *LinearCombination) IsConstant() bool { return len(lc.terms) == 0 }

// Mode returns the visibility of the combination. A combination is public
// only when it is exactly one public wire with coefficient one and no
// constant part; anything else involving a wire is private.
func (lc *LinearCombination) Mode() Mode {
	if len(lc.terms) == 0 {
		return ModeConstant
	}
	if len(lc.terms) == 1 && lc.constant.IsZero() &&
		lc.terms[0].coeff.IsOne() && lc.terms[0].variable.mode == ModePublic {
		return ModePublic
	}
	return ModePrivate
}

// NumAdditions returns the number of field additions needed to evaluate the
// combination.
func (lc *LinearCombination) NumAdditions() uint64 {
	if len(lc.terms) == 0 {
		return 0
	}
	n := uint64(len(lc.terms) - 1)
	if !lc.constant.IsZero() {
		n++
	}
	return n
}

// Clone returns a deep copy of the combination.
func (lc *LinearCombination) Clone() *LinearCombination {
	c := &LinearCombination{constant: lc.constant}
	if len(lc.terms) == 0 {
		return c
	}
	c.terms = make([]term, len(lc.terms))
	copy(c.terms, lc.terms)
	c.index = make(map[wireKey]int, len(lc.terms))
	for i := range c.terms {
		c.index[keyOf(c.terms[i].variable)] = i
	}
	return c
}

func keyOf(v Variable) wireKey { return wireKey{mode: v.mode, index: v.index} }

// addTerm folds coeff * v into the combination, removing the term if the
// coefficient cancels.
func (lc *LinearCombination) addTerm(v Variable, coeff fr.Element) {
	if coeff.IsZero() {
		return
	}
	if v.mode == ModeConstant {
		var t fr.Element
		t.Mul(&coeff, &v.value)
		lc.constant.Add(&lc.constant, &t)
		return
	}
	if lc.index == nil {
		lc.index = make(map[wireKey]int)
	}
	k := keyOf(v)
	if i, ok := lc.index[k]; ok {
		lc.terms[i].coeff.Add(&lc.terms[i].coeff, &coeff)
		if lc.terms[i].coeff.IsZero() {
			lc.removeTerm(i)
		}
		return
	}
	lc.index[k] = len(lc.terms)
	lc.terms = append(lc.terms, term{variable: v, coeff: coeff})
}

func (lc *LinearCombination) removeTerm(i int) {
	delete(lc.index, keyOf(lc.terms[i].variable))
	copy(lc.terms[i:], lc.terms[i+1:])
	lc.terms = lc.terms[:len(lc.terms)-1]
	for j := i; j < len(lc.terms); j++ {
		lc.index[keyOf(lc.terms[j].variable)] = j
	}
}

// Add returns lc + other. Neither operand is modified; the smaller operand is
// merged into a copy of the larger one.
func (lc *LinearCombination) Add(other *LinearCombination) *LinearCombination {
	big, small := lc, other
	if len(small.terms) > len(big.terms) {
		big, small = small, big
	}
	out := big.Clone()
	out.constant.Add(&out.constant, &small.constant)
	for i := range small.terms {
		out.addTerm(small.terms[i].variable, small.terms[i].coeff)
	}
	return out
}

// Sub returns lc - other.
func (lc *LinearCombination) Sub(other *LinearCombination) *LinearCombination {
	out := lc.Clone()
	var c fr.Element
	c.Neg(&other.constant)
	out.constant.Add(&out.constant, &c)
	for i := range other.terms {
		c.Neg(&other.terms[i].coeff)
		out.addTerm(other.terms[i].variable, c)
	}
	return out
}

// AddVariable returns lc + v.
func (lc *LinearCombination) AddVariable(v Variable) *LinearCombination {
	var one fr.Element
	one.SetOne()
	return lc.AddScaled(v, one)
}

// AddScaled returns lc + coeff * v.
func (lc *LinearCombination) AddScaled(v Variable, coeff fr.Element) *LinearCombination {
	out := lc.Clone()
	out.addTerm(v, coeff)
	return out
}

// AddConstant returns lc + c.
func (lc *LinearCombination) AddConstant(c fr.Element) *LinearCombination {
	out := lc.Clone()
	out.constant.Add(&out.constant, &c)
	return out
}

// MulByConstant returns c * lc. Multiplying by zero yields the empty
// combination.
func (lc *LinearCombination) MulByConstant(c fr.Element) *LinearCombination {
	if c.IsZero() {
		return &LinearCombination{}
	}
	out := lc.Clone()
	out.constant.Mul(&out.constant, &c)
	for i := range out.terms {
		out.terms[i].coeff.Mul(&out.terms[i].coeff, &c)
	}
	return out
}

// Neg returns -lc.
func (lc *LinearCombination) Neg() *LinearCombination {
	out := lc.Clone()
	out.constant.Neg(&out.constant)
	for i := range out.terms {
		out.terms[i].coeff.Neg(&out.terms[i].coeff)
	}
	return out
}

// Value evaluates the combination against the witness values carried by its
// wires. Large combinations are evaluated in parallel.
func (lc *LinearCombination) Value() fr.Element {
	sum := lc.constant
	if len(lc.terms) < parallelEvalThreshold {
		var t fr.Element
		for i := range lc.terms {
			t.Mul(&lc.terms[i].coeff, &lc.terms[i].variable.value)
			sum.Add(&sum, &t)
		}
		return sum
	}

	nbWorkers := runtime.NumCPU()
	chunk := (len(lc.terms) + nbWorkers - 1) / nbWorkers
	partial := make([]fr.Element, nbWorkers)
	var g errgroup.Group
	for w := 0; w < nbWorkers; w++ {
		start := w * chunk
		if start >= len(lc.terms) {
			break
		}
		end := start + chunk
		if end > len(lc.terms) {
			end = len(lc.terms)
		}
		w := w
		g.Go(func() error {
			var t fr.Element
			for i := start; i < end; i++ {
				t.Mul(&lc.terms[i].coeff, &lc.terms[i].variable.value)
				partial[w].Add(&partial[w], &t)
			}
			return nil
		})
	}
	_ = g.Wait()
	for i := range partial {
		sum.Add(&sum, &partial[i])
	}
	return sum
}

// Boolean well-formedness violations reported by CheckBoolean.
var (
	ErrBooleanMixed    = errors.New("boolean combination mixes a constant with wire terms")
	ErrBooleanTerm     = errors.New("boolean combination has a term witness outside {0, 1}")
	ErrBooleanValue    = errors.New("boolean combination evaluates outside {0, 1}")
	ErrBooleanConstant = errors.New("boolean combination has a constant outside {0, 1}")
)

// CheckBoolean verifies that the combination is well formed as a boolean
// value: it must not mix a nonzero constant with wire terms, every term
// witness must be 0 or 1, and the combined value must be 0 or 1. A violation
// indicates a defect in the calling gadget.
func (lc *LinearCombination) CheckBoolean() error {
	if !lc.constant.IsZero() {
		if len(lc.terms) > 0 {
			return ErrBooleanMixed
		}
		if !lc.constant.IsOne() {
			return fmt.Errorf("%w: %s", ErrBooleanConstant, lc.constant.String())
		}
	}
	for i := range lc.terms {
		v := lc.terms[i].variable.value
		if !v.IsZero() && !v.IsOne() {
			return fmt.Errorf("%w: %s", ErrBooleanTerm, lc.terms[i].variable.String())
		}
	}
	v := lc.Value()
	if !v.IsZero() && !v.IsOne() {
		return fmt.Errorf("%w: %s", ErrBooleanValue, v.String())
	}
	return nil
}

func (lc *LinearCombination) String() string {
	var sb strings.Builder
	wrote := false
	if !lc.constant.IsZero() || len(lc.terms) == 0 {
		sb.WriteString("Constant(")
		sb.WriteString(lc.constant.String())
		sb.WriteByte(')')
		wrote = true
	}
	for i := range lc.terms {
		if wrote {
			sb.WriteString(" + ")
		}
		if !lc.terms[i].coeff.IsOne() {
			sb.WriteString(lc.terms[i].coeff.String())
			sb.WriteString(" * ")
		}
		sb.WriteString(lc.terms[i].variable.String())
		wrote = true
	}
	return sb.String()
}
