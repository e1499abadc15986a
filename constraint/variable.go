package constraint

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Variable is a single wire of the constraint system, or a folded constant.
// Variables are created through System.Constant, System.NewPublic and
// System.NewPrivate and carry their assigned field value so that linear
// combinations can be evaluated at any point during construction.
type Variable struct {
	mode  Mode
	index uint64
	value fr.Element
}

// Mode returns the visibility of the variable.
func (v Variable) Mode() Mode { return v.mode }

// Index returns the wire index of the variable within its visibility class.
// The index of a constant is meaningless.
func (v Variable) Index() uint64 { return v.index }

// Value returns the field value assigned to the variable.
func (v Variable) Value() fr.Element { return v.value }

func (v Variable) String() string {
	if v.mode == ModeConstant {
		return fmt.Sprintf("Constant(%s)", v.value.String())
	}
	return fmt.Sprintf("%s(%d, %s)", v.mode.String(), v.index, v.value.String())
}

// ToLinearCombination lifts the variable into a linear combination. Constants
// fold into the constant part and allocate no term.
func (v Variable) ToLinearCombination() *LinearCombination {
	lc := &LinearCombination{}
	if v.mode == ModeConstant {
		lc.constant = v.value
		return lc
	}
	var one fr.Element
	one.SetOne()
	lc.addTerm(v, one)
	return lc
}
