// Package circuitry provides the arithmetic-circuit construction layer for
// zkSNARK proving: a Rank-1 Constraint System (R1CS) builder and the
// mode-tracked boolean, field and fixed-width integer gadgets that compile
// ordinary arithmetic into constraints.
//
// Every circuit value carries a mode:
//   - Constant values are folded at construction time, at zero proving cost
//   - Public values are bound to the instance and known to the verifier
//   - Private values are witness-only, known to the prover
//
// A checked operation over non-constant operands never fails at the host
// level; an overflow instead renders the finished system unsatisfiable, so
// that no proof can be constructed. The same operation over two constants
// fails eagerly, before any witness exists.
//
// The SNARK setup/prove/verify backends are external consumers: they bind
// inputs through variable allocation, register each A·B=C constraint, and
// read the compiled matrices through [constraint.System.Matrices].
package circuitry

import (
	"github.com/blang/semver/v4"
)

// Version of the module.
var Version = semver.MustParse("0.1.0")
