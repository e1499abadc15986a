package constraint

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/circuitry/logger"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// R1C is a single rank-1 constraint A * B = C.
type R1C struct {
	A, B, C *LinearCombination

	scope string
}

// Scope returns the dot-joined scope path under which the constraint was
// recorded.
func (c R1C) Scope() string { return c.scope }

// System is a rank-1 constraint system under construction. Public wire 0 is
// always allocated and fixed to one; gadgets use it to express affine
// relations over non-constant wires.
type System struct {
	id  uuid.UUID
	log zerolog.Logger

	constants uint64
	public    []fr.Element
	private   []fr.Element

	constraints []R1C
	scopes      []string
}

// Option configures a System created with New.
type Option func(*System)

// WithLogger overrides the logger used by the system.
func WithLogger(l zerolog.Logger) Option {
	return func(s *System) { s.log = l }
}

// WithCapacity preallocates room for the expected number of constraints.
func WithCapacity(n int) Option {
	return func(s *System) { s.constraints = make([]R1C, 0, n) }
}

// New returns an empty constraint system with the one wire allocated at
// public index 0.
func New(opts ...Option) *System {
	s := &System{id: uuid.New()}
	s.log = logger.Logger().With().Str("system", s.id.String()).Logger()
	for _, opt := range opts {
		opt(s)
	}
	var one fr.Element
	one.SetOne()
	s.public = append(s.public, one)
	return s
}

// ID returns the unique identifier of the system.
func (s *System) ID() uuid.UUID { return s.id }

// One returns the public wire fixed to the value one.
func (s *System) One() Variable {
	var one fr.Element
	one.SetOne()
	return Variable{mode: ModePublic, index: 0, value: one}
}

// Constant records a constant of the circuit. No wire is allocated.
func (s *System) Constant(v fr.Element) Variable {
	s.constants++
	return Variable{mode: ModeConstant, value: v}
}

// NewPublic allocates a public wire holding v.
func (s *System) NewPublic(v fr.Element) Variable {
	w := Variable{mode: ModePublic, index: uint64(len(s.public)), value: v}
	s.public = append(s.public, v)
	return w
}

// NewPrivate allocates a private wire holding v.
func (s *System) NewPrivate(v fr.Element) Variable {
	w := Variable{mode: ModePrivate, index: uint64(len(s.private)), value: v}
	s.private = append(s.private, v)
	return w
}

// NumConstants returns the number of constants recorded so far.
func (s *System) NumConstants() uint64 { return s.constants }

// NumPublic returns the number of public wires, including the one wire.
func (s *System) NumPublic() uint64 { return uint64(len(s.public)) }

// NumPrivate returns the number of private wires.
func (s *System) NumPrivate() uint64 { return uint64(len(s.private)) }

// NumConstraints returns the number of constraints recorded so far.
func (s *System) NumConstraints() uint64 { return uint64(len(s.constraints)) }

// Scope runs fn with name pushed on the scope stack. Scopes only affect
// logging and error reporting.
func (s *System) Scope(name string, fn func()) {
	s.scopes = append(s.scopes, name)
	s.log.Trace().Str("scope", s.ScopeName()).Msg("enter scope")
	defer func() {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}()
	fn()
}

// ScopeName returns the dot-joined current scope path.
func (s *System) ScopeName() string { return strings.Join(s.scopes, ".") }

// Enforce records the constraint a * b = c.
//
// A constraint whose three combinations are constant is not recorded: it is
// evaluated immediately and halts construction if violated, since no witness
// could ever satisfy it.
func (s *System) Enforce(a, b, c *LinearCombination) {
	if a.IsConstant() && b.IsConstant() && c.IsConstant() {
		av, bv, cv := a.Value(), b.Value(), c.Value()
		var p fr.Element
		p.Mul(&av, &bv)
		if !p.Equal(&cv) {
			s.Haltf("constant constraint violated: %s * %s != %s", av.String(), bv.String(), cv.String())
		}
		return
	}
	s.constraints = append(s.constraints, R1C{A: a, B: b, C: c, scope: s.ScopeName()})
}

// AssertEq records the constraint a * 1 = b.
func (s *System) AssertEq(a, b *LinearCombination) {
	var one fr.Element
	one.SetOne()
	s.Enforce(a, FromConstant(one), b)
}

// Assert records the constraint a * 1 = 1.
func (s *System) Assert(a *LinearCombination) {
	s.AssertEq(a, One())
}

// FailingConstraints evaluates every recorded constraint against the witness
// and returns the set of indices that are violated.
func (s *System) FailingConstraints() *bitset.BitSet {
	failing := bitset.New(uint(len(s.constraints)))
	for i := range s.constraints {
		av := s.constraints[i].A.Value()
		bv := s.constraints[i].B.Value()
		cv := s.constraints[i].C.Value()
		var p fr.Element
		p.Mul(&av, &bv)
		if !p.Equal(&cv) {
			failing.Set(uint(i))
		}
	}
	return failing
}

// IsSatisfied reports whether the witness satisfies every recorded
// constraint.
func (s *System) IsSatisfied() bool {
	for i := range s.constraints {
		av := s.constraints[i].A.Value()
		bv := s.constraints[i].B.Value()
		cv := s.constraints[i].C.Value()
		var p fr.Element
		p.Mul(&av, &bv)
		if !p.Equal(&cv) {
			return false
		}
	}
	return true
}

// IsSatisfiedInScope reports whether the witness satisfies every constraint
// recorded under the given scope path, including nested scopes.
func (s *System) IsSatisfiedInScope(scope string) bool {
	for i := range s.constraints {
		cs := s.constraints[i].scope
		if cs != scope && !strings.HasPrefix(cs, scope+".") {
			continue
		}
		av := s.constraints[i].A.Value()
		bv := s.constraints[i].B.Value()
		cv := s.constraints[i].C.Value()
		var p fr.Element
		p.Mul(&av, &bv)
		if !p.Equal(&cv) {
			return false
		}
	}
	return true
}

// Constraint returns the i-th recorded constraint.
func (s *System) Constraint(i uint64) R1C { return s.constraints[i] }

// Reset discards all accumulated state, leaving only the one wire. Intended
// for tests; gadgets created before the reset must not be used afterwards.
func (s *System) Reset() {
	s.constants = 0
	s.public = s.public[:1]
	s.private = s.private[:0]
	s.constraints = s.constraints[:0]
	s.scopes = s.scopes[:0]
}

// Haltf aborts circuit construction by panicking with a *Halt. It is called
// when a constant computation can be proven unsatisfiable at construction
// time, for example a checked overflow on constant operands.
func (s *System) Haltf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if scope := s.ScopeName(); scope != "" {
		msg = scope + ": " + msg
	}
	st := stack()
	s.log.Error().Str("stack", st).Msg(msg)
	panic(&Halt{Message: msg, Stack: st})
}

// Malformedf aborts circuit construction by panicking with a *Malformed. It
// reports an internal invariant violation in a gadget, not a user error.
func (s *System) Malformedf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if scope := s.ScopeName(); scope != "" {
		msg = scope + ": " + msg
	}
	st := stack()
	s.log.Error().Str("stack", st).Msg(msg)
	panic(&Malformed{Message: msg, Stack: st})
}
