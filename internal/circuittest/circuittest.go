// Package circuittest provides helpers for gadget tests that assert exact
// allocation counts and halting behavior.
package circuittest

import (
	"testing"

	"github.com/consensys/circuitry/constraint"
	"github.com/stretchr/testify/require"
)

// Counts records how many constants, wires and constraints a gadget
// allocated.
type Counts struct {
	Constants   uint64
	Public      uint64
	Private     uint64
	Constraints uint64
}

func snapshot(s *constraint.System) Counts {
	return Counts{
		Constants:   s.NumConstants(),
		Public:      s.NumPublic(),
		Private:     s.NumPrivate(),
		Constraints: s.NumConstraints(),
	}
}

// InScope runs fn inside a named scope and returns what it allocated.
func InScope(s *constraint.System, name string, fn func()) Counts {
	before := snapshot(s)
	s.Scope(name, fn)
	after := snapshot(s)
	return Counts{
		Constants:   after.Constants - before.Constants,
		Public:      after.Public - before.Public,
		Private:     after.Private - before.Private,
		Constraints: after.Constraints - before.Constraints,
	}
}

// RequireCounts runs fn inside a named scope and asserts it allocated exactly
// want.
func RequireCounts(t *testing.T, s *constraint.System, name string, want Counts, fn func()) {
	t.Helper()
	got := InScope(s, name, fn)
	require.Equal(t, want, got, "allocation counts in scope %q", name)
}

// RequireMalformed asserts that fn panics with a *constraint.Malformed.
func RequireMalformed(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a malformed gadget panic")
		_, ok := r.(*constraint.Malformed)
		require.True(t, ok, "expected *constraint.Malformed, got %T", r)
	}()
	fn()
}

// RequireHalt asserts that fn panics with a *constraint.Halt.
func RequireHalt(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected construction to halt")
		_, ok := r.(*constraint.Halt)
		require.True(t, ok, "expected *constraint.Halt, got %T", r)
	}()
	fn()
}
