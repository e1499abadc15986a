// Package constraint provides the rank-1 constraint system used by the
// circuitry gadgets.
//
// A System collects constraints of the form A * B = C where A, B and C are
// linear combinations over allocated wires. Wires carry one of three modes:
// Constant values are folded at construction time and never allocate a wire,
// Public wires are part of the statement, and Private wires are witness
// values known only to the prover.
package constraint

// Mode describes the visibility of a value in the circuit.
type Mode uint8

const (
	// ModeConstant values are fixed at circuit construction time.
	ModeConstant Mode = iota
	// ModePublic wires are visible to both prover and verifier.
	ModePublic
	// ModePrivate wires are known to the prover only.
	ModePrivate
)

func (m Mode) String() string {
	switch m {
	case ModeConstant:
		return "Constant"
	case ModePublic:
		return "Public"
	case ModePrivate:
		return "Private"
	default:
		return "Unknown"
	}
}

// IsConstant reports whether m is ModeConstant.
func (m Mode) IsConstant() bool { return m == ModeConstant }

// IsPublic reports whether m is ModePublic.
func (m Mode) IsPublic() bool { return m == ModePublic }

// IsPrivate reports whether m is ModePrivate.
func (m Mode) IsPrivate() bool { return m == ModePrivate }

// Combine returns the mode of a value derived from operands of modes m and n.
// The result is constant only when both operands are constant; any operation
// on a public wire produces a private wire.
func (m Mode) Combine(n Mode) Mode {
	if m == ModeConstant && n == ModeConstant {
		return ModeConstant
	}
	return ModePrivate
}
