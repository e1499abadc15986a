package constraint

import (
	"strings"

	"github.com/consensys/circuitry/debug"
)

// Halt is the panic value raised when circuit construction encounters a
// computation on constants that no witness could satisfy.
type Halt struct {
	Message string
	Stack   string
}

func (h *Halt) Error() string { return "halt: " + h.Message }

// Malformed is the panic value raised when a gadget breaks one of its own
// invariants.
type Malformed struct {
	Message string
	Stack   string
}

func (m *Malformed) Error() string { return "malformed: " + m.Message }

func stack() string {
	var sbb strings.Builder
	debug.WriteStack(&sbb)
	return sbb.String()
}
