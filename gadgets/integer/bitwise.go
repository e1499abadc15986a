package integer

import "github.com/consensys/circuitry/gadgets/boolean"

// And returns the bitwise AND of x and y.
func (x Int[P]) And(y Int[P]) Int[P] {
	bits := make([]boolean.Bit, width[P]())
	for i := range bits {
		bits[i] = x.bits[i].And(y.bits[i])
	}
	return Int[P]{s: x.s, bits: bits}
}

// Or returns the bitwise OR of x and y.
func (x Int[P]) Or(y Int[P]) Int[P] {
	bits := make([]boolean.Bit, width[P]())
	for i := range bits {
		bits[i] = x.bits[i].Or(y.bits[i])
	}
	return Int[P]{s: x.s, bits: bits}
}

// Xor returns the bitwise XOR of x and y.
func (x Int[P]) Xor(y Int[P]) Int[P] {
	bits := make([]boolean.Bit, width[P]())
	for i := range bits {
		bits[i] = x.bits[i].Xor(y.bits[i])
	}
	return Int[P]{s: x.s, bits: bits}
}

// Not returns the bitwise complement of x, for free.
func (x Int[P]) Not() Int[P] {
	bits := make([]boolean.Bit, width[P]())
	for i := range bits {
		bits[i] = x.bits[i].Not()
	}
	return Int[P]{s: x.s, bits: bits}
}
