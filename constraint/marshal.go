package constraint

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/fxamacker/cbor/v2"
)

// MatrixTerm is one coefficient of a constraint matrix row. Wire indexes the
// full witness vector: column 0 is the one wire, columns [1, NumPublic) the
// remaining public wires, and columns [NumPublic, NumPublic+NumPrivate) the
// private wires.
type MatrixTerm struct {
	Wire  uint64 `cbor:"w"`
	Coeff []byte `cbor:"c"`
}

// Matrices is a serializable snapshot of a System in sparse matrix form,
// suitable for handing off to a proving backend.
type Matrices struct {
	NumPublic  uint64         `cbor:"np"`
	NumPrivate uint64         `cbor:"ns"`
	A          [][]MatrixTerm `cbor:"a"`
	B          [][]MatrixTerm `cbor:"b"`
	C          [][]MatrixTerm `cbor:"c"`
}

// Matrices returns the sparse matrix snapshot of the system. The constant
// part of each combination becomes a coefficient on the one wire.
func (s *System) Matrices() *Matrices {
	m := &Matrices{
		NumPublic:  uint64(len(s.public)),
		NumPrivate: uint64(len(s.private)),
		A:          make([][]MatrixTerm, len(s.constraints)),
		B:          make([][]MatrixTerm, len(s.constraints)),
		C:          make([][]MatrixTerm, len(s.constraints)),
	}
	for i := range s.constraints {
		m.A[i] = s.row(s.constraints[i].A)
		m.B[i] = s.row(s.constraints[i].B)
		m.C[i] = s.row(s.constraints[i].C)
	}
	return m
}

func (s *System) row(lc *LinearCombination) []MatrixTerm {
	row := make([]MatrixTerm, 0, len(lc.terms)+1)
	if !lc.constant.IsZero() {
		row = append(row, MatrixTerm{Wire: 0, Coeff: lc.constant.Marshal()})
	}
	for i := range lc.terms {
		t := &lc.terms[i]
		col := t.variable.index
		if t.variable.mode == ModePrivate {
			col += uint64(len(s.public))
		}
		row = append(row, MatrixTerm{Wire: col, Coeff: t.coeff.Marshal()})
	}
	return row
}

var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// WriteTo encodes the matrices in deterministic CBOR.
func (m *Matrices) WriteTo(w io.Writer) error {
	return cborEnc.NewEncoder(w).Encode(m)
}

// ReadMatrices decodes matrices previously written with WriteTo.
func ReadMatrices(r io.Reader) (*Matrices, error) {
	var m Matrices
	if err := cbor.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// FullWitness returns the witness vector in matrix column order, starting
// with the one wire.
func (s *System) FullWitness() []fr.Element {
	w := make([]fr.Element, 0, len(s.public)+len(s.private))
	w = append(w, s.public...)
	w = append(w, s.private...)
	return w
}
