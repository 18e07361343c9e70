package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// IsEmpty reports a zero-value Matrix, used for constraint blocks that
// legitimately contain no rows (e.g. continuity on a single-cell axis)
func (m Matrix) IsEmpty() bool { return m.M == nil }

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int) {
	if m.IsEmpty() {
		return 0, 0
	}
	return m.M.Dims()
}
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64 {
	if m.IsEmpty() {
		return nil
	}
	return m.M.RawMatrix().Data
}

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	if m.IsEmpty() {
		return
	}
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Col(j int) (V Vector) {
	var (
		nr, _ = m.Dims()
		data  = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		data[i] = m.At(i, j)
	}
	V = NewVector(nr, data)
	return
}

func (m Matrix) Row(i int) (V Vector) {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	copy(data, m.M.RawRowView(i))
	V = NewVector(nc, data)
	return
}

// StackRows concatenates A below the receiver; either side may be empty
func (m Matrix) StackRows(A Matrix) (R Matrix) {
	switch {
	case m.IsEmpty():
		return A
	case A.IsEmpty():
		return m
	}
	var (
		nrM, ncM = m.Dims()
		nrA, ncA = A.Dims()
	)
	if ncM != ncA {
		err := fmt.Errorf("mismatched column counts in StackRows: %v vs %v\n", ncM, ncA)
		panic(err)
	}
	R = NewMatrix(nrM+nrA, ncM)
	R.M.Stack(m.M, A.M)
	return
}

func (m Matrix) Print(msgI ...string) (o string) {
	var msg string
	if len(msgI) != 0 {
		msg = msgI[0]
	}
	if m.IsEmpty() {
		o = fmt.Sprintf("%s = [empty]\n", msg)
		return
	}
	o = fmt.Sprintf("%s = \n%8.5f\n", msg, mat.Formatted(m.M, mat.Squeeze()))
	return
}
