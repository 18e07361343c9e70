package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)        { return m.M.Dims() }
func (m DOK) At(i, j int) float64     { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix           { return m.M.T() }
func (m DOK) Set(i, j int, v float64) { m.M.Set(i, j, v) }

func (m DOK) ToCSR() *sparse.CSR { return m.M.ToCSR() }

func (m DOK) ToDense() (R Matrix) {
	R = Matrix{m.M.ToDense()}
	return
}
