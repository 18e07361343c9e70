package tesselation

import (
	"github.com/notargets/gocpab/utils"
)

// Tesselation1D divides an interval into equal cells, each cell one
// simplex with an affine map of 2 parameters
type Tesselation1D struct {
	Tesselation
	VX utils.Vector // nc+1 axis breakpoints
}

func NewTesselation1D(nc []int, domainMin, domainMax []float64, zeroBoundary, volumePreservation bool) (tess *Tesselation1D) {
	validateConfig(1, nc, domainMin, domainMax)
	tess = &Tesselation1D{
		Tesselation: Tesselation{
			NC:                 nc,
			DomainMin:          domainMin,
			DomainMax:          domainMax,
			ZeroBoundary:       zeroBoundary,
			VolumePreservation: volumePreservation,
			NDim:               1,
			NParams:            2,
			NCells:             nc[0],
		},
	}
	tess.build(tess)
	return
}

func (tess *Tesselation1D) FindVerts() {
	tess.VX = utils.NewLinspace(tess.DomainMin[0], tess.DomainMax[0], tess.NC[0]+1)
	tess.Verts = make([][]Vertex, 0, tess.NCells)
	tess.Cells = make([]utils.Index, 0, tess.NCells)
	for i := 0; i < tess.NC[0]; i++ {
		tess.Verts = append(tess.Verts, []Vertex{
			{tess.VX.AtVec(i), 1},
			{tess.VX.AtVec(i + 1), 1},
		})
		tess.Cells = append(tess.Cells, utils.Index{i})
	}
}

// FindVertsOutside is a no-op: 1D needs no auxiliary vertices, interval
// continuity at the two boundary cells already determines the boundary
// behavior
func (tess *Tesselation1D) FindVertsOutside() {}

func (tess *Tesselation1D) CreateContinuityConstraints() utils.Matrix {
	return tess.continuityConstraints()
}

// CreateZeroBoundaryConstraints pins the velocity at the two domain
// endpoints: the first simplex's map at domain min, the last simplex's at
// domain max
func (tess *Tesselation1D) CreateZeroBoundaryConstraints() (R utils.Matrix) {
	R = utils.NewMatrix(2, 2*tess.NCells)
	R.Set(0, 0, tess.DomainMin[0])
	R.Set(0, 1, 1)
	R.Set(1, 2*tess.NCells-2, tess.DomainMax[0])
	R.Set(1, 2*tess.NCells-1, 1)
	return
}
