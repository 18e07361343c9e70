package tesselation

import (
	"github.com/notargets/gocpab/utils"
)

// auxOffset displaces the synthesized ghost vertex of a virtual boundary
// pair along the axis perpendicular to the domain edge. Any sentinel
// large enough to miss every real vertex works; only inequality matters.
const auxOffset = 10.

// Tesselation2D splits each grid cell into 4 triangles fanned from the
// cell centroid. Sub-triangle order is (center,ul,ur), (center,ur,lr),
// (center,lr,ll), (center,ll,ul) and is load bearing: the virtual
// boundary pairing and the boundary row assembly identify edge-facing
// triangles by sub-index.
type Tesselation2D struct {
	Tesselation
	VX, VY utils.Vector
}

func NewTesselation2D(nc []int, domainMin, domainMax []float64, zeroBoundary, volumePreservation bool) (tess *Tesselation2D) {
	validateConfig(2, nc, domainMin, domainMax)
	tess = &Tesselation2D{
		Tesselation: Tesselation{
			NC:                 nc,
			DomainMin:          domainMin,
			DomainMax:          domainMax,
			ZeroBoundary:       zeroBoundary,
			VolumePreservation: volumePreservation,
			NDim:               2,
			NParams:            6,
			NCells:             4 * nc[0] * nc[1],
		},
	}
	tess.build(tess)
	return
}

func (tess *Tesselation2D) FindVerts() {
	tess.VX = utils.NewLinspace(tess.DomainMin[0], tess.DomainMax[0], tess.NC[0]+1)
	tess.VY = utils.NewLinspace(tess.DomainMin[1], tess.DomainMax[1], tess.NC[1]+1)
	tess.Verts = make([][]Vertex, 0, tess.NCells)
	tess.Cells = make([]utils.Index, 0, tess.NCells)
	for i := 0; i < tess.NC[1]; i++ {
		for j := 0; j < tess.NC[0]; j++ {
			var (
				ul     = Vertex{tess.VX.AtVec(j), tess.VY.AtVec(i), 1}
				ur     = Vertex{tess.VX.AtVec(j + 1), tess.VY.AtVec(i), 1}
				ll     = Vertex{tess.VX.AtVec(j), tess.VY.AtVec(i + 1), 1}
				lr     = Vertex{tess.VX.AtVec(j + 1), tess.VY.AtVec(i + 1), 1}
				center = Vertex{
					(tess.VX.AtVec(j) + tess.VX.AtVec(j+1)) / 2,
					(tess.VY.AtVec(i) + tess.VY.AtVec(i+1)) / 2,
					1,
				}
			)
			tess.Verts = append(tess.Verts,
				[]Vertex{center, ul, ur},
				[]Vertex{center, ur, lr},
				[]Vertex{center, lr, ll},
				[]Vertex{center, ll, ul},
			)
			for sub := 0; sub < 4; sub++ {
				tess.Cells = append(tess.Cells, utils.Index{j, i, sub})
			}
		}
	}
}

// FindVertsOutside synthesizes virtual adjacency pairs along the four
// outer grid edges so that boundary behavior of edge-adjacent triangles
// stays tied when the field is allowed to be non-zero there. Two
// edge-facing triangles in adjacent cells of the same boundary row or
// column share exactly one vertex; a ghost vertex offset along the
// perpendicular axis supplies the second point of the continuity rows.
func (tess *Tesselation2D) FindVertsOutside() {
	var (
		ncx = tess.NC[0]
		ncy = tess.NC[1]
	)
	for i := 0; i < tess.NCells; i++ {
		for j := i + 1; j < tess.NCells; j++ {
			var (
				mi, mj = tess.Cells[i], tess.Cells[j]
				left   = mi[0] == 0 && mj[0] == 0 &&
					mi[2] == 3 && mj[2] == 3 && absInt(mi[1]-mj[1]) == 1
				right = mi[0] == ncx-1 && mj[0] == ncx-1 &&
					mi[2] == 1 && mj[2] == 1 && absInt(mi[1]-mj[1]) == 1
				top = mi[1] == 0 && mj[1] == 0 &&
					mi[2] == 0 && mj[2] == 0 && absInt(mi[0]-mj[0]) == 1
				bottom = mi[1] == ncy-1 && mj[1] == ncy-1 &&
					mi[2] == 2 && mj[2] == 2 && absInt(mi[0]-mj[0]) == 1
			)
			if !(left || right || top || bottom) {
				continue
			}
			shared := intersectVerts(tess.Verts[i], tess.Verts[j])
			if len(shared) != 1 {
				continue
			}
			aux := shared[0].Copy()
			switch {
			case left || right:
				aux[0] -= auxOffset
			case top || bottom:
				aux[1] -= auxOffset
			default:
				panic("impossible boundary pair classification")
			}
			tess.SharedV = append(tess.SharedV, []Vertex{shared[0], aux})
			tess.SharedVIdx = append(tess.SharedVIdx, [2]int{i, j})
		}
	}
}

func (tess *Tesselation2D) CreateContinuityConstraints() utils.Matrix {
	return tess.continuityConstraints()
}

// CreateZeroBoundaryConstraints emits one row per boundary-touching
// vertex per touched axis: a vertex on an x extreme pins the y component
// there, a vertex on a y extreme pins the x component
func (tess *Tesselation2D) CreateZeroBoundaryConstraints() (R utils.Matrix) {
	var (
		xmin, ymin = tess.DomainMin[0], tess.DomainMin[1]
		xmax, ymax = tess.DomainMax[0], tess.DomainMax[1]
		rows       int
	)
	for _, verts := range tess.Verts {
		for _, v := range verts {
			if v[0] == xmin || v[0] == xmax {
				rows++
			}
			if v[1] == ymin || v[1] == ymax {
				rows++
			}
		}
	}
	D := utils.NewDOK(rows, 6*tess.NCells)
	var r int
	for c, verts := range tess.Verts {
		for _, v := range verts {
			if v[0] == xmin || v[0] == xmax {
				for m := 0; m < 3; m++ {
					D.Set(r, 6*c+3+m, v[m])
				}
				r++
			}
			if v[1] == ymin || v[1] == ymax {
				for m := 0; m < 3; m++ {
					D.Set(r, 6*c+m, v[m])
				}
				r++
			}
		}
	}
	R = D.ToDense()
	return
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
