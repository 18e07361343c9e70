package tesselation

import (
	"fmt"

	"github.com/notargets/gocpab/utils"
)

// Tesselation3D splits each grid box into 6 tetrahedra sharing the box
// centroid, one pyramid-like slab through each pair of opposite box
// faces. The enumeration order of the 6 sub-tets is fixed; the boundary
// row index arithmetic below is derived from exactly this split and must
// be re-derived for any other decomposition.
type Tesselation3D struct {
	Tesselation
	VX, VY, VZ utils.Vector
}

func NewTesselation3D(nc []int, domainMin, domainMax []float64, zeroBoundary, volumePreservation bool) (tess *Tesselation3D) {
	validateConfig(3, nc, domainMin, domainMax)
	tess = &Tesselation3D{
		Tesselation: Tesselation{
			NC:                 nc,
			DomainMin:          domainMin,
			DomainMax:          domainMax,
			ZeroBoundary:       zeroBoundary,
			VolumePreservation: volumePreservation,
			NDim:               3,
			NParams:            12,
			NCells:             6 * nc[0] * nc[1] * nc[2],
		},
	}
	tess.build(tess)
	return
}

func (tess *Tesselation3D) FindVerts() {
	tess.VX = utils.NewLinspace(tess.DomainMin[0], tess.DomainMax[0], tess.NC[0]+1)
	tess.VY = utils.NewLinspace(tess.DomainMin[1], tess.DomainMax[1], tess.NC[1]+1)
	tess.VZ = utils.NewLinspace(tess.DomainMin[2], tess.DomainMax[2], tess.NC[2]+1)
	tess.Verts = make([][]Vertex, 0, tess.NCells)
	tess.Cells = make([]utils.Index, 0, tess.NCells)
	for i := 0; i < tess.NC[2]; i++ {
		for j := 0; j < tess.NC[1]; j++ {
			for k := 0; k < tess.NC[0]; k++ {
				// left/right select x, near/far select y, lower/upper select z
				var (
					cnt = Vertex{
						(tess.VX.AtVec(k) + tess.VX.AtVec(k+1)) / 2,
						(tess.VY.AtVec(j) + tess.VY.AtVec(j+1)) / 2,
						(tess.VZ.AtVec(i) + tess.VZ.AtVec(i+1)) / 2,
						1,
					}
					lnl = Vertex{tess.VX.AtVec(k), tess.VY.AtVec(j), tess.VZ.AtVec(i), 1}
					lnu = Vertex{tess.VX.AtVec(k), tess.VY.AtVec(j), tess.VZ.AtVec(i + 1), 1}
					lfl = Vertex{tess.VX.AtVec(k), tess.VY.AtVec(j + 1), tess.VZ.AtVec(i), 1}
					lfu = Vertex{tess.VX.AtVec(k), tess.VY.AtVec(j + 1), tess.VZ.AtVec(i + 1), 1}
					rnl = Vertex{tess.VX.AtVec(k + 1), tess.VY.AtVec(j), tess.VZ.AtVec(i), 1}
					rnu = Vertex{tess.VX.AtVec(k + 1), tess.VY.AtVec(j), tess.VZ.AtVec(i + 1), 1}
					rfl = Vertex{tess.VX.AtVec(k + 1), tess.VY.AtVec(j + 1), tess.VZ.AtVec(i), 1}
					rfu = Vertex{tess.VX.AtVec(k + 1), tess.VY.AtVec(j + 1), tess.VZ.AtVec(i + 1), 1}
				)
				tess.Verts = append(tess.Verts,
					[]Vertex{cnt, lnl, lnu, lfl, lfu},
					[]Vertex{cnt, lnl, lnu, rnl, rnu},
					[]Vertex{cnt, lnl, lfl, rnl, rnu},
					[]Vertex{cnt, rnl, rnu, rfl, rfu},
					[]Vertex{cnt, lfl, lfu, rfl, rfu},
					[]Vertex{cnt, lnu, lfu, rnu, rfu},
				)
				for sub := 0; sub < 6; sub++ {
					tess.Cells = append(tess.Cells, utils.Index{k, j, i, sub})
				}
			}
		}
	}
}

// FindVertsOutside is not implemented in 3D: a non-zero-boundary 3D
// configuration is unsupported and fails here rather than producing an
// underconstrained matrix
func (tess *Tesselation3D) FindVertsOutside() {
	panic(fmt.Errorf("3D tesselation does not support a non-zero boundary velocity"))
}

func (tess *Tesselation3D) CreateContinuityConstraints() utils.Matrix {
	return tess.continuityConstraints()
}

// CreateZeroBoundaryConstraints pins the normal velocity component at
// every grid point of the six domain faces. Each face grid point is
// attributed to the boundary-facing sub-tet of the adjacent box: sub-tets
// 2/3 face the z extremes, 1/4 the y extremes, 0/5 the x extremes. The
// index arithmetic assumes the 6-tets-per-box split of FindVerts.
func (tess *Tesselation3D) CreateZeroBoundaryConstraints() (R utils.Matrix) {
	var (
		nx, ny, nz = tess.NC[0], tess.NC[1], tess.NC[2]
		rows       = 2 * ((nx+1)*(ny+1) + (nx+1)*(nz+1) + (ny+1)*(nz+1))
		D          = utils.NewDOK(rows, 12*tess.NCells)
		sr         int
		put        = func(c, axis int, v Vertex) {
			for m := 0; m < 4; m++ {
				if v[m] != 0 {
					D.Set(sr, 12*c+4*axis+m, v[m])
				}
			}
			sr++
		}
	)
	// xy-planes at the z extremes
	for pass, i := range []int{0, nz - 1} {
		sub := 2
		z := tess.VZ.AtVec(0)
		if pass != 0 {
			sub = 3
			z = tess.VZ.AtVec(nz)
		}
		for j := 0; j < ny+1; j++ {
			for k := 0; k < nx+1; k++ {
				c := 6*(nx*ny*i+nx*minInt(j, ny-1)+minInt(k, nx-1)) + sub
				put(c, 2, Vertex{tess.VX.AtVec(k), tess.VY.AtVec(j), z, 1})
			}
		}
	}
	// xz-planes at the y extremes
	for pass, j := range []int{0, ny - 1} {
		sub := 1
		y := tess.VY.AtVec(0)
		if pass != 0 {
			sub = 4
			y = tess.VY.AtVec(ny)
		}
		for i := 0; i < nz+1; i++ {
			for k := 0; k < nx+1; k++ {
				c := 6*(nx*ny*minInt(i, nz-1)+nx*j+minInt(k, nx-1)) + sub
				put(c, 1, Vertex{tess.VX.AtVec(k), y, tess.VZ.AtVec(i), 1})
			}
		}
	}
	// yz-planes at the x extremes
	for pass, k := range []int{0, nx - 1} {
		sub := 0
		x := tess.VX.AtVec(0)
		if pass != 0 {
			sub = 5
			x = tess.VX.AtVec(nx)
		}
		for i := 0; i < nz+1; i++ {
			for j := 0; j < ny+1; j++ {
				c := 6*(nx*ny*minInt(i, nz-1)+nx*minInt(j, ny-1)+k) + sub
				put(c, 0, Vertex{x, tess.VY.AtVec(j), tess.VZ.AtVec(i), 1})
			}
		}
	}
	R = D.ToDense()
	return
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
