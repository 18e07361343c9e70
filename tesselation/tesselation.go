package tesselation

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gocpab/utils"
)

/*
Tesselation of a rectangular domain into simplices for CPAB velocity
fields. Each simplex carries an affine map with NParams = NDim*(NDim+1)
parameters; the constraint matrix L is built so that its null space is
exactly the set of parameter vectors producing a velocity field that is
continuous across simplex boundaries, optionally zero on the domain
boundary and optionally volume preserving (trace free).
*/

// Vertex is a point in homogeneous coordinates: NDim spatial values
// followed by a constant 1. Vertices compare exactly, not by tolerance;
// the decomposition computes shared coordinates once per axis so this is
// well defined.
type Vertex []float64

func (v Vertex) Equals(w Vertex) bool {
	if len(v) != len(w) {
		return false
	}
	for i, val := range v {
		if w[i] != val {
			return false
		}
	}
	return true
}

func (v Vertex) Copy() (r Vertex) {
	r = make(Vertex, len(v))
	copy(r, v)
	return
}

// key encodes the exact bit pattern, usable as a dedup map key
func (v Vertex) key() string {
	b := make([]byte, 8*len(v))
	for i, val := range v {
		binary.LittleEndian.PutUint64(b[8*i:], math.Float64bits(val))
	}
	return string(b)
}

type Tesselation struct {
	NC                 []int     // cells per axis
	DomainMin          []float64 // per axis lower bound
	DomainMax          []float64 // per axis upper bound
	ZeroBoundary       bool      // velocity is zero on the domain boundary
	VolumePreservation bool      // affine maps are trace free

	NDim    int // spatial dimension: 1, 2 or 3
	NParams int // affine parameters per simplex, NDim*(NDim+1)
	NCells  int // total simplex count

	Verts [][]Vertex    // NCells tuples of NDim+1 vertices, order fixed by the decomposition
	Cells []utils.Index // per simplex multi-index: axis cell indices then sub-index

	SharedV    [][]Vertex // per adjacency pair, the shared vertex set
	SharedVIdx [][2]int   // (i,j), i<j, in discovery order

	L utils.Matrix // constraint matrix, one block of NParams columns per simplex
}

// tesselator is the per-dimension capability set; everything else is
// implemented once on the embedded Tesselation.
type tesselator interface {
	FindVerts()
	FindVertsOutside()
	CreateContinuityConstraints() utils.Matrix
	CreateZeroBoundaryConstraints() utils.Matrix
}

// build runs the fixed construction pipeline. It is invoked exactly once
// per instance by the dimension constructors; nothing is mutated after it
// returns.
func (tess *Tesselation) build(t tesselator) {
	t.FindVerts()
	tess.FindSharedVerts()
	if !tess.ZeroBoundary {
		t.FindVertsOutside()
	}
	tess.L = t.CreateContinuityConstraints()
	if tess.ZeroBoundary {
		tess.L = tess.L.StackRows(t.CreateZeroBoundaryConstraints())
	}
	if tess.VolumePreservation {
		tess.L = tess.L.StackRows(tess.CreateZeroTraceConstraints())
	}
}

func validateConfig(ndim int, nc []int, domainMin, domainMax []float64) {
	if len(nc) != ndim {
		panic(fmt.Errorf("need %d cell counts for a %dD tesselation, got %d", ndim, ndim, len(nc)))
	}
	if len(domainMin) != ndim || len(domainMax) != ndim {
		panic(fmt.Errorf("need %d domain bounds for a %dD tesselation, got %d min / %d max",
			ndim, ndim, len(domainMin), len(domainMax)))
	}
	for i, n := range nc {
		if n <= 0 {
			panic(fmt.Errorf("cell count must be positive, axis %d has %d", i, n))
		}
	}
	for i := range domainMin {
		if domainMin[i] >= domainMax[i] {
			panic(fmt.Errorf("domain min must be below max, axis %d has [%v,%v]",
				i, domainMin[i], domainMax[i]))
		}
	}
}

// GetConstraintMatrix returns L. The matrix is immutable once built.
func (tess *Tesselation) GetConstraintMatrix() utils.Matrix { return tess.L }

// GetCellCenters returns the NCells x NDim matrix of simplex centroids
// (mean of each simplex's vertices, spatial part only)
func (tess *Tesselation) GetCellCenters() (R utils.Matrix) {
	R = utils.NewMatrix(tess.NCells, tess.NDim)
	for c, verts := range tess.Verts {
		for k := 0; k < tess.NDim; k++ {
			var sum float64
			for _, v := range verts {
				sum += v[k]
			}
			R.Set(c, k, sum/float64(len(verts)))
		}
	}
	return
}

// FindSharedVerts records every unordered simplex pair sharing exactly
// NDim vertices (an interior facet) using the brute-force reference scan
func (tess *Tesselation) FindSharedVerts() {
	tess.SharedVIdx, tess.SharedV = tess.SharedVertsBrute()
}

// SharedVertsBrute is the reference adjacency scan. It is quadratic in
// simplex count by design; SharedVertsFast is the accelerated equivalent.
func (tess *Tesselation) SharedVertsBrute() (pairs [][2]int, shared [][]Vertex) {
	for i := 0; i < tess.NCells; i++ {
		for j := i + 1; j < tess.NCells; j++ {
			sv := intersectVerts(tess.Verts[i], tess.Verts[j])
			if len(sv) == tess.NDim {
				pairs = append(pairs, [2]int{i, j})
				shared = append(shared, sv)
			}
		}
	}
	return
}

// SharedVertsFast finds the same facet adjacencies through a sparse
// simplex-to-vertex incidence product: entry (i,j) of S*S^T counts the
// vertices simplices i and j share. Output order matches the brute-force
// scan.
func (tess *Tesselation) SharedVertsFast() (pairs [][2]int, shared [][]Vertex) {
	var (
		ids    = make(map[string]int)
		nVerts int
	)
	for _, verts := range tess.Verts {
		for _, v := range verts {
			if _, ok := ids[v.key()]; !ok {
				ids[v.key()] = nVerts
				nVerts++
			}
		}
	}
	SpCToV := sparse.NewDOK(tess.NCells, nVerts)
	for c, verts := range tess.Verts {
		for _, v := range verts {
			SpCToV.Set(c, ids[v.key()], 1)
		}
	}
	SpCToC := sparse.NewCSR(tess.NCells, tess.NCells, nil, nil, nil)
	S := SpCToV.ToCSR()
	SpCToC.Mul(S, S.T())
	SpCToC.DoNonZero(func(i, j int, v float64) {
		if i < j && int(v) == tess.NDim {
			pairs = append(pairs, [2]int{i, j})
		}
	})
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}
		return pairs[a][1] < pairs[b][1]
	})
	for _, p := range pairs {
		shared = append(shared, intersectVerts(tess.Verts[p[0]], tess.Verts[p[1]]))
	}
	return
}

// intersectVerts returns the exact-equality vertex intersection, ordered
// as the vertices appear in a
func intersectVerts(a, b []Vertex) (shared []Vertex) {
	for _, va := range a {
		for _, vb := range b {
			if va.Equals(vb) {
				shared = append(shared, va)
				break
			}
		}
	}
	return
}

// continuityConstraints emits the shared continuity rows: for each
// recorded pair (i,j), shared vertex v and output dimension k, one row
// with +v in simplex i's k-th parameter block and -v in simplex j's.
// Dimension variants delegate here from CreateContinuityConstraints.
func (tess *Tesselation) continuityConstraints() (R utils.Matrix) {
	if len(tess.SharedVIdx) == 0 {
		return
	}
	var (
		d    = tess.NDim
		np   = tess.NParams
		rows int
	)
	for _, sv := range tess.SharedV {
		rows += d * len(sv)
	}
	D := utils.NewDOK(rows, np*tess.NCells)
	var r int
	for idx, p := range tess.SharedVIdx {
		i, j := p[0], p[1]
		for _, v := range tess.SharedV[idx] {
			for k := 0; k < d; k++ {
				for m := 0; m <= d; m++ {
					if v[m] != 0 {
						D.Set(r, np*i+k*(d+1)+m, v[m])
						D.Set(r, np*j+k*(d+1)+m, -v[m])
					}
				}
				r++
			}
		}
	}
	R = D.ToDense()
	return
}

// CreateZeroTraceConstraints builds the volume preservation rows: one row
// per simplex placing the flattened NDim x NDim identity over the linear
// part of that simplex's block, forcing its trace to zero. Dimension
// generic.
func (tess *Tesselation) CreateZeroTraceConstraints() (R utils.Matrix) {
	var (
		d  = tess.NDim
		np = tess.NParams
	)
	R = utils.NewMatrix(tess.NCells, np*tess.NCells)
	for c := 0; c < tess.NCells; c++ {
		for k := 0; k < d; k++ {
			R.Set(c, np*c+k*(d+1)+k, 1)
		}
	}
	return
}

// affineValue applies output dimension k of simplex c's affine map, taken
// from the packed parameter vector theta, to homogeneous vertex v
func (tess *Tesselation) affineValue(theta []float64, c, k int, v Vertex) (val float64) {
	base := c*tess.NParams + k*(tess.NDim+1)
	for m := 0; m <= tess.NDim; m++ {
		val += theta[base+m] * v[m]
	}
	return
}
