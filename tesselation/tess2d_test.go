package tesselation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTesselation2D(t *testing.T) {
	{
		// 2x2 grid, free boundary, volume preservation: 16 triangles,
		// 20 interior facet pairs, 4 virtual pairs along the outer edges
		tess := NewTesselation2D([]int{2, 2}, []float64{0, 0}, []float64{1, 1}, false, true)
		assert.Equal(t, 16, tess.NCells)
		assert.Equal(t, 6, tess.NParams)
		assert.Equal(t, 24, len(tess.SharedVIdx))
		nr, nc := tess.L.Dims()
		assert.Equal(t, 96, nc)
		assert.Equal(t, 4*24+16, nr)

		// virtual pairs carry a ghost vertex that is no simplex's vertex
		var nVirtual int
		for idx, p := range tess.SharedVIdx {
			assert.True(t, p[0] < p[1])
			assert.Equal(t, 2, len(tess.SharedV[idx]))
			ghost := tess.SharedV[idx][1]
			if len(intersectVerts([]Vertex{ghost}, tess.Verts[p[1]])) == 0 {
				nVirtual++
				// offset along exactly one axis
				rv := tess.SharedV[idx][0]
				dx, dy := rv[0]-ghost[0], rv[1]-ghost[1]
				assert.True(t, (dx == auxOffset && dy == 0) || (dx == 0 && dy == auxOffset))
			}
		}
		assert.Equal(t, 4, nVirtual)

		// trace rows occupy the last NCells rows
		for c := 0; c < tess.NCells; c++ {
			row := nr - tess.NCells + c
			assert.Equal(t, 1., tess.L.At(row, 6*c))
			assert.Equal(t, 1., tess.L.At(row, 6*c+4))
		}
	}
	{
		// free boundary without volume preservation: translations are
		// admissible, so the null space is non-trivial and continuity
		// holds at every shared vertex, ghosts included
		tess := NewTesselation2D([]int{2, 2}, []float64{0, 0}, []float64{1, 1}, false, false)
		checkNullSpaceContinuity(t, &tess.Tesselation, -1)
		_, nullity := nullSpaceOf(&tess.Tesselation)
		assert.True(t, nullity >= 2)
	}
}

func TestTesselation2DZeroBoundary(t *testing.T) {
	tess := NewTesselation2D([]int{2, 2}, []float64{0, 0}, []float64{1, 1}, true, false)
	checkNullSpaceContinuity(t, &tess.Tesselation, -1)
	theta, nullity := nullBasis(&tess.Tesselation)
	assert.True(t, nullity > 0)
	// a vertex on an x extreme has zero y component, a vertex on a y
	// extreme has zero x component
	for _, th := range theta {
		for c, verts := range tess.Verts {
			for _, v := range verts {
				if v[0] == 0 || v[0] == 1 {
					assert.True(t, nearZero(tess.affineValue(th, c, 1, v)))
				}
				if v[1] == 0 || v[1] == 1 {
					assert.True(t, nearZero(tess.affineValue(th, c, 0, v)))
				}
			}
		}
	}
}

func TestTesselation2DVolumePreservation(t *testing.T) {
	tess := NewTesselation2D([]int{2, 2}, []float64{0, 0}, []float64{1, 1}, false, true)
	theta, _ := nullBasis(&tess.Tesselation)
	for _, th := range theta {
		for c := 0; c < tess.NCells; c++ {
			trace := th[6*c] + th[6*c+4]
			assert.True(t, nearZero(trace))
		}
	}
}

func TestTesselation2DCellCenters(t *testing.T) {
	tess := NewTesselation2D([]int{1, 1}, []float64{0, 0}, []float64{1, 1}, true, false)
	C := tess.GetCellCenters()
	nr, nc := C.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 2, nc)
	// the upper triangle's centroid sits above the cell center
	assert.True(t, near(C.At(0, 0), 0.5))
	assert.True(t, C.At(0, 1) < 0.5)
	// the lower triangle's below
	assert.True(t, C.At(2, 1) > 0.5)
}

func TestTesselation2DDeterminism(t *testing.T) {
	a := NewTesselation2D([]int{3, 2}, []float64{0, 0}, []float64{2, 1}, false, true)
	b := NewTesselation2D([]int{3, 2}, []float64{0, 0}, []float64{2, 1}, false, true)
	assert.Equal(t, a.L.Data(), b.L.Data())
	assert.Equal(t, a.SharedVIdx, b.SharedVIdx)
}
