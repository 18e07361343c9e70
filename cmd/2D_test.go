package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gocpab/InputParameters"
)

func TestTessParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Unit Square
NC: [2, 2]
DomainMin: [0, 0]
DomainMax: [1, 1]
ZeroBoundary: false
VolumePreservation: true
`)
	var input InputParameters.TessParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.NC, []int{2, 2})
	assert.Equal(t, input.DomainMin, []float64{0, 0})
	assert.Equal(t, input.DomainMax, []float64{1, 1})
	assert.Equal(t, input.ZeroBoundary, false)
	assert.Equal(t, input.VolumePreservation, true)
	assert.Equal(t, input.NDim(), 2)
	input.Print()
	if err = input.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	// 3D requires a zero boundary
	input.NC = []int{2, 2, 2}
	input.DomainMin = []float64{0, 0, 0}
	input.DomainMax = []float64{1, 1, 1}
	if err = input.Validate(); err == nil {
		t.Errorf("expected validation to reject free-boundary 3D")
	}
}
