package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type TessParameters struct {
	Title              string    `yaml:"Title"`
	NC                 []int     `yaml:"NC"` // cells per axis, length sets the dimension
	DomainMin          []float64 `yaml:"DomainMin"`
	DomainMax          []float64 `yaml:"DomainMax"`
	ZeroBoundary       bool      `yaml:"ZeroBoundary"`
	VolumePreservation bool      `yaml:"VolumePreservation"`
}

func (tp *TessParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, tp)
}

func (tp *TessParameters) NDim() int { return len(tp.NC) }

// Validate mirrors the fatal construction checks of the tesselation
// constructors, reported as an error so the CLI can print usage instead
// of a panic trace
func (tp *TessParameters) Validate() error {
	ndim := tp.NDim()
	if ndim < 1 || ndim > 3 {
		return fmt.Errorf("NC must list 1, 2 or 3 axis cell counts, got %d", ndim)
	}
	if len(tp.DomainMin) != ndim || len(tp.DomainMax) != ndim {
		return fmt.Errorf("DomainMin/DomainMax must each have %d entries, got %d/%d",
			ndim, len(tp.DomainMin), len(tp.DomainMax))
	}
	for i, n := range tp.NC {
		if n <= 0 {
			return fmt.Errorf("NC[%d] must be positive, got %d", i, n)
		}
	}
	for i := range tp.DomainMin {
		if tp.DomainMin[i] >= tp.DomainMax[i] {
			return fmt.Errorf("DomainMin[%d] must be below DomainMax[%d], got [%v,%v]",
				i, i, tp.DomainMin[i], tp.DomainMax[i])
		}
	}
	if ndim == 3 && !tp.ZeroBoundary {
		return fmt.Errorf("3D tesselation requires ZeroBoundary")
	}
	return nil
}

func (tp *TessParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", tp.Title)
	fmt.Printf("%v\t\t= NC\n", tp.NC)
	fmt.Printf("%v\t\t= DomainMin\n", tp.DomainMin)
	fmt.Printf("%v\t\t= DomainMax\n", tp.DomainMax)
	fmt.Printf("[%v]\t\t= ZeroBoundary\n", tp.ZeroBoundary)
	fmt.Printf("[%v]\t\t= VolumePreservation\n", tp.VolumePreservation)
}
