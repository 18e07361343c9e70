package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/notargets/gocpab/InputParameters"
	"github.com/notargets/gocpab/tesselation"
	"github.com/notargets/gocpab/utils"
	"github.com/spf13/cobra"
)

// processInput reads the YAML parameter file when one is given, otherwise
// falls back to the supplied flag-built parameters, and validates either
// way
func processInput(cmd *cobra.Command, fromFlags *InputParameters.TessParameters) (tp *InputParameters.TessParameters) {
	var (
		err       error
		paramFile string
	)
	if paramFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
		panic(err)
	}
	tp = fromFlags
	if len(paramFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(paramFile); err != nil {
			panic(err)
		}
		tp = &InputParameters.TessParameters{}
		if err = tp.Parse(data); err != nil {
			panic(err)
		}
	}
	if err = tp.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Unit Square"
NC: [2, 2]
DomainMin: [0, 0]
DomainMax: [1, 1]
ZeroBoundary: true
VolumePreservation: false
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	tp.Print()
	return
}

func addCommonFlags(c *cobra.Command) {
	c.Flags().StringP("inputParametersFile", "I", "", "YAML file with NC, DomainMin, DomainMax and the constraint flags")
	c.Flags().BoolP("zeroBoundary", "z", true, "velocity is zero on the domain boundary")
	c.Flags().BoolP("volumePreservation", "p", false, "constrain the field to be volume preserving (trace free)")
	c.Flags().BoolP("showMatrix", "s", false, "print the full constraint matrix")
}

func printSummary(tess *tesselation.Tesselation, show bool) {
	var (
		L      = tess.GetConstraintMatrix()
		nr, nc = L.Dims()
	)
	fmt.Printf("nC = %d simplices, n_params = %d per simplex\n", tess.NCells, tess.NParams)
	fmt.Printf("%d adjacency pairs\n", len(tess.SharedVIdx))
	fmt.Printf("L is %d constraints x %d parameters\n", nr, nc)
	if !L.IsEmpty() {
		_, nullity := utils.NullSpace(L, 0)
		fmt.Printf("admissible parameter space dimension d = %d\n", nullity)
	}
	if show {
		fmt.Print(L.Print("L"))
		fmt.Print(tess.GetCellCenters().Print("cell centers"))
	}
}
