package cmd

import (
	"fmt"

	"github.com/notargets/gocpab/InputParameters"
	"github.com/notargets/gocpab/tesselation"
	"github.com/spf13/cobra"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "Tesselate an interval and build its constraint matrix",
	Long: `
Divides [xmin,xmax] into equal cells, one affine map per cell, and builds
the continuity / zero-boundary / trace-zero constraint matrix,

gocpab 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("1D called")
		k, _ := cmd.Flags().GetInt("k")
		xmin, _ := cmd.Flags().GetFloat64("xmin")
		xmax, _ := cmd.Flags().GetFloat64("xmax")
		zb, _ := cmd.Flags().GetBool("zeroBoundary")
		vp, _ := cmd.Flags().GetBool("volumePreservation")
		show, _ := cmd.Flags().GetBool("showMatrix")
		tp := processInput(cmd, &InputParameters.TessParameters{
			NC:                 []int{k},
			DomainMin:          []float64{xmin},
			DomainMax:          []float64{xmax},
			ZeroBoundary:       zb,
			VolumePreservation: vp,
		})
		tess := tesselation.NewTesselation1D(tp.NC, tp.DomainMin, tp.DomainMax,
			tp.ZeroBoundary, tp.VolumePreservation)
		printSummary(&tess.Tesselation, show)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().IntP("k", "k", 5, "Number of cells")
	OneDCmd.Flags().Float64("xmin", 0, "Domain lower bound")
	OneDCmd.Flags().Float64("xmax", 1, "Domain upper bound")
	addCommonFlags(OneDCmd)
}
