package cmd

import (
	"fmt"

	"github.com/notargets/gocpab/InputParameters"
	"github.com/notargets/gocpab/tesselation"
	"github.com/spf13/cobra"
)

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Tesselate a box into sub-cells and build its constraint matrix",
	Long: `Tesselate a box into sub-cells and build its constraint matrix.
3D supports the zero-boundary configuration only`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("3D called")
		kx, _ := cmd.Flags().GetInt("kx")
		ky, _ := cmd.Flags().GetInt("ky")
		kz, _ := cmd.Flags().GetInt("kz")
		xmin, _ := cmd.Flags().GetFloat64("xmin")
		xmax, _ := cmd.Flags().GetFloat64("xmax")
		ymin, _ := cmd.Flags().GetFloat64("ymin")
		ymax, _ := cmd.Flags().GetFloat64("ymax")
		zmin, _ := cmd.Flags().GetFloat64("zmin")
		zmax, _ := cmd.Flags().GetFloat64("zmax")
		zb, _ := cmd.Flags().GetBool("zeroBoundary")
		vp, _ := cmd.Flags().GetBool("volumePreservation")
		show, _ := cmd.Flags().GetBool("showMatrix")
		tp := processInput(cmd, &InputParameters.TessParameters{
			NC:                 []int{kx, ky, kz},
			DomainMin:          []float64{xmin, ymin, zmin},
			DomainMax:          []float64{xmax, ymax, zmax},
			ZeroBoundary:       zb,
			VolumePreservation: vp,
		})
		tess := tesselation.NewTesselation3D(tp.NC, tp.DomainMin, tp.DomainMax,
			tp.ZeroBoundary, tp.VolumePreservation)
		printSummary(&tess.Tesselation, show)
	},
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	ThreeDCmd.Flags().IntP("kx", "x", 2, "Number of cells along X")
	ThreeDCmd.Flags().IntP("ky", "y", 2, "Number of cells along Y")
	ThreeDCmd.Flags().IntP("kz", "c", 2, "Number of cells along Z")
	ThreeDCmd.Flags().Float64("xmin", 0, "Domain lower bound, X axis")
	ThreeDCmd.Flags().Float64("xmax", 1, "Domain upper bound, X axis")
	ThreeDCmd.Flags().Float64("ymin", 0, "Domain lower bound, Y axis")
	ThreeDCmd.Flags().Float64("ymax", 1, "Domain upper bound, Y axis")
	ThreeDCmd.Flags().Float64("zmin", 0, "Domain lower bound, Z axis")
	ThreeDCmd.Flags().Float64("zmax", 1, "Domain upper bound, Z axis")
	addCommonFlags(ThreeDCmd)
}
