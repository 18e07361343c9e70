package cmd

import (
	"fmt"
	"time"

	"github.com/notargets/gocpab/tesselation"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the brute-force and sparse-product adjacency scans",
	Long: `
Builds a square 2D tesselation and times the quadratic brute-force
adjacency scan against the sparse incidence-product variant. The two
must agree pair for pair; a mismatch is a defect`,
	Run: func(cmd *cobra.Command, args []string) {
		k, _ := cmd.Flags().GetInt("k")
		prof, _ := cmd.Flags().GetBool("cpuprofile")
		if prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		tess := tesselation.NewTesselation2D([]int{k, k},
			[]float64{0, 0}, []float64{1, 1}, true, false)
		fmt.Printf("nC = %d simplices\n", tess.NCells)

		start := time.Now()
		bPairs, _ := tess.SharedVertsBrute()
		bruteElapsed := time.Since(start)

		start = time.Now()
		fPairs, _ := tess.SharedVertsFast()
		fastElapsed := time.Since(start)

		if len(bPairs) != len(fPairs) {
			panic(fmt.Errorf("adjacency mismatch: brute %d pairs, fast %d pairs",
				len(bPairs), len(fPairs)))
		}
		for i := range bPairs {
			if bPairs[i] != fPairs[i] {
				panic(fmt.Errorf("adjacency mismatch at pair %d: %v vs %v",
					i, bPairs[i], fPairs[i]))
			}
		}
		fmt.Printf("%d pairs\n", len(bPairs))
		fmt.Printf("brute force: %v\n", bruteElapsed)
		fmt.Printf("sparse product: %v\n", fastElapsed)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("k", "k", 32, "Cells per axis of the square test grid")
	BenchCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the working directory")
}
