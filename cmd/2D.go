/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/notargets/gocpab/InputParameters"
	"github.com/notargets/gocpab/tesselation"
	"github.com/spf13/cobra"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Tesselate a rectangle into triangles and build its constraint matrix",
	Long:  `Tesselate a rectangle into triangles and build its constraint matrix`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		kx, _ := cmd.Flags().GetInt("kx")
		ky, _ := cmd.Flags().GetInt("ky")
		xmin, _ := cmd.Flags().GetFloat64("xmin")
		xmax, _ := cmd.Flags().GetFloat64("xmax")
		ymin, _ := cmd.Flags().GetFloat64("ymin")
		ymax, _ := cmd.Flags().GetFloat64("ymax")
		zb, _ := cmd.Flags().GetBool("zeroBoundary")
		vp, _ := cmd.Flags().GetBool("volumePreservation")
		show, _ := cmd.Flags().GetBool("showMatrix")
		tp := processInput(cmd, &InputParameters.TessParameters{
			NC:                 []int{kx, ky},
			DomainMin:          []float64{xmin, ymin},
			DomainMax:          []float64{xmax, ymax},
			ZeroBoundary:       zb,
			VolumePreservation: vp,
		})
		tess := tesselation.NewTesselation2D(tp.NC, tp.DomainMin, tp.DomainMax,
			tp.ZeroBoundary, tp.VolumePreservation)
		printSummary(&tess.Tesselation, show)
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().IntP("kx", "x", 2, "Number of cells along X")
	TwoDCmd.Flags().IntP("ky", "y", 2, "Number of cells along Y")
	TwoDCmd.Flags().Float64("xmin", 0, "Domain lower bound, X axis")
	TwoDCmd.Flags().Float64("xmax", 1, "Domain upper bound, X axis")
	TwoDCmd.Flags().Float64("ymin", 0, "Domain lower bound, Y axis")
	TwoDCmd.Flags().Float64("ymax", 1, "Domain upper bound, Y axis")
	addCommonFlags(TwoDCmd)
}
