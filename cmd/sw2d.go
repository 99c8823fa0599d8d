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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/goswe/InputParameters"
	"github.com/notargets/goswe/model_problems/ShallowWater2D"
	"github.com/notargets/goswe/writefiles"
)

type ModelSW2D struct {
	ICFile         string
	FinalTime      float64
	ParallelDegree int
	PlotSteps      int
	Verbose        bool
	Profile        bool
}

// SW2DCmd represents the SW2D command
var SW2DCmd = &cobra.Command{
	Use:   "SW2D",
	Short: "Two dimensional shallow water solver on structured blocks",
	Long:  `Two dimensional shallow water solver on structured blocks, reads a YAML input file and writes VTK or binary snapshots`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		msw := &ModelSW2D{}
		if msw.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		msw.FinalTime = viper.GetFloat64("finalTime")
		msw.ParallelDegree = viper.GetInt("parallelDegree")
		msw.PlotSteps = viper.GetInt("plotSteps")
		msw.Verbose = viper.GetBool("verbose")
		msw.Profile, _ = cmd.Flags().GetBool("profile")
		ip, err := processInputSW2D(msw)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if msw.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if err = RunSW2D(msw, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

const exampleSW2DFile = `
########################################
Title: "Dam Break"
NX: 200
NY: 20
DX: 0.05
FinalTime: 0.5
InitType: DamBreak # Can be RadialDamBreak, LakeAtRest or Still
HLeft: 2
HRight: 1
DamPosition: 5
BCs:
  left: Outflow
  right: Outflow
  bottom: Wall
  top: Wall
OutputFormat: vtk
PlotSteps: 50
########################################
`

// processInputSW2D reads the input file, command line values override the
// file when they are set.
func processInputSW2D(msw *ModelSW2D) (ip *InputParameters.InputParametersSW2D, err error) {
	if len(msw.ICFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleSW2DFile)
		return nil, fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
	}
	var data []byte
	if data, err = os.ReadFile(msw.ICFile); err != nil {
		return nil, fmt.Errorf("unable to read input file: %w", err)
	}
	ip = &InputParameters.InputParametersSW2D{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", msw.ICFile, err)
	}
	if msw.FinalTime > 0 {
		ip.FinalTime = msw.FinalTime
	}
	if msw.ParallelDegree > 0 {
		ip.ParallelDegree = msw.ParallelDegree
	}
	if msw.PlotSteps > 0 {
		ip.PlotSteps = msw.PlotSteps
	}
	return
}

func init() {
	rootCmd.AddCommand(SW2DCmd)
	SW2DCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- NX, NY, DX, DY\n\t- InitType\n\t- BCs")
	SW2DCmd.Flags().Float64P("finalTime", "t", 0, "override the final time of the input file")
	SW2DCmd.Flags().IntP("parallelDegree", "p", 0, "goroutines per block, 0 uses the input file or one per CPU")
	SW2DCmd.Flags().IntP("plotSteps", "s", 0, "number of steps between snapshots")
	SW2DCmd.Flags().BoolP("verbose", "v", true, "print progress")
	for _, name := range []string{"finalTime", "parallelDegree", "plotSteps", "verbose"} {
		if err := viper.BindPFlag(name, SW2DCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func RunSW2D(msw *ModelSW2D, ip *InputParameters.InputParametersSW2D) (err error) {
	var (
		c *ShallowWater2D.SW2D
	)
	if msw.Verbose {
		ip.Print()
	}
	if c, err = ShallowWater2D.NewSW2D(ip, ip.ParallelDegree, msw.Verbose); err != nil {
		return
	}
	if c.Output, err = writefiles.NewSnapshotWriter(ip.OutputDir, ip.OutputFormat, ip.Title, msw.Verbose); err != nil {
		return
	}
	return c.Solve()
}
