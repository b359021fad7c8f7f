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
	"io/ioutil"
	"os"

	"github.com/pkg/profile"

	"github.com/notargets/mesh2inp/InputParameters"
	"github.com/notargets/mesh2inp/readfiles"
	"github.com/notargets/mesh2inp/writefiles"

	"github.com/spf13/cobra"
)

type ModelConvert struct {
	MeshFile string
	NodeFile string
	ElemFile string
	DPFile   string
	Graph    bool
	Verbose  bool
	Profile  bool
}

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert <mesh-file> <node-output-file> <element-output-file>",
	Short: "Convert a mesh file to CalculiX/Abaqus input data",
	Long: `Convert a mesh file to CalculiX/Abaqus input data

Requires three file names:
  input mesh (.mesh)
  nodes and node sets file name (.inp)
  elements file name (.inp)`,
	Run: func(cmd *cobra.Command, args []string) {
		mc := &ModelConvert{}
		var err error
		if mc.DPFile, err = cmd.Flags().GetString("deckParametersFile"); err != nil {
			panic(err)
		}
		mc.Graph, _ = cmd.Flags().GetBool("graph")
		mc.Verbose, _ = cmd.Flags().GetBool("verbose")
		mc.Profile, _ = cmd.Flags().GetBool("profile")
		dp := processInput(mc, args)
		RunConvert(mc, dp)
	},
}

func processInput(mc *ModelConvert, args []string) (dp *InputParameters.DeckParameters) {
	var (
		err error
	)
	if len(args) < 3 {
		err = fmt.Errorf("mesh2inp requires three file names")
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	mc.MeshFile, mc.NodeFile, mc.ElemFile = args[0], args[1], args[2]
	dp = InputParameters.NewDeckParameters()
	if len(mc.DPFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mc.DPFile); err != nil {
			panic(err)
		}
		if err = dp.Parse(data); err != nil {
			panic(err)
		}
	}
	if mc.Verbose {
		dp.Print()
	}
	return
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	ConvertCmd.Flags().StringP("deckParametersFile", "I", "", "YAML file for deck parameters like:\n\t- Title\n\t- ElementType")
	ConvertCmd.Flags().BoolP("graph", "g", false, "display the mesh after conversion")
	ConvertCmd.Flags().BoolP("verbose", "v", false, "print mesh details while converting")
	ConvertCmd.Flags().Bool("profile", false, "write a CPU profile of the conversion")
}

func RunConvert(mc *ModelConvert, dp *InputParameters.DeckParameters) {
	if mc.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	fmt.Printf("reading mesh file %s\n", mc.MeshFile)
	VX, VY, VZ, elements, materials, bcEdges := readfiles.ReadNetgenMesh(mc.MeshFile, mc.Verbose)
	fmt.Printf("found %d points\n", VX.Len())
	fmt.Printf("found %d elements\n", len(elements))
	fmt.Printf("found %d surface node sets\n", len(materials))
	fmt.Printf("found %d edge node sets\n", len(bcEdges))
	writefiles.WriteNodes(mc.NodeFile, VX, VY, VZ, elements, materials, bcEdges, dp)
	writefiles.WriteElements(mc.ElemFile, elements, materials, dp)
	if mc.Graph {
		readfiles.PlotMesh(VX, VY, elements, true)
		fmt.Printf("press enter to exit...")
		fmt.Scanln()
	}
}
