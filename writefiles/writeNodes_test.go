package writefiles

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/notargets/mesh2inp/InputParameters"
	"github.com/notargets/mesh2inp/types"
	"github.com/notargets/mesh2inp/utils"

	"github.com/stretchr/testify/assert"
)

func TestWriteNodes(t *testing.T) {
	var (
		VX = utils.NewVector(3, []float64{0, 1, 0})
		VY = utils.NewVector(3, []float64{0, 0, 1})
		VZ = utils.NewVector(3, []float64{0, 0, 0})
	)
	elements := []types.SurfaceElement{
		{Index: 1, BCNr: 1, Nodes: []int{1, 2, 3}},
	}
	materials := []types.Material{{ID: 1, Name: "steel"}}
	bcEdges := types.BCMAP{101: {2: {}, 3: {}}}
	dp := InputParameters.NewDeckParameters()

	name := filepath.Join(t.TempDir(), "nodes")
	WriteNodes(name, VX, VY, VZ, elements, materials, bcEdges, dp)

	// The .inp extension is appended when missing
	data, err := ioutil.ReadFile(name + ".inp")
	assert.NoError(t, err)
	assert.Equal(t, "**\n"+
		"** "+name+".inp\n"+
		"** Generated by mesh2inp.\n"+
		"**\n"+
		"*NODE,NSET=Nall\n"+
		"1, 0.00, 0.00, 0.00\n"+
		"2, 1.00, 0.00, 0.00\n"+
		"3, 0.00, 1.00, 0.00\n"+
		"*NSET,NSET=Nsteel\n"+
		"  1, 2, 3\n"+
		"*NSET,NSET=Nedge101\n"+
		"  2, 3\n", string(data))
}

func TestWriteNodesChunking(t *testing.T) {
	// 20 points referenced by one element: the set wraps after 16 ids
	var (
		n     = 20
		coord = make([]float64, n)
		nodes = make([]int, n)
	)
	for i := range nodes {
		coord[i] = float64(i)
		nodes[i] = n - i // reversed on purpose, output must sort ascending
	}
	VX := utils.NewVector(n, coord)
	VY := utils.NewVector(n)
	VZ := utils.NewVector(n)
	elements := []types.SurfaceElement{{Index: 1, BCNr: 7, Nodes: nodes}}
	materials := []types.Material{{ID: 7, Name: "alu"}}
	dp := InputParameters.NewDeckParameters()

	name := filepath.Join(t.TempDir(), "nodes.inp")
	WriteNodes(name, VX, VY, VZ, elements, materials, types.BCMAP{}, dp)

	data, err := ioutil.ReadFile(name)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "*NSET,NSET=Nalu\n"+
		"  1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16\n"+
		"  17, 18, 19, 20\n")
}

func TestWriteNodesIdempotence(t *testing.T) {
	var (
		VX = utils.NewVector(2, []float64{0, 1})
		VY = utils.NewVector(2)
		VZ = utils.NewVector(2)
	)
	elements := []types.SurfaceElement{{Index: 1, BCNr: 1, Nodes: []int{1, 2}}}
	materials := []types.Material{{ID: 1, Name: "steel"}}
	bcEdges := types.BCMAP{110: {1: {}, 2: {}}, 102: {2: {}}}
	dp := InputParameters.NewDeckParameters()

	name := filepath.Join(t.TempDir(), "nodes.inp")
	WriteNodes(name, VX, VY, VZ, elements, materials, bcEdges, dp)
	first, err := ioutil.ReadFile(name)
	assert.NoError(t, err)
	WriteNodes(name, VX, VY, VZ, elements, materials, bcEdges, dp)
	second, err := ioutil.ReadFile(name)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
