package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeSet(t *testing.T) {
	ns := make(NodeSet)
	ns.Add(5, 3, 5, 1)
	assert.Equal(t, 3, len(ns))
	assert.True(t, ns.Contains(3))
	assert.False(t, ns.Contains(4))
	assert.Equal(t, []int{1, 3, 5}, ns.Sorted())
}

func TestBCMAP(t *testing.T) {
	bm := make(BCMAP)
	bm.AddEdge(110, 1, 2)
	bm.AddEdge(110, 2, 3)
	bm.AddEdge(105, 7, 8)
	assert.Equal(t, []int{105, 110}, bm.Tags())
	assert.Equal(t, []int{1, 2, 3}, bm[110].Sorted())
	assert.Equal(t, []int{7, 8}, bm[105].Sorted())
}

func TestMaterialGrouping(t *testing.T) {
	elements := []SurfaceElement{
		{Index: 1, BCNr: 1, Nodes: []int{1, 2, 3}},
		{Index: 2, BCNr: 2, Nodes: []int{2, 3, 4}},
		{Index: 3, BCNr: 1, Nodes: []int{3, 4, 5}},
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, NodesOfMaterial(elements, 1).Sorted())
	assert.Equal(t, []int{2, 3, 4}, NodesOfMaterial(elements, 2).Sorted())
	assert.Equal(t, []int{1, 3}, ElementsOfMaterial(elements, 1))
	assert.Equal(t, []int{2}, ElementsOfMaterial(elements, 2))
	// A material id no element carries yields empty sets
	assert.Equal(t, 0, len(NodesOfMaterial(elements, 9)))
	assert.Equal(t, 0, len(ElementsOfMaterial(elements, 9)))
}
