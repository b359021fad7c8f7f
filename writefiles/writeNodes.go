package writefiles

import (
	"bufio"
	"fmt"
	"os"

	"github.com/notargets/mesh2inp/InputParameters"
	"github.com/notargets/mesh2inp/types"
	"github.com/notargets/mesh2inp/utils"
)

// WriteNodes writes the node deck: all point coordinates as Nall, one node
// set per material and one per edge boundary tag.
func WriteNodes(filename string, VX, VY, VZ utils.Vector,
	elements []types.SurfaceElement, materials []types.Material,
	bcEdges types.BCMAP, dp *InputParameters.DeckParameters) {
	var (
		file *os.File
		err  error
	)
	filename = ensureInpExt(filename)
	if file, err = os.Create(filename); err != nil {
		panic(fmt.Errorf("unable to create file %s\n %s", filename, err))
	}
	defer file.Close()
	w := bufio.NewWriter(file)

	writeHeader(w, filename, dp)
	fmt.Fprintf(w, "*NODE,NSET=Nall\n")
	vx, vy, vz := VX.Data(), VY.Data(), VZ.Data()
	for i := range vx {
		// Node ids are assigned from the point order in the mesh file
		fmt.Fprintf(w, "%d, %.2f, %.2f, %.2f\n", i+1, vx[i], vy[i], vz[i])
	}
	for _, m := range materials {
		nset := types.NodesOfMaterial(elements, m.ID)
		fmt.Fprintf(w, "*NSET,NSET=N%s\n", m.Name)
		for _, sub := range chunks(nset.Sorted(), setChunkSize) {
			fmt.Fprintf(w, "  %s\n", joinInts(sub))
		}
		fmt.Printf("wrote %d nodes to set N%s\n", len(nset), m.Name)
	}
	for _, tag := range bcEdges.Tags() {
		nodes := bcEdges[tag].Sorted()
		fmt.Fprintf(w, "*NSET,NSET=Nedge%d\n", tag)
		for _, sub := range chunks(nodes, setChunkSize) {
			fmt.Fprintf(w, "  %s\n", joinInts(sub))
		}
		fmt.Printf("wrote %d nodes to set Nedge%d\n", len(nodes), tag)
	}
	if err = w.Flush(); err != nil {
		panic(fmt.Errorf("unable to write file %s\n %s", filename, err))
	}
}
