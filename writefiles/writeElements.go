package writefiles

import (
	"bufio"
	"fmt"
	"os"

	"github.com/notargets/mesh2inp/InputParameters"
	"github.com/notargets/mesh2inp/types"
)

// Only the 6 node quadratic triangular shell topology is written
const shellNodeCount = 6

// WriteElements writes the element deck: the reordered connectivity block
// plus one element set per material. The solver expects the mid-side nodes
// of a shell triangle in ccw sequence 1, 4, 2, 5, 3, 6, so source order
// (n0..n5) becomes (n0, n1, n2, n5, n3, n4).
func WriteElements(filename string, elements []types.SurfaceElement,
	materials []types.Material, dp *InputParameters.DeckParameters) {
	var (
		file    *os.File
		err     error
		skipped int
	)
	if file, err = os.Create(filename); err != nil {
		panic(fmt.Errorf("unable to create file %s\n %s", filename, err))
	}
	defer file.Close()
	w := bufio.NewWriter(file)

	writeHeader(w, filename, dp)
	fmt.Fprintf(w, "*ELEMENT, TYPE=%s, ELSET=Eall\n", dp.ElementType)
	for _, e := range elements {
		if len(e.Nodes) != shellNodeCount {
			skipped++
			continue
		}
		nn := e.Nodes
		fmt.Fprintf(w, "%d, %d, %d, %d, %d, %d, %d\n",
			e.Index, nn[0], nn[1], nn[2], nn[5], nn[3], nn[4])
	}
	if skipped > 0 {
		fmt.Printf("skipped %d elements without %d nodes\n", skipped, shellNodeCount)
	}
	for _, m := range materials {
		elnums := types.ElementsOfMaterial(elements, m.ID)
		fmt.Fprintf(w, "*ELSET,ELSET=E%s\n", m.Name)
		for _, sub := range chunks(elnums, setChunkSize) {
			fmt.Fprintf(w, "%s,\n", joinInts(sub))
		}
		fmt.Printf("wrote %d elements to set E%s\n", len(elnums), m.Name)
	}
	if err = w.Flush(); err != nil {
		panic(fmt.Errorf("unable to write file %s\n %s", filename, err))
	}
}
