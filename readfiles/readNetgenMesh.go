package readfiles

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/notargets/mesh2inp/types"

	"github.com/notargets/mesh2inp/utils"
)

// Section keywords of the Netgen neutral mesh format, in required file order
const (
	SectionPoints          = "points"
	SectionSurfaceElements = "surfaceelements"
	SectionMaterials       = "materials"
	SectionEdgeSegments    = "edgesegmentsgi2"
)

// Edge segments tagged above this value mark exterior boundaries, the rest
// are interior mesh edges
const boundaryTagFloor = 100

func ReadNetgenMesh(filename string, verbose bool) (VX, VY, VZ utils.Vector,
	elements []types.SurfaceElement, materials []types.Material, bcEdges types.BCMAP) {
	var (
		data []byte
		err  error
	)
	if verbose {
		fmt.Printf("Reading Netgen neutral mesh file named: %s\n", filename)
	}
	if data, err = ioutil.ReadFile(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	lines := cleanLines(data)

	VX, VY, VZ = readPoints(lines)
	elements = readSurfaceElements(lines)
	materials = readMaterials(lines)
	bcEdges = readEdgeBoundaries(lines)

	if verbose {
		fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
			VX.Min(), VX.Max(), VY.Min(), VY.Max(), VZ.Min(), VZ.Max())
	}
	return
}

func readPoints(lines []string) (VX, VY, VZ utils.Vector) {
	var (
		n   int
		err error
	)
	first, count := sectionStart(lines, SectionPoints)
	VX, VY, VZ = utils.NewVector(count), utils.NewVector(count), utils.NewVector(count)
	vx, vy, vz := VX.Data(), VY.Data(), VZ.Data()
	nargs := 3
	for i := 0; i < count; i++ {
		line := lines[first+i]
		if n, err = fmt.Sscanf(line, "%f %f %f", &vx[i], &vy[i], &vz[i]); err != nil || n < nargs {
			if err == nil && n < nargs {
				err = fmt.Errorf("read fewer than required coordinates, read %d, need %d, line: %s", n, nargs, line)
			}
			panic(err)
		}
	}
	return
}

func readSurfaceElements(lines []string) (elements []types.SurfaceElement) {
	first, count := sectionStart(lines, SectionSurfaceElements)
	elements = make([]types.SurfaceElement, count)
	for i := 0; i < count; i++ {
		line := lines[first+i]
		nn := readInts(line)
		if len(nn) < 5 {
			panic(fmt.Errorf("read fewer than 5 element fields, line: %s", line))
		}
		np := nn[4]
		if len(nn) < 5+np {
			panic(fmt.Errorf("element declares %d nodes, fewer present, line: %s", np, line))
		}
		elements[i] = types.SurfaceElement{
			Index:  i + 1,
			SurfNr: nn[0],
			BCNr:   nn[1],
			DomIn:  nn[2],
			DomOut: nn[3],
			Nodes:  nn[5 : 5+np],
		}
	}
	return
}

func readMaterials(lines []string) (materials []types.Material) {
	var (
		n   int
		err error
	)
	first, count := sectionStart(lines, SectionMaterials)
	materials = make([]types.Material, count)
	nargs := 2
	for i := 0; i < count; i++ {
		// Material names are assumed to contain no whitespace
		line := lines[first+i]
		m := &materials[i]
		if n, err = fmt.Sscanf(line, "%d %s", &m.ID, &m.Name); err != nil || n < nargs {
			if err == nil && n < nargs {
				err = fmt.Errorf("read fewer than required material fields, read %d, need %d, line: %s", n, nargs, line)
			}
			panic(err)
		}
	}
	return
}

func readEdgeBoundaries(lines []string) (bcEdges types.BCMAP) {
	first, count := sectionStart(lines, SectionEdgeSegments)
	bcEdges = make(types.BCMAP)
	for i := 0; i < count; i++ {
		line := lines[first+i]
		nn := readInts(line)
		if len(nn) < 4 {
			panic(fmt.Errorf("read fewer than 4 edge segment fields, line: %s", line))
		}
		if tag := nn[0]; tag > boundaryTagFloor {
			bcEdges.AddEdge(tag, nn[2], nn[3])
		}
	}
	return
}

// cleanLines splits the file into trimmed lines with blanks and # comments
// removed, so that section data can be addressed by position.
func cleanLines(data []byte) (lines []string) {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return
}

// sectionStart locates a section keyword line and parses the count line
// following it, returning the index of the first data line.
func sectionStart(lines []string, keyword string) (first, count int) {
	var (
		err error
	)
	for i, line := range lines {
		if line != keyword {
			continue
		}
		if i+1 >= len(lines) {
			panic(fmt.Errorf("section %s is missing its count line", keyword))
		}
		if _, err = fmt.Sscanf(lines[i+1], "%d", &count); err != nil {
			panic(fmt.Errorf("unable to read count for section %s from line: [%s]", keyword, lines[i+1]))
		}
		first = i + 2
		if first+count > len(lines) {
			panic(fmt.Errorf("section %s declares %d records, file ends early", keyword, count))
		}
		return
	}
	panic(fmt.Errorf("unable to find section %s in mesh file", keyword))
}

func readInts(line string) (nn []int) {
	var (
		err error
	)
	fields := strings.Fields(line)
	nn = make([]int, len(fields))
	for i, tok := range fields {
		if nn[i], err = strconv.Atoi(tok); err != nil {
			panic(fmt.Errorf("unable to read integer from token: [%s], line: %s", tok, line))
		}
	}
	return
}
