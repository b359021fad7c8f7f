package readfiles

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	graphics2D "github.com/notargets/avs/geometry"

	"github.com/notargets/mesh2inp/types"
	"github.com/notargets/mesh2inp/utils"
)

// PlotMesh displays the surface mesh projected onto the XY plane. Element
// corner nodes form the triangles, mid-side nodes are drawn as points when
// plotPoints is set.
func PlotMesh(VX, VY utils.Vector, elements []types.SurfaceElement, plotPoints bool) (chart *chart2d.Chart2D) {
	var (
		points   []graphics2D.Point
		trimesh  graphics2D.TriMesh
		vxD, vyD = VX.Data(), VY.Data()
		K        = len(elements)
	)
	points = make([]graphics2D.Point, VX.Len())
	for i, vx := range vxD {
		points[i].X[0] = float32(vx)
		points[i].X[1] = float32(vyD[i])
	}
	trimesh.Triangles = make([]graphics2D.Triangle, K)
	colorMap := utils2.NewColorMap(0, 1, 1)
	trimesh.Attributes = make([][]float32, K)
	for k, e := range elements {
		trimesh.Attributes[k] = make([]float32, 3)
		for i := 0; i < 3; i++ {
			// Corner nodes are the leading three, node ids are 1-based
			trimesh.Triangles[k].Nodes[i] = int32(e.Nodes[i] - 1)
		}
	}
	trimesh.Geometry = points
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.5)
	chart = chart2d.NewChart2D(1920, 1920, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	chart.AddColorMap(colorMap)
	go chart.Plot()
	white := color.RGBA{
		R: 255,
		G: 255,
		B: 255,
		A: 0,
	}
	if err := chart.AddTriMesh("TriMesh", trimesh,
		chart2d.CrossGlyph, chart2d.Solid, white); err != nil {
		panic("unable to add graph series")
	}
	var ptsGlyph chart2d.GlyphType
	ptsGlyph = chart2d.NoGlyph
	if plotPoints {
		ptsGlyph = chart2d.CircleGlyph
	}
	if err := chart.AddSeries("Points", vxD, vyD,
		ptsGlyph, chart2d.NoLine, white); err != nil {
		panic(err)
	}

	return
}
