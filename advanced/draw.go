package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 100

// Draw a set of index loops over the given points as filled outlines, and
// print the image in the terminal (iTerm only). Triangulation output can be
// drawn too by passing each triplet as a three-element loop.
func dbgDrawLoops(points []Point, loops [][]int, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, loop := range loops {
		first := points[loop[0]]
		c.MoveTo(first.X, first.Y)
		for _, i := range loop[1:] {
			c.LineTo(points[i].X, points[i].Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SavePNG("/tmp/index_loops.png")
	imgcat.CatFile("/tmp/index_loops.png", os.Stdout)
}

// Draw a triangulation result.
func dbgDrawTriangles(points []Point, tris []int, scale float64) {
	loops := make([][]int, 0, len(tris)/3)
	for i := 0; i+2 < len(tris); i += 3 {
		loops = append(loops, tris[i:i+3])
	}
	dbgDrawLoops(points, loops, scale)
}
