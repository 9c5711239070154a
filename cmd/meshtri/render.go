package main

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/procmesh/triangulate"
)

const renderPadding = 20

// Draw every polygon's triangles as filled outlines into one PNG.
func renderPNG(path string, polygons [][]triangulate.Point, results [][]int, scale float64, show bool) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, polygon := range polygons {
		for _, p := range polygon {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is at the bottom left, as in the input coordinates.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for pi, tris := range results {
		points := polygons[pi]
		for i := 0; i+2 < len(tris); i += 3 {
			a, b, d := points[tris[i]], points[tris[i+1]], points[tris[i+2]]
			c.MoveTo(a.X, a.Y)
			c.LineTo(b.X, b.Y)
			c.LineTo(d.X, d.Y)
			c.ClosePath()
		}
	}
	c.SetRGBA(0.2, 0.6, 0.9, 0.5)
	c.FillPreserve()
	c.SetRGB(0.1, 0.1, 0.4)
	c.Stroke()

	if err := c.SavePNG(path); err != nil {
		return err
	}
	if show {
		return imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
