// Command meshtri triangulates polygons and reports what it did. Input is
// either an SVG file containing <polygon> elements, or newline separated
// "x y" points on stdin with a blank line between polygons.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/procmesh/triangulate"
	"github.com/procmesh/triangulate/dispatch"
)

var (
	svgFile = kingpin.Arg("svg", "SVG file with polygon elements; omit to read points from stdin.").ExistingFile()
	render  = kingpin.Flag("render", "Write the triangulation to a PNG file.").PlaceHolder("FILE").String()
	show    = kingpin.Flag("show", "Print the rendered PNG in the terminal (iTerm only).").Bool()
	scale   = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("20").Float64()
	workers = kingpin.Flag("workers", "Concurrent triangulations.").Default(strconv.Itoa(runtime.NumCPU())).Int()
)

func main() {
	kingpin.Parse()

	var polygons [][]triangulate.Point
	var err error
	if *svgFile != "" {
		polygons, err = loadSVGPolygons(*svgFile)
	} else {
		polygons, err = readPolygons(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}
	if len(polygons) == 0 {
		log.Fatal("no polygons in input")
	}

	results, err := dispatch.TriangulateBatch(context.Background(), polygons, *workers)
	if err != nil {
		log.Fatal(err)
	}

	for i, tris := range results {
		fmt.Printf("polygon %s: %s points, %s triangles\n",
			aurora.Cyan(strconv.Itoa(i)),
			aurora.Green(strconv.Itoa(len(polygons[i]))),
			aurora.Green(strconv.Itoa(len(tris)/3)))
	}

	if *render != "" {
		if err := renderPNG(*render, polygons, results, *scale, *show); err != nil {
			log.Fatal(err)
		}
	}
}

// Read stdin polygons: one "x y" point per line, blank line between
// polygons.
func readPolygons(in *os.File) ([][]triangulate.Point, error) {
	var polygons [][]triangulate.Point
	var points []triangulate.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (triangulate.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return triangulate.Point{}, fmt.Errorf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return triangulate.Point{}, fmt.Errorf("invalid x in %q: %w", line, err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return triangulate.Point{}, fmt.Errorf("invalid y in %q: %w", line, err)
	}
	return triangulate.Point{X: x, Y: y}, nil
}
