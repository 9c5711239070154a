package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/procmesh/triangulate"
)

// Pull every <polygon> out of an SVG file. Only the points attribute is
// honored; transforms and everything else are ignored.
func loadSVGPolygons(path string) ([][]triangulate.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := svgparser.Parse(f, true)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	var polygons [][]triangulate.Point
	for _, el := range root.FindAll("polygon") {
		points, err := parsePointsAttr(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d in %s", len(polygons), path)
		}
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePointsAttr(attr string) ([]triangulate.Point, error) {
	var points []triangulate.Point
	for _, pair := range strings.Fields(attr) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid point %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y %q", coords[1])
		}
		points = append(points, triangulate.Point{X: x, Y: y})
	}
	return points, nil
}
