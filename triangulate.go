// A monotone-decomposition triangulation package for Go.
//
// This package converts a simple polygon, which may be non-convex and may
// wind in either direction, into triangles expressed as index triplets into
// the original point slice. No points are copied or invented; every index in
// the result addresses the caller's own buffer, which makes the output
// directly usable for mesh index buffers.
package triangulate

import "github.com/procmesh/triangulate/advanced"

type Point = advanced.Point

// Take a closed point loop and convert it into triangles, returned as a flat
// list of index triplets into points.
//
// The polygon must be simple (non-self-intersecting) and at least three
// points long; either winding order is fine, and every output triangle winds
// the same way as the input. For n points the result always holds exactly
// 3*(n-2) indices.
func Triangulate(points []Point) (result []int, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.TriangulatePolygon(points), nil
}
