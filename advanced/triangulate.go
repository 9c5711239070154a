package advanced

// TriangulatePolygon triangulates a simple polygon, given as an ordered
// point loop in either winding order, into flat index triplets addressing
// the input slice. The result always holds exactly 3*(len(points)-2)
// indices, and every triangle winds the same way as the input.
//
// Malformed input (fewer than three points, or anything that trips an
// internal invariant) panics with a TriangulateError; the root package
// converts that to a returned error.
func TriangulatePolygon(points []Point) []int {
	if len(points) < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", len(points))
	}

	clockwise := IsClockwise(points)
	diagonals := Decompose(points, clockwise)

	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = i
	}
	loops := Split(indices, diagonals, clockwise)

	tris := make([]int, 0, 3*(len(points)-2))
	for _, loop := range loops {
		tris = TriangulateMonotone(points, loop, clockwise, tris)
	}
	return tris
}
