package advanced

// Winding tests. Both are shoelace-style signed area accumulations; a
// non-negative sum means clockwise, so zero-area degenerate input resolves to
// clockwise.

// IsClockwise reports whether the polygon's points wind clockwise. The last
// point is paired with the first to close the loop.
func IsClockwise(points []Point) bool {
	var sum float64
	last := points[len(points)-1]
	for _, next := range points {
		sum += (next.X - last.X) * (next.Y + last.Y)
		last = next
	}
	return sum >= 0
}

// TriangleIsClockwise is the same test specialized to three points. It is
// used to orient every emitted triangle identically to the polygon it was
// cut from.
func TriangleIsClockwise(a, b, c Point) bool {
	sum := (b.X-a.X)*(b.Y+a.Y) +
		(c.X-b.X)*(c.Y+b.Y) +
		(a.X-c.X)*(a.Y+c.Y)
	return sum >= 0
}
