package advanced

// Facilities for converting one x-monotone index loop into triangles. An
// x-monotone polygon is a simple polygon such that any vertical line
// intersects at most two edges; the loops produced by Split are monotone by
// construction.
//
// The loop must be counterclockwise. The caller's winding is restored per
// triangle at emission time, using the clockwise hint propagated from the
// top level.

// TriangulateMonotone appends the triangles of one monotone loop to tris as
// flat index triplets and returns the extended slice. The loop holds indices
// into points.
func TriangulateMonotone(points []Point, loop []int, clockwise bool, tris []int) []int {
	n := len(loop)
	if n < 3 {
		fatalf("cannot triangulate degenerate loop with point count: %d", n)
	}
	if n == 3 {
		return appendTriangle(points, tris, loop[0], loop[1], loop[2], clockwise)
	}

	// Find the sweep-first vertex of the loop.
	firstPos := 0
	for i := range loop {
		if Above(points, loop[i], loop[firstPos]) {
			firstPos = i
		}
	}

	// Sort by merging the two chains starting from the sweep-first vertex,
	// noting which vertices lie on the lower chain, and track the sweep-last
	// vertex separately. Walking the counterclockwise cycle forward from the
	// sweep-first vertex traverses the lower chain.
	sorted := make([]int, 0, n)
	sorted = append(sorted, loop[firstPos])

	lowerChain := map[int]struct{}{}
	isLower := func(i int) bool {
		_, ok := lowerChain[i]
		return ok
	}

	lowerOffset := 1
	upperOffset := 1
	var lastVertex int
	for {
		lowerVertex := loop[CircularIndex(firstPos+lowerOffset, n)]
		upperVertex := loop[CircularIndex(firstPos-upperOffset, n)]

		// If the chains have met up, we're done. The sweep-last vertex is not
		// added to the list; it is handled at the very end.
		if lowerVertex == upperVertex {
			lastVertex = lowerVertex
			break
		}

		if Above(points, lowerVertex, upperVertex) {
			lowerChain[lowerVertex] = struct{}{}
			sorted = append(sorted, lowerVertex)
			lowerOffset++
		} else {
			sorted = append(sorted, upperVertex)
			upperOffset++
		}
	}

	// Create the stack and populate it with the first two vertices.
	stack := make(IndexStack, 0, n)
	stack.Push(sorted[0])
	stack.Push(sorted[1])

	for i := 2; i < len(sorted); i++ {
		v := sorted[i]
		lower := isLower(v)
		if lower != isLower(stack.Peek()) {
			// We've jumped to the other chain, so monotonicity guarantees that
			// every stacked vertex is visible from v. Empty the whole stack into
			// a fan of triangles.
			for !stack.Empty() {
				a := stack.Pop()
				if !stack.Empty() {
					b := stack.Peek()
					if lower {
						tris = appendTriangle(points, tris, v, a, b, clockwise)
					} else {
						tris = appendTriangle(points, tris, a, v, b, clockwise)
					}
				}
			}
			// Put the previous vertex and the current one back on the stack.
			stack.Push(sorted[i-1])
			stack.Push(v)
		} else {
			// Same chain. Always pop the last vertex off; if no triangle gets
			// made this round, it goes right back.
			last := stack.Pop()
			for !stack.Empty() {
				top := stack.Peek()
				// The easiest way to see whether v "sees" the top of the stack is
				// to try forming the triangle and checking that it comes out
				// counterclockwise.
				var ta, tb, tc int
				if lower {
					ta, tb, tc = v, top, last
				} else {
					ta, tb, tc = v, last, top
				}
				if TriangleIsClockwise(points[ta], points[tb], points[tc]) {
					// The diagonal would leave the polygon; stop here.
					break
				}
				last = stack.Pop()
				tris = appendTriangle(points, tris, ta, tb, tc, clockwise)
			}
			stack.Push(last)
			stack.Push(v)
		}
	}

	// Drain the remaining stack against the sweep-last vertex. We always have
	// at least two vertices here, and unlike the diagonal-only formulation of
	// this algorithm, the very last one still yields a triangle.
	last := stack.Pop()
	for !stack.Empty() {
		v := stack.Pop()
		if isLower(last) {
			tris = appendTriangle(points, tris, lastVertex, v, last, clockwise)
		} else {
			tris = appendTriangle(points, tris, lastVertex, last, v, clockwise)
		}
		last = v
	}
	return tris
}

// Append one triangle, correcting its index order so the winding matches the
// polygon's.
func appendTriangle(points []Point, tris []int, a, b, c int, clockwise bool) []int {
	if TriangleIsClockwise(points[a], points[b], points[c]) != clockwise {
		b, c = c, b
	}
	return append(tris, a, b, c)
}
