package advanced

// This contains no actual tests. It is just a helper for testing
// triangulation validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const testEpsilon = 1e-6

// Helper to check that a triangulation is valid. The rules are:
// 1. The result holds exactly 3*(n-2) indices, all in [0, n), and every
//    vertex of the polygon appears in at least one triangle.
// 2. No triangle repeats an index.
// 3. Every triangle winds the same way as the polygon, and none has zero
//    area.
// 4. The set of boundary edges of the polygon is a subset of the set of
//    triangle edges.
// 5. The sum of the areas of all triangles equals the area of the polygon.
func AssertValidTriangulation(t *testing.T, points []Point, tris []int) {
	t.Helper()

	n := len(points)
	require.Equal(t, 3*(n-2), len(tris), "expected 3*(n-2) indices")

	clockwise := IsClockwise(points)
	seen := make(map[int]struct{}, n)
	edges := make(normalizedEdgeSet)
	var triangleArea float64
	for k := 0; k+2 < len(tris); k += 3 {
		a, b, c := tris[k], tris[k+1], tris[k+2]
		for _, idx := range []int{a, b, c} {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, n)
			seen[idx] = struct{}{}
		}
		require.True(t, a != b && b != c && a != c, "triangle %v repeats an index", tris[k:k+3])
		require.Equal(t, clockwise, TriangleIsClockwise(points[a], points[b], points[c]),
			"triangle %v winds against the polygon", tris[k:k+3])

		area := triangleArea2(points[a], points[b], points[c])
		require.Greater(t, area, 0.0, "triangle %v has zero area", tris[k:k+3])
		triangleArea += area

		edges.add(a, b)
		edges.add(b, c)
		edges.add(c, a)
	}

	require.Len(t, seen, n, "every vertex must appear in some triangle")

	for i := range points {
		j := CircularIndex(i+1, n)
		require.True(t, edges.contains(i, j),
			"boundary edge %d-%d is not an edge of any triangle", i, j)
	}

	require.InDelta(t, polygonArea(points), triangleArea, testEpsilon,
		"sum of triangle areas must equal the polygon area")
}

func polygonArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum / 2)
}

func triangleArea2(a, b, c Point) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

// A "normalized" edge: the smaller index always comes first, so the set is
// direction-insensitive.
type normalizedEdge struct {
	lo, hi int
}

type normalizedEdgeSet map[normalizedEdge]struct{}

func newNormalizedEdge(a, b int) normalizedEdge {
	if a > b {
		a, b = b, a
	}
	return normalizedEdge{a, b}
}

func (set normalizedEdgeSet) add(a, b int) {
	set[newNormalizedEdge(a, b)] = struct{}{}
}

func (set normalizedEdgeSet) contains(a, b int) bool {
	_, ok := set[newNormalizedEdge(a, b)]
	return ok
}
