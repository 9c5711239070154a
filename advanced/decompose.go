package advanced

// Monotone decomposition. A single sweep over the vertices in sort order
// classifies each vertex as start, end, regular, split or merge, and emits
// the internal diagonals that cut the polygon into x-monotone pieces. This
// is the classic helper-based sweep, run left to right.
//
// The algorithm is defined for counterclockwise polygons. Clockwise input is
// handled by walking a reversed index cycle, so the sweep always sees a
// counterclockwise loop; emitted diagonals are original indices either way.

// The decomposition status: the set of polygon edges currently crossing the
// sweep frontier with the polygon interior above them, plus the helper
// vertex responsible for each edge's region. An edge is named by the index
// of its first vertex in cycle order. The only operations needed are insert,
// remove, point lookup and iterate-all, so a linear-scan slice is all the
// structure we need.
type statusSet struct {
	edges  []int
	helper map[int]int
}

func newStatusSet(n int) *statusSet {
	return &statusSet{
		edges:  make([]int, 0, 8),
		helper: make(map[int]int, n),
	}
}

func (s *statusSet) add(edge, helper int) {
	s.edges = append(s.edges, edge)
	s.helper[edge] = helper
}

func (s *statusSet) remove(edge int) {
	for i, e := range s.edges {
		if e == edge {
			s.edges = append(s.edges[:i], s.edges[i+1:]...)
			delete(s.helper, edge)
			return
		}
	}
	fatalf("edge %d is not in the status set", edge)
}

type decomposer struct {
	points []Point
	cycle  []int // original indices in counterclockwise order
	pos    []int // position of each original index within cycle
	kinds  []VertexKind
	status *statusSet
	result []Diagonal
}

// Decompose computes the diagonals that split the polygon into x-monotone
// index loops. The clockwise flag must match IsClockwise(points); the top
// level computes it once and passes it down.
func Decompose(points []Point, clockwise bool) []Diagonal {
	if len(points) < 3 {
		fatalf("cannot decompose degenerate polygon with point count: %d", len(points))
	}

	n := len(points)
	d := &decomposer{
		points: points,
		cycle:  make([]int, n),
		pos:    make([]int, n),
		kinds:  make([]VertexKind, n),
		status: newStatusSet(n),
	}
	for i := range d.cycle {
		if clockwise {
			d.cycle[i] = n - 1 - i
		} else {
			d.cycle[i] = i
		}
		d.pos[d.cycle[i]] = i
	}

	for _, v := range SortIndices(points) {
		d.sweepVertex(v)
	}
	return d.result
}

func (d *decomposer) next(i int) int {
	return d.cycle[CircularIndex(d.pos[i]+1, len(d.cycle))]
}

func (d *decomposer) prev(i int) int {
	return d.cycle[CircularIndex(d.pos[i]-1, len(d.cycle))]
}

// Is the interior angle at v less than pi? With a counterclockwise cycle,
// that's exactly a counterclockwise (prev, v, next) triangle.
func (d *decomposer) convexAt(v int) bool {
	return !TriangleIsClockwise(d.points[d.prev(v)], d.points[v], d.points[d.next(v)])
}

func (d *decomposer) sweepVertex(v int) {
	p := d.prev(v)
	n := d.next(v)
	switch {
	case Above(d.points, v, p) && Above(d.points, v, n):
		// Both neighbors follow v in sweep order, so v locally opens the
		// polygon.
		if d.convexAt(v) {
			d.kinds[v] = VertexStart
			d.status.add(v, v)
		} else {
			// A reflex opener splits the region in two. Connect it back to the
			// vertex responsible for the region it lands in.
			d.kinds[v] = VertexSplit
			left := d.leftEdge(v)
			d.emit(v, d.status.helper[left])
			d.status.helper[left] = v
			d.status.add(v, v)
		}

	case Above(d.points, p, v) && Above(d.points, n, v):
		// Both neighbors precede v, so v locally closes the polygon. The edge
		// arriving at v is the one starting at its predecessor.
		d.closePredecessorEdge(v, p)
		if d.convexAt(v) {
			d.kinds[v] = VertexEnd
		} else {
			d.kinds[v] = VertexMerge
			left := d.leftEdge(v)
			d.connectIfMerge(v, left)
			d.status.helper[left] = v
		}

	default:
		// Chain interior point. If the predecessor is already swept, the
		// boundary runs rightward through v with the interior above it: close
		// out the predecessor's edge and open v's own. Otherwise v sits on a
		// chain whose region is bounded below by some status edge.
		d.kinds[v] = VertexRegular
		if Above(d.points, p, v) {
			d.closePredecessorEdge(v, p)
			d.status.add(v, v)
		} else {
			left := d.leftEdge(v)
			d.connectIfMerge(v, left)
			d.status.helper[left] = v
		}
	}
}

// Remove the edge ending at v from the status, first emitting a diagonal if
// a merge vertex was left waiting in its region.
func (d *decomposer) closePredecessorEdge(v, p int) {
	d.connectIfMerge(v, p)
	d.status.remove(p)
}

func (d *decomposer) connectIfMerge(v, edge int) {
	h, ok := d.status.helper[edge]
	if !ok {
		fatalf("edge %d has no helper", edge)
	}
	if d.kinds[h] == VertexMerge {
		d.emit(v, h)
	}
}

func (d *decomposer) emit(a, b int) {
	d.result = append(d.result, Diagonal{a, b})
}

// Find the status edge immediately below v: scan every status edge, compute
// where its supporting line crosses v's x, and keep the largest crossing
// that is still at or below v's own y. For valid simple input there is
// always one; running dry means the input was malformed or there's a logic
// defect, and either way we cannot continue.
func (d *decomposer) leftEdge(v int) int {
	vp := d.points[v]
	best := -1
	var bestY float64
	for _, e := range d.status.edges {
		a := d.points[e]
		b := d.points[d.next(e)]
		var y float64
		if a.X == b.X {
			// A vertical edge crosses the frontier along its whole span. Use the
			// closest point of the span at or below v, if any.
			lo, hi := a.Y, b.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			y = hi
			if vp.Y < y {
				y = vp.Y
			}
			if y < lo {
				continue
			}
		} else {
			t := (vp.X - a.X) / (b.X - a.X)
			y = a.Y + t*(b.Y-a.Y)
		}
		if y <= vp.Y && (best < 0 || y > bestY) {
			best = e
			bestY = y
		}
	}
	if best < 0 {
		fatalf("no status edge below vertex %d at %v; status: %s", v, vp, d.dbgStatusString())
	}
	return best
}
