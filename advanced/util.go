package advanced

// The sweep order used everywhere in this package is primary-axis x, then y,
// both ascending. "Above" means "precedes in sweep order", so the sweep
// proceeds left to right, bottom to top within any vertical run of points. Decomposition and monotone triangulation must agree on this order;
// any consistent total order would work, but it has to be the same one.
func Above(points []Point, i, j int) bool {
	a, b := points[i], points[j]
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		fatalf("pop from empty index stack")
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *IndexStack) Peek() int {
	if len(*s) == 0 {
		fatalf("peek into empty index stack")
	}
	return (*s)[len(*s)-1]
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}
