package advanced

// Splitting physically partitions the vertex-index cycle along the diagonal
// set from decomposition, producing disjoint x-monotone index loops. When
// flip is set, each emitted loop is reversed; the top level uses that to
// hand the monotone triangulator counterclockwise loops even for clockwise
// input.
func Split(indices []int, diagonals []Diagonal, flip bool) [][]int {
	if len(diagonals) == 0 {
		loop := make([]int, len(indices))
		copy(loop, indices)
		if flip {
			for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
				loop[i], loop[j] = loop[j], loop[i]
			}
		}
		return [][]int{loop}
	}

	d := diagonals[0]
	posA := -1
	posB := -1
	for i, idx := range indices {
		switch idx {
		case d.A:
			posA = i
		case d.B:
			posB = i
		}
	}
	if posA < 0 || posB < 0 {
		fatalf("diagonal %v is not contained in the current loop", d)
	}

	// Walk from one endpoint to the other to build the first loop, then the
	// complementary arc for the second. Both loops keep the diagonal's
	// endpoints, which become the new shared edge.
	first := walkCycle(indices, posA, posB)
	second := walkCycle(indices, posB, posA)

	inFirst := make(map[int]bool, len(first))
	for _, idx := range first {
		inFirst[idx] = true
	}

	// Decomposition diagonals never cross each other, so every remaining
	// diagonal lands wholly inside one of the two loops. The endpoints of the
	// split diagonal belong to both; those are settled by whichever side the
	// other endpoint is on.
	var firstDiagonals, secondDiagonals []Diagonal
	for _, rest := range diagonals[1:] {
		switch {
		case inFirst[rest.A] && inFirst[rest.B]:
			firstDiagonals = append(firstDiagonals, rest)
		case isInLoop(second, rest.A) && isInLoop(second, rest.B):
			secondDiagonals = append(secondDiagonals, rest)
		default:
			fatalf("diagonal %v crosses the split along %v", rest, d)
		}
	}

	result := Split(first, firstDiagonals, flip)
	return append(result, Split(second, secondDiagonals, flip)...)
}

// The sub-cycle from position a to position b, inclusive of both.
func walkCycle(indices []int, a, b int) []int {
	n := len(indices)
	length := CircularIndex(b-a, n) + 1
	loop := make([]int, 0, length)
	for i := 0; i < length; i++ {
		loop = append(loop, indices[CircularIndex(a+i, n)])
	}
	return loop
}

func isInLoop(loop []int, idx int) bool {
	for _, i := range loop {
		if i == idx {
			return true
		}
	}
	return false
}
