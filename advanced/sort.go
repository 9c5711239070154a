package advanced

import "sort"

// SortIndices returns all indices 0..len(points) ordered by the sweep order:
// x ascending, then y ascending. The sort is stable, so duplicate points
// keep their original index order.
func SortIndices(points []Point) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return Above(points, order[i], order[j])
	})
	return order
}
