package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	triangles, err := Triangulate(points)
	assert.NoError(t, err)
	assert.Len(t, triangles, 6)
	for _, i := range triangles {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, len(points))
	}
}

func TestTriangulateDegenerateInput(t *testing.T) {
	for _, points := range [][]Point{
		nil,
		{{X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
	} {
		triangles, err := Triangulate(points)
		assert.Error(t, err)
		assert.Nil(t, triangles)
	}
}

func TestTriangulateSelfIntersectingInput(t *testing.T) {
	bowtie := []Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	triangles, err := Triangulate(bowtie)
	assert.Error(t, err)
	assert.Nil(t, triangles)
}
