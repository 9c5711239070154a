package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbove(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 1}, {0, 0}}

	// x decides first.
	assert.True(t, Above(points, 0, 1))
	assert.False(t, Above(points, 1, 0))

	// y breaks x ties.
	assert.True(t, Above(points, 0, 2))
	assert.False(t, Above(points, 2, 0))

	// Coincident points are never above one another.
	assert.False(t, Above(points, 0, 3))
	assert.False(t, Above(points, 3, 0))
}

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(0, 5))
	assert.Equal(t, 0, CircularIndex(5, 5))
	assert.Equal(t, 1, CircularIndex(6, 5))
	assert.Equal(t, 4, CircularIndex(-1, 5))
	assert.Equal(t, 3, CircularIndex(-7, 5))
}

func TestIndexStack(t *testing.T) {
	var s IndexStack
	assert.True(t, s.Empty())
	s.Push(4)
	s.Push(7)
	assert.False(t, s.Empty())
	assert.Equal(t, 7, s.Peek())
	assert.Equal(t, 7, s.Pop())
	assert.Equal(t, 4, s.Pop())
	assert.True(t, s.Empty())
}

func TestIndexStackUnderflow(t *testing.T) {
	defer func() {
		err := HandleTriangulatePanicRecover(recover())
		assert.Error(t, err)
	}()
	var s IndexStack
	s.Pop()
	t.Fatal("expected a panic")
}
