package advanced

// A 2D point. The engine never stores points of its own; every structure it
// builds refers back into the caller's point slice by index, so results stay
// directly addressable against the caller's buffers.
type Point struct {
	X float64
	Y float64
}

// A diagonal is a new internal edge between two non-adjacent vertices,
// produced by decomposition and consumed by splitting. The endpoint order
// carries no meaning.
type Diagonal struct {
	A, B int
}

// The classification assigned to each vertex during decomposition. It is not
// persisted beyond that pass, except that helpers keep the classification of
// the vertex they name.
type VertexKind int

const (
	VertexStart VertexKind = iota
	VertexEnd
	VertexRegular
	VertexSplit
	VertexMerge
)

func (k VertexKind) String() string {
	switch k {
	case VertexStart:
		return "start"
	case VertexEnd:
		return "end"
	case VertexRegular:
		return "regular"
	case VertexSplit:
		return "split"
	case VertexMerge:
		return "merge"
	}
	return "unknown"
}

type IndexStack []int
