package mesh

import "cogentcore.org/core/math32"

// Default quantization step for vertex welding. Positions closer than this
// along every axis land in the same grid cell and share one vertex.
const defaultQuantum = 1e-5

// Builder accumulates mesh geometry while welding coincident vertices.
// Positions are quantized to a grid, so two floats that differ by less than
// the quantum resolve to the same buffer slot.
type Builder struct {
	mesh    Mesh
	quantum float32
	lookup  map[[3]int32]uint32
}

func NewBuilder() *Builder {
	return &Builder{
		quantum: defaultQuantum,
		lookup:  map[[3]int32]uint32{},
	}
}

func (b *Builder) key(p math32.Vector3) [3]int32 {
	return [3]int32{
		int32(math32.Round(p.X / b.quantum)),
		int32(math32.Round(p.Y / b.quantum)),
		int32(math32.Round(p.Z / b.quantum)),
	}
}

// Vertex returns the buffer index for p, appending it if unseen.
func (b *Builder) Vertex(p math32.Vector3) uint32 {
	k := b.key(p)
	if i, ok := b.lookup[k]; ok {
		return i
	}
	i := uint32(b.mesh.NumVertex())
	b.mesh.Vertex = append(b.mesh.Vertex, p.X, p.Y, p.Z)
	b.lookup[k] = i
	return i
}

// Triangle appends one triangle over three positions.
func (b *Builder) Triangle(a, c, d math32.Vector3) {
	b.mesh.Index = append(b.mesh.Index, b.Vertex(a), b.Vertex(c), b.Vertex(d))
}

// Quad appends two triangles covering the quad (a, b, c, d) in perimeter
// order.
func (b *Builder) Quad(p0, p1, p2, p3 math32.Vector3) {
	b.Triangle(p0, p1, p2)
	b.Triangle(p0, p2, p3)
}

// Mesh returns the accumulated geometry. The builder can keep adding to it
// afterwards; the returned struct shares the buffers.
func (b *Builder) Mesh() *Mesh {
	return &b.mesh
}
