// Package mesh turns triangulated cross-sections into renderer-ready 3D
// geometry: packed float32 vertex buffers and uint32 index buffers, built by
// extruding or sweeping a 2D profile.
package mesh

import (
	"cogentcore.org/core/math32"
	"github.com/pkg/errors"

	"github.com/procmesh/triangulate"
)

// Mesh holds packed geometry buffers in the layout GPU APIs take directly:
// three floats per vertex position, three indices per triangle.
type Mesh struct {
	Vertex math32.ArrayF32
	Index  math32.ArrayU32
}

func (m *Mesh) NumVertex() int {
	return len(m.Vertex) / 3
}

func (m *Mesh) NumTriangles() int {
	return len(m.Index) / 3
}

// Normals computes smooth per-vertex normals: each face's normal, weighted
// by its area, accumulated onto its three corners and normalized. The result
// is parallel to Vertex.
func (m *Mesh) Normals() math32.ArrayF32 {
	norms := math32.NewArrayF32(len(m.Vertex), len(m.Vertex))
	var a, b, c, n math32.Vector3
	for i := 0; i+2 < len(m.Index); i += 3 {
		ia, ib, ic := int(m.Index[i])*3, int(m.Index[i+1])*3, int(m.Index[i+2])*3
		a.FromSlice(m.Vertex, ia)
		b.FromSlice(m.Vertex, ib)
		c.FromSlice(m.Vertex, ic)
		// Cross product length is twice the face area, so the unnormalized
		// cross is already the area weighting.
		face := b.Sub(a).Cross(c.Sub(a))
		for _, vi := range []int{ia, ib, ic} {
			n.FromSlice(norms, vi)
			n.SetAdd(face)
			n.ToSlice(norms, vi)
		}
	}
	for i := 0; i+2 < len(norms); i += 3 {
		n.FromSlice(norms, i)
		if n.Length() > 0 {
			n.Normal().ToSlice(norms, i)
		}
	}
	return norms
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (m *Mesh) Bounds() math32.Box3 {
	bb := math32.Box3{}
	bb.SetEmpty()
	var v math32.Vector3
	for i := 0; i+2 < len(m.Vertex); i += 3 {
		v.FromSlice(m.Vertex, i)
		bb.ExpandByPoint(v)
	}
	return bb
}

// Triangulate a profile once and fail with context if it is not a usable
// simple polygon.
func capTriangles(profile []triangulate.Point) ([]int, error) {
	tris, err := triangulate.Triangulate(profile)
	if err != nil {
		return nil, errors.Wrap(err, "triangulating cross-section")
	}
	return tris, nil
}
