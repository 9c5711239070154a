package mesh

import (
	"cogentcore.org/core/math32"
	"github.com/pkg/errors"

	"github.com/procmesh/triangulate"
	"github.com/procmesh/triangulate/curve"
)

// Sweep runs the profile along a 3D polyline. At every path point the
// profile is planted in a rotation minimizing frame, consecutive rings are
// stitched with quads, and both ends are capped with the profile's
// triangulation. The profile's x maps to the frame normal and y to the
// binormal, so with a counterclockwise profile all faces wind outward.
func Sweep(profile []triangulate.Point, path []math32.Vector3) (*Mesh, error) {
	if len(profile) < 3 {
		return nil, errors.Errorf("profile needs at least 3 points, got %d", len(profile))
	}
	profile = counterclockwise(profile)
	tris, err := capTriangles(profile)
	if err != nil {
		return nil, err
	}
	frames, err := curve.Frames(path)
	if err != nil {
		return nil, errors.Wrap(err, "framing sweep path")
	}

	rings := make([][]math32.Vector3, len(frames))
	for fi, f := range frames {
		ring := make([]math32.Vector3, len(profile))
		for pi, p := range profile {
			ring[pi] = f.Origin.
				Add(f.Normal.MulScalar(float32(p.X))).
				Add(f.Binormal.MulScalar(float32(p.Y)))
		}
		rings[fi] = ring
	}

	b := NewBuilder()
	for fi := 0; fi+1 < len(rings); fi++ {
		near, far := rings[fi], rings[fi+1]
		for i := range profile {
			j := (i + 1) % len(profile)
			b.Quad(near[i], near[j], far[j], far[i])
		}
	}

	// The end cap faces along the final tangent; the start cap mirrors the
	// triangles to face backwards.
	first, last := rings[0], rings[len(rings)-1]
	for i := 0; i+2 < len(tris); i += 3 {
		b.Triangle(last[tris[i]], last[tris[i+1]], last[tris[i+2]])
		b.Triangle(first[tris[i]], first[tris[i+2]], first[tris[i+1]])
	}
	return b.Mesh(), nil
}
