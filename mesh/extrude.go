package mesh

import (
	"cogentcore.org/core/math32"
	"github.com/pkg/errors"

	"github.com/procmesh/triangulate"
	"github.com/procmesh/triangulate/advanced"
)

// Extrude builds a prism: the profile becomes the two end caps, its edges
// become the side walls. The profile lies in the xy plane; the solid spans
// z in [0, depth] with all faces wound outward.
func Extrude(profile []triangulate.Point, depth float32) (*Mesh, error) {
	if depth <= 0 {
		return nil, errors.Errorf("extrusion depth must be positive, got %v", depth)
	}
	if len(profile) < 3 {
		return nil, errors.Errorf("profile needs at least 3 points, got %d", len(profile))
	}
	profile = counterclockwise(profile)
	tris, err := capTriangles(profile)
	if err != nil {
		return nil, err
	}

	b := NewBuilder()
	at := func(i int, z float32) math32.Vector3 {
		return math32.Vec3(float32(profile[i].X), float32(profile[i].Y), z)
	}

	// Side walls, one quad per profile edge.
	for i := range profile {
		j := (i + 1) % len(profile)
		b.Quad(at(i, 0), at(j, 0), at(j, depth), at(i, depth))
	}

	// Far cap keeps the counterclockwise triangles and faces +z; the near
	// cap mirrors them to face -z.
	for i := 0; i+2 < len(tris); i += 3 {
		b.Triangle(at(tris[i], depth), at(tris[i+1], depth), at(tris[i+2], depth))
		b.Triangle(at(tris[i], 0), at(tris[i+2], 0), at(tris[i+1], 0))
	}
	return b.Mesh(), nil
}

// Profiles may come in either winding; everything downstream assumes
// counterclockwise, so flip a copy when needed.
func counterclockwise(profile []triangulate.Point) []triangulate.Point {
	if !advanced.IsClockwise(profile) {
		return profile
	}
	out := make([]triangulate.Point, len(profile))
	for i, p := range profile {
		out[len(profile)-1-i] = p
	}
	return out
}
