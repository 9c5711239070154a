// Package curve computes rotation minimizing frames along 3D polylines.
// A frame per path point gives a consistent local coordinate system that a
// cross-section can be planted in without twisting around the path, which is
// what a naive Frenet frame does near inflections.
package curve

import (
	"cogentcore.org/core/math32"
	"github.com/pkg/errors"
)

// Frame is an orthonormal basis attached to one path point. Tangent points
// along the path, Normal and Binormal span the cross-section plane.
type Frame struct {
	Origin   math32.Vector3
	Tangent  math32.Vector3
	Normal   math32.Vector3
	Binormal math32.Vector3
}

// Frames computes one rotation minimizing frame per path point using the
// double reflection method. Consecutive duplicate points have no tangent and
// are rejected.
func Frames(path []math32.Vector3) ([]Frame, error) {
	if len(path) < 2 {
		return nil, errors.Errorf("path needs at least 2 points, got %d", len(path))
	}

	tangents := make([]math32.Vector3, len(path))
	for i := range path {
		t, err := pointTangent(path, i)
		if err != nil {
			return nil, err
		}
		tangents[i] = t
	}

	frames := make([]Frame, len(path))
	frames[0] = Frame{
		Origin:  path[0],
		Tangent: tangents[0],
		Normal:  perpendicular(tangents[0]),
	}
	frames[0].Binormal = frames[0].Tangent.Cross(frames[0].Normal)

	for i := 0; i < len(path)-1; i++ {
		// First reflection: across the plane bisecting the segment. This
		// carries the previous frame to the next origin.
		v1 := path[i+1].Sub(path[i])
		c1 := v1.Dot(v1)
		if c1 == 0 {
			return nil, errors.Errorf("duplicate path points at %d and %d", i, i+1)
		}
		rl := reflect(frames[i].Normal, v1, c1)
		tl := reflect(frames[i].Tangent, v1, c1)

		// Second reflection: align the carried tangent with the true next
		// tangent. What it does to the normal is exactly the minimal rotation.
		v2 := tangents[i+1].Sub(tl)
		c2 := v2.Dot(v2)
		normal := rl
		if c2 > 0 {
			normal = reflect(rl, v2, c2)
		}

		frames[i+1] = Frame{
			Origin:   path[i+1],
			Tangent:  tangents[i+1],
			Normal:   normal,
			Binormal: tangents[i+1].Cross(normal),
		}
	}
	return frames, nil
}

// To reflects v across the plane through the origin with (unnormalized)
// normal n, where c is n's squared length.
func reflect(v, n math32.Vector3, c float32) math32.Vector3 {
	return v.Sub(n.MulScalar(2 / c * v.Dot(n)))
}

// Tangent at a path point: central difference in the interior, one sided at
// the ends.
func pointTangent(path []math32.Vector3, i int) (math32.Vector3, error) {
	var d math32.Vector3
	switch {
	case i == 0:
		d = path[1].Sub(path[0])
	case i == len(path)-1:
		d = path[i].Sub(path[i-1])
	default:
		d = path[i+1].Sub(path[i-1])
	}
	if d.Length() == 0 {
		return d, errors.Errorf("degenerate tangent at path point %d", i)
	}
	return d.Normal(), nil
}

// An arbitrary unit vector orthogonal to t, built from whichever axis t is
// least aligned with.
func perpendicular(t math32.Vector3) math32.Vector3 {
	axis := math32.Vec3(1, 0, 0)
	ax, ay, az := math32.Abs(t.X), math32.Abs(t.Y), math32.Abs(t.Z)
	if ay <= ax && ay <= az {
		axis = math32.Vec3(0, 1, 0)
	} else if az <= ax && az <= ay {
		axis = math32.Vec3(0, 0, 1)
	}
	return t.Cross(axis).Normal()
}
