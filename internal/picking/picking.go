// Package picking provides ray casting and object picking utilities.
package picking

import (
	"fmt"

	"github.com/Faultbox/midgard-math/pkg/math"
)

// Target is a pickable volume. Sphere is tested instead of Box when set.
type Target struct {
	Name   string
	Box    math.BoundingBox
	Sphere *math.BoundingSphere
}

// Hit describes the nearest target struck by a ray.
type Hit struct {
	Index    int // Position in the targets slice
	Name     string
	Distance float32
	Point    math.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// x, y are pixel coordinates inside vp. The ray starts on the near plane
// and its direction is normalized.
func ScreenToRay(x, y float32, vp math.Viewport, view, proj math.Mat4) (math.Ray, error) {
	world := math.Identity()

	nearPoint, err := vp.Unproject(math.Vec3{X: x, Y: y, Z: vp.MinDepth}, proj, view, world)
	if err != nil {
		return math.Ray{}, fmt.Errorf("screen to ray: %w", err)
	}
	farPoint, err := vp.Unproject(math.Vec3{X: x, Y: y, Z: vp.MaxDepth}, proj, view, world)
	if err != nil {
		return math.Ray{}, fmt.Errorf("screen to ray: %w", err)
	}

	dir := farPoint.Sub(nearPoint)
	if dir.IsZero() {
		return math.Ray{}, fmt.Errorf("screen to ray: %w", math.ErrDegenerate)
	}

	return math.NewRay(nearPoint, dir.Normalize()), nil
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point and whether the intersection is valid.
func IntersectPlaneY(r math.Ray, planeY float32) (math.Vec3, bool) {
	t, ok := r.IntersectsPlane(math.NewPlane(math.Vec3Up, -planeY))
	if !ok {
		return math.Vec3{}, false
	}
	p := r.At(t)
	p.Y = planeY
	return p, true
}

// Nearest returns the closest target hit by r.
func Nearest(r math.Ray, targets []Target) (Hit, bool) {
	best := Hit{Index: -1}

	for i, target := range targets {
		var (
			t  float32
			ok bool
		)
		if target.Sphere != nil {
			t, ok = r.IntersectsSphere(*target.Sphere)
		} else {
			t, ok = r.IntersectsBox(target.Box)
		}
		if !ok {
			continue
		}
		if best.Index < 0 || t < best.Distance {
			best = Hit{Index: i, Name: target.Name, Distance: t}
		}
	}

	if best.Index < 0 {
		return Hit{}, false
	}
	best.Point = r.At(best.Distance)
	return best, true
}

// NewBox creates a box from two corners, swapping components so Min <= Max.
func NewBox(a, b math.Vec3) math.BoundingBox {
	return math.NewBoundingBox(a.Min(b), a.Max(b))
}

// TransformBox moves a local box by scale then position into world space.
// Negative scales mirror the box; the result is re-ordered.
func TransformBox(local math.BoundingBox, position, scale math.Vec3) math.BoundingBox {
	return NewBox(
		local.Min.Mul(scale).Add(position),
		local.Max.Mul(scale).Add(position),
	)
}
