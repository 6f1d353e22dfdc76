package math

import (
	"fmt"
	gomath "math"

	"github.com/chewxy/math32"
)

// Ray is a half-line starting at Position. Direction need not be normalized;
// distances returned by the intersection queries are in units of Direction.
type Ray struct {
	Position  Vec3
	Direction Vec3
}

const (
	// slabEpsilon is the direction component under which a ray is treated
	// as parallel to a box slab.
	slabEpsilon = 1e-6
	// planeEpsilon guards ray/plane tests against near-parallel rays and
	// small negative distances caused by rounding.
	planeEpsilon = 1e-5
)

// NewRay returns a ray from position along direction.
func NewRay(position, direction Vec3) Ray {
	return Ray{Position: position, Direction: direction}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Position.Add(r.Direction.Scale(t))
}

// IntersectsBox returns the distance to the first hit with box.
// A ray starting inside the box hits at distance 0.
func (r Ray) IntersectsBox(box BoundingBox) (float32, bool) {
	tMin := float32(-gomath.MaxFloat32)
	tMax := float32(gomath.MaxFloat32)

	pos := [3]float32{r.Position.X, r.Position.Y, r.Position.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for i := range 3 {
		if math32.Abs(dir[i]) < slabEpsilon {
			if pos[i] < lo[i] || pos[i] > hi[i] {
				return 0, false
			}
			continue
		}

		t1 := (lo[i] - pos[i]) / dir[i]
		t2 := (hi[i] - pos[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMin < 0 && tMax > 0 {
		return 0, true
	}
	if tMin < 0 {
		return 0, false
	}
	return tMin, true
}

// IntersectsSphere returns the distance to the first hit with s.
// A ray starting inside the sphere hits at distance 0.
func (r Ray) IntersectsSphere(s BoundingSphere) (float32, bool) {
	diff := s.Center.Sub(r.Position)
	diffSq := diff.LengthSquared()
	r2 := s.Radius * s.Radius

	if diffSq < r2 {
		return 0, true
	}

	along := r.Direction.Dot(diff)
	if along < 0 {
		return 0, false
	}

	dist := r2 + along*along - diffSq
	if dist < 0 {
		return 0, false
	}
	return along - math32.Sqrt(dist), true
}

// IntersectsPlane returns the distance to p. Rays parallel to the plane
// or pointing away from it miss.
func (r Ray) IntersectsPlane(p Plane) (float32, bool) {
	den := r.Direction.Dot(p.Normal)
	if math32.Abs(den) < planeEpsilon {
		return 0, false
	}

	t := (-p.D - p.Normal.Dot(r.Position)) / den
	if t < 0 {
		if t < -planeEpsilon {
			return 0, false
		}
		t = 0
	}
	return t, true
}

// IntersectsFrustum returns the distance to the first hit with f.
func (r Ray) IntersectsFrustum(f *BoundingFrustum) (float32, bool) {
	return f.IntersectsRay(r)
}

func (r Ray) String() string {
	return fmt.Sprintf("{Position:%v Direction:%v}", r.Position, r.Direction)
}
