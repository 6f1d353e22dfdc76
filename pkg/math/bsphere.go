package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// BoundingSphere is a sphere used as a bounding volume.
type BoundingSphere struct {
	Center Vec3
	Radius float32
}

// NewBoundingSphere returns a sphere with the given center and radius.
func NewBoundingSphere(center Vec3, radius float32) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

// BoundingSphereFromBox returns the sphere passing through the corners of box.
func BoundingSphereFromBox(box BoundingBox) BoundingSphere {
	c := box.Center()
	return BoundingSphere{Center: c, Radius: c.Distance(box.Max)}
}

// BoundingSphereFromPoints returns a sphere containing all points.
// The sphere starts from the most distant pair of axis extremes and grows
// to cover any point left outside, so it is close to but not always the minimum.
func BoundingSphereFromPoints(points []Vec3) (BoundingSphere, error) {
	if len(points) == 0 {
		return BoundingSphere{}, ErrNoPoints
	}

	minX, maxX := points[0], points[0]
	minY, maxY := points[0], points[0]
	minZ, maxZ := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < minX.X {
			minX = p
		}
		if p.X > maxX.X {
			maxX = p
		}
		if p.Y < minY.Y {
			minY = p
		}
		if p.Y > maxY.Y {
			maxY = p
		}
		if p.Z < minZ.Z {
			minZ = p
		}
		if p.Z > maxZ.Z {
			maxZ = p
		}
	}

	lo, hi := minX, maxX
	span := maxX.DistanceSquared(minX)
	if d := maxY.DistanceSquared(minY); d > span {
		lo, hi, span = minY, maxY, d
	}
	if d := maxZ.DistanceSquared(minZ); d > span {
		lo, hi, span = minZ, maxZ, d
	}

	center := lo.Add(hi).Scale(0.5)
	radius := math32.Sqrt(span) * 0.5

	for _, p := range points {
		diff := p.Sub(center)
		distSq := diff.LengthSquared()
		if distSq <= radius*radius {
			continue
		}
		dist := math32.Sqrt(distSq)
		back := center.Sub(diff.Scale(radius / dist))
		center = back.Add(p).Scale(0.5)
		radius = p.Distance(back) * 0.5
	}

	return BoundingSphere{Center: center, Radius: radius}, nil
}

// MergeBoundingSpheres returns a sphere containing both a and b.
func MergeBoundingSpheres(a, b BoundingSphere) BoundingSphere {
	v := b.Center.Sub(a.Center)
	d := v.Length()

	if d <= a.Radius+b.Radius {
		if d <= a.Radius-b.Radius {
			return a
		}
		if d <= b.Radius-a.Radius {
			return b
		}
	}

	left := max(a.Radius-d, b.Radius)
	right := max(a.Radius+d, b.Radius)
	v = v.Add(v.Scale((left - right) / (2 * v.Length())))

	return BoundingSphere{
		Center: a.Center.Add(v),
		Radius: (left + right) * 0.5,
	}
}

// ContainsPoint reports whether p lies inside, on or outside the sphere.
func (s BoundingSphere) ContainsPoint(p Vec3) ContainmentType {
	distSq := p.DistanceSquared(s.Center)
	r2 := s.Radius * s.Radius
	switch {
	case distSq > r2:
		return Disjoint
	case distSq < r2:
		return Contains
	default:
		return Intersects
	}
}

// ContainsSphere reports how o relates to s.
func (s BoundingSphere) ContainsSphere(o BoundingSphere) ContainmentType {
	d := s.Center.Distance(o.Center)
	switch {
	case d > s.Radius+o.Radius:
		return Disjoint
	case d <= s.Radius-o.Radius:
		return Contains
	default:
		return Intersects
	}
}

// ContainsBox returns Contains when every corner of box lies inside the sphere.
func (s BoundingSphere) ContainsBox(box BoundingBox) ContainmentType {
	if !box.IntersectsSphere(s) {
		return Disjoint
	}

	r2 := s.Radius * s.Radius
	var c [8]Vec3
	box.CornersInto(&c)
	for _, p := range c {
		if p.DistanceSquared(s.Center) > r2 {
			return Intersects
		}
	}
	return Contains
}

// ContainsFrustum reports how f relates to s.
func (s BoundingSphere) ContainsFrustum(f *BoundingFrustum) ContainmentType {
	if !f.IntersectsSphere(s) {
		return Disjoint
	}

	r2 := s.Radius * s.Radius
	for _, p := range f.Corners() {
		if p.DistanceSquared(s.Center) > r2 {
			return Intersects
		}
	}
	return Contains
}

// IntersectsBox reports whether box overlaps the sphere.
func (s BoundingSphere) IntersectsBox(box BoundingBox) bool {
	return box.IntersectsSphere(s)
}

// IntersectsSphere reports whether the spheres overlap or touch.
func (s BoundingSphere) IntersectsSphere(o BoundingSphere) bool {
	r := s.Radius + o.Radius
	return s.Center.DistanceSquared(o.Center) <= r*r
}

// IntersectsPlane classifies the sphere against p.
func (s BoundingSphere) IntersectsPlane(p Plane) PlaneIntersectionType {
	d := p.DotCoordinate(s.Center)
	switch {
	case d > s.Radius:
		return Front
	case d < -s.Radius:
		return Back
	default:
		return Intersecting
	}
}

// IntersectsFrustum reports whether the sphere overlaps f.
func (s BoundingSphere) IntersectsFrustum(f *BoundingFrustum) bool {
	return f.IntersectsSphere(s)
}

// IntersectsRay returns the distance along r to the sphere.
func (s BoundingSphere) IntersectsRay(r Ray) (float32, bool) {
	return r.IntersectsSphere(s)
}

// Transform moves the center by m and scales the radius by the largest
// axis scale of m.
func (s BoundingSphere) Transform(m Mat4) BoundingSphere {
	sx := m.M11*m.M11 + m.M12*m.M12 + m.M13*m.M13
	sy := m.M21*m.M21 + m.M22*m.M22 + m.M23*m.M23
	sz := m.M31*m.M31 + m.M32*m.M32 + m.M33*m.M33

	return BoundingSphere{
		Center: s.Center.TransformMat4(m),
		Radius: s.Radius * math32.Sqrt(max(sx, sy, sz)),
	}
}

func (s BoundingSphere) String() string {
	return fmt.Sprintf("{Center:%v Radius:%g}", s.Center, s.Radius)
}
