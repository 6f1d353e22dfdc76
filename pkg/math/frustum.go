package math

import (
	"fmt"
	gomath "math"

	"github.com/chewxy/math32"
)

// Frustum plane indices.
const (
	PlaneNear = iota
	PlaneFar
	PlaneLeft
	PlaneRight
	PlaneTop
	PlaneBottom
)

const (
	// FrustumPlaneCount is the number of planes bounding a frustum.
	FrustumPlaneCount = 6
	// FrustumCornerCount is the number of frustum corners.
	FrustumCornerCount = 8
)

// BoundingFrustum is the volume described by a view-projection matrix.
// Plane normals point outward, so a point is inside when it is behind every plane.
//
// Planes and corners are derived from the matrix whenever it is set.
type BoundingFrustum struct {
	matrix  Mat4
	planes  [FrustumPlaneCount]Plane
	corners [FrustumCornerCount]Vec3
}

// NewBoundingFrustum returns the frustum of a combined view-projection matrix.
func NewBoundingFrustum(m Mat4) *BoundingFrustum {
	f := &BoundingFrustum{}
	f.SetMatrix(m)
	return f
}

// Matrix returns the matrix the frustum was built from.
func (f *BoundingFrustum) Matrix() Mat4 {
	return f.matrix
}

// SetMatrix replaces the matrix and recomputes planes and corners.
func (f *BoundingFrustum) SetMatrix(m Mat4) {
	f.matrix = m
	f.createPlanes()
	f.createCorners()
}

func (f *BoundingFrustum) createPlanes() {
	m := f.matrix
	f.planes[PlaneNear] = PlaneFromComponents(-m.M13, -m.M23, -m.M33, -m.M43)
	f.planes[PlaneFar] = PlaneFromComponents(m.M13-m.M14, m.M23-m.M24, m.M33-m.M34, m.M43-m.M44)
	f.planes[PlaneLeft] = PlaneFromComponents(-m.M14-m.M11, -m.M24-m.M21, -m.M34-m.M31, -m.M44-m.M41)
	f.planes[PlaneRight] = PlaneFromComponents(m.M11-m.M14, m.M21-m.M24, m.M31-m.M34, m.M41-m.M44)
	f.planes[PlaneTop] = PlaneFromComponents(m.M12-m.M14, m.M22-m.M24, m.M32-m.M34, m.M42-m.M44)
	f.planes[PlaneBottom] = PlaneFromComponents(-m.M14-m.M12, -m.M24-m.M22, -m.M34-m.M32, -m.M44-m.M42)

	for i := range f.planes {
		f.planes[i] = f.planes[i].Normalize()
	}
}

func (f *BoundingFrustum) createCorners() {
	p := &f.planes
	f.corners[0] = intersectionPoint(p[PlaneNear], p[PlaneLeft], p[PlaneTop])
	f.corners[1] = intersectionPoint(p[PlaneNear], p[PlaneRight], p[PlaneTop])
	f.corners[2] = intersectionPoint(p[PlaneNear], p[PlaneRight], p[PlaneBottom])
	f.corners[3] = intersectionPoint(p[PlaneNear], p[PlaneLeft], p[PlaneBottom])
	f.corners[4] = intersectionPoint(p[PlaneFar], p[PlaneLeft], p[PlaneTop])
	f.corners[5] = intersectionPoint(p[PlaneFar], p[PlaneRight], p[PlaneTop])
	f.corners[6] = intersectionPoint(p[PlaneFar], p[PlaneRight], p[PlaneBottom])
	f.corners[7] = intersectionPoint(p[PlaneFar], p[PlaneLeft], p[PlaneBottom])
}

// intersectionPoint returns the point shared by three planes.
func intersectionPoint(a, b, c Plane) Vec3 {
	bc := b.Normal.Cross(c.Normal)
	ca := c.Normal.Cross(a.Normal)
	ab := a.Normal.Cross(b.Normal)

	f := -a.Normal.Dot(bc)
	v := bc.Scale(a.D).Add(ca.Scale(b.D)).Add(ab.Scale(c.D))
	return v.DivScalar(f)
}

// Plane returns the plane at index i (PlaneNear..PlaneBottom).
func (f *BoundingFrustum) Plane(i int) Plane {
	return f.planes[i]
}

// Planes returns all six planes in index order.
func (f *BoundingFrustum) Planes() [FrustumPlaneCount]Plane {
	return f.planes
}

// Near returns the near plane.
func (f *BoundingFrustum) Near() Plane { return f.planes[PlaneNear] }

// Far returns the far plane.
func (f *BoundingFrustum) Far() Plane { return f.planes[PlaneFar] }

// Left returns the left plane.
func (f *BoundingFrustum) Left() Plane { return f.planes[PlaneLeft] }

// Right returns the right plane.
func (f *BoundingFrustum) Right() Plane { return f.planes[PlaneRight] }

// Top returns the top plane.
func (f *BoundingFrustum) Top() Plane { return f.planes[PlaneTop] }

// Bottom returns the bottom plane.
func (f *BoundingFrustum) Bottom() Plane { return f.planes[PlaneBottom] }

// Corners returns the near corners (top-left, top-right, bottom-right,
// bottom-left) followed by the far corners in the same order.
func (f *BoundingFrustum) Corners() [FrustumCornerCount]Vec3 {
	return f.corners
}

// CornersInto copies the corners into dst.
func (f *BoundingFrustum) CornersInto(dst *[FrustumCornerCount]Vec3) {
	*dst = f.corners
}

// ContainsBox reports how box relates to the frustum.
func (f *BoundingFrustum) ContainsBox(box BoundingBox) ContainmentType {
	intersects := false
	for _, p := range f.planes {
		switch box.IntersectsPlane(p) {
		case Front:
			return Disjoint
		case Intersecting:
			intersects = true
		}
	}
	if intersects {
		return Intersects
	}
	return Contains
}

// ContainsSphere reports how s relates to the frustum.
func (f *BoundingFrustum) ContainsSphere(s BoundingSphere) ContainmentType {
	intersects := false
	for _, p := range f.planes {
		switch s.IntersectsPlane(p) {
		case Front:
			return Disjoint
		case Intersecting:
			intersects = true
		}
	}
	if intersects {
		return Intersects
	}
	return Contains
}

// ContainsFrustum reports how o relates to f.
func (f *BoundingFrustum) ContainsFrustum(o *BoundingFrustum) ContainmentType {
	if f.matrix == o.matrix {
		return Contains
	}

	intersects := false
	for _, p := range f.planes {
		switch o.IntersectsPlane(p) {
		case Front:
			return Disjoint
		case Intersecting:
			intersects = true
		}
	}
	if intersects {
		return Intersects
	}
	return Contains
}

// ContainsPoint returns Contains unless p lies in front of any plane.
// Points on the boundary count as contained.
func (f *BoundingFrustum) ContainsPoint(p Vec3) ContainmentType {
	for _, pl := range f.planes {
		if pl.ClassifyPoint(p) > 0 {
			return Disjoint
		}
	}
	return Contains
}

// IntersectsBox reports whether box overlaps the frustum.
func (f *BoundingFrustum) IntersectsBox(box BoundingBox) bool {
	return f.ContainsBox(box) != Disjoint
}

// IntersectsSphere reports whether s overlaps the frustum.
func (f *BoundingFrustum) IntersectsSphere(s BoundingSphere) bool {
	return f.ContainsSphere(s) != Disjoint
}

// IntersectsFrustum reports whether o overlaps f.
func (f *BoundingFrustum) IntersectsFrustum(o *BoundingFrustum) bool {
	return f.ContainsFrustum(o) != Disjoint
}

// IntersectsPlane classifies the frustum corners against p.
func (f *BoundingFrustum) IntersectsPlane(p Plane) PlaneIntersectionType {
	result := p.IntersectsPoint(f.corners[0])
	for _, c := range f.corners[1:] {
		if p.IntersectsPoint(c) != result {
			return Intersecting
		}
	}
	return result
}

// IntersectsRay returns the distance along r to where it enters the frustum.
// A ray starting inside hits at distance 0.
func (f *BoundingFrustum) IntersectsRay(r Ray) (float32, bool) {
	if f.ContainsPoint(r.Position) == Contains {
		return 0, true
	}

	tEnter := float32(0)
	tExit := float32(gomath.Inf(1))
	for _, p := range f.planes {
		den := p.Normal.Dot(r.Direction)
		dist := p.DotCoordinate(r.Position)

		if math32.Abs(den) < slabEpsilon {
			if dist > 0 {
				return 0, false
			}
			continue
		}

		t := -dist / den
		if den < 0 {
			tEnter = max(tEnter, t)
		} else {
			tExit = min(tExit, t)
		}
		if tEnter > tExit {
			return 0, false
		}
	}
	return tEnter, true
}

func (f *BoundingFrustum) String() string {
	return fmt.Sprintf("{Near:%v Far:%v Left:%v Right:%v Top:%v Bottom:%v}",
		f.planes[PlaneNear], f.planes[PlaneFar], f.planes[PlaneLeft],
		f.planes[PlaneRight], f.planes[PlaneTop], f.planes[PlaneBottom])
}
