package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Plane is the set of points P with dot(Normal, P) + D == 0.
// Points with a positive signed distance are in front of the plane.
type Plane struct {
	Normal Vec3
	D      float32
}

// NewPlane returns a plane from a normal and distance.
func NewPlane(normal Vec3, d float32) Plane {
	return Plane{Normal: normal, D: d}
}

// PlaneFromVec4 returns a plane with Normal = v.XYZ and D = v.W.
func PlaneFromVec4(v Vec4) Plane {
	return Plane{Normal: Vec3{v.X, v.Y, v.Z}, D: v.W}
}

// PlaneFromComponents returns the plane ax + by + cz + d = 0.
func PlaneFromComponents(a, b, c, d float32) Plane {
	return Plane{Normal: Vec3{a, b, c}, D: d}
}

// PlaneFromPointNormal returns the plane through point with the given normal.
func PlaneFromPointNormal(point, normal Vec3) Plane {
	return Plane{Normal: normal, D: -point.Dot(normal)}
}

// PlaneFromPoints returns the plane through a, b and c with a normal
// following the right-hand rule. Collinear points return ErrDegenerate.
func PlaneFromPoints(a, b, c Vec3) (Plane, error) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.IsZero() {
		return Plane{}, ErrDegenerate
	}
	n = n.Normalize()
	return Plane{Normal: n, D: -n.Dot(a)}, nil
}

// Dot returns dot(Normal, v.XYZ) + D*v.W.
func (p Plane) Dot(v Vec4) float32 {
	return p.Normal.X*v.X + p.Normal.Y*v.Y + p.Normal.Z*v.Z + p.D*v.W
}

// DotCoordinate returns the signed distance of point, scaled by |Normal|.
func (p Plane) DotCoordinate(point Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// DotNormal returns dot(Normal, v).
func (p Plane) DotNormal(v Vec3) float32 {
	return p.Normal.Dot(v)
}

// ClassifyPoint returns the signed distance of point from the plane.
func (p Plane) ClassifyPoint(point Vec3) float32 {
	return p.DotCoordinate(point)
}

// PerpendicularDistance returns |dot(Normal, point)| / |Normal|.
// D is not included; use ClassifyPoint for the distance to the plane itself.
func (p Plane) PerpendicularDistance(point Vec3) float32 {
	return math32.Abs(p.Normal.Dot(point)) / p.Normal.Length()
}

// Normalize scales the plane so the normal has unit length.
// A zero normal leaves the plane unchanged.
func (p Plane) Normalize() Plane {
	l := p.Normal.Length()
	if l == 0 {
		return p
	}
	inv := 1 / l
	return Plane{Normal: p.Normal.Scale(inv), D: p.D * inv}
}

// Transform applies m to the plane by multiplying (Normal, D) with the
// inverse transpose of m. A singular m returns ErrSingularMatrix.
func (p Plane) Transform(m Mat4) (Plane, error) {
	inv, err := m.Invert()
	if err != nil {
		return p, fmt.Errorf("transform plane: %w", err)
	}
	v := Vec4{p.Normal.X, p.Normal.Y, p.Normal.Z, p.D}.TransformMat4(inv.Transpose())
	return PlaneFromVec4(v), nil
}

// TransformQuat rotates the normal by q and keeps D.
func (p Plane) TransformQuat(q Quat) Plane {
	return Plane{Normal: p.Normal.TransformQuat(q), D: p.D}
}

// IntersectsPoint classifies point as Front, Back or Intersecting (on the plane).
func (p Plane) IntersectsPoint(point Vec3) PlaneIntersectionType {
	d := p.DotCoordinate(point)
	switch {
	case d > 0:
		return Front
	case d < 0:
		return Back
	default:
		return Intersecting
	}
}

// IntersectsBox classifies box against the plane.
func (p Plane) IntersectsBox(box BoundingBox) PlaneIntersectionType {
	return box.IntersectsPlane(p)
}

// IntersectsSphere classifies sphere against the plane.
func (p Plane) IntersectsSphere(sphere BoundingSphere) PlaneIntersectionType {
	return sphere.IntersectsPlane(p)
}

// IntersectsFrustum classifies frustum against the plane.
func (p Plane) IntersectsFrustum(frustum *BoundingFrustum) PlaneIntersectionType {
	return frustum.IntersectsPlane(p)
}

// IntersectsRay returns the distance along r to the plane.
func (p Plane) IntersectsRay(r Ray) (float32, bool) {
	return r.IntersectsPlane(p)
}

// Deconstruct returns the normal and distance.
func (p Plane) Deconstruct() (normal Vec3, d float32) {
	return p.Normal, p.D
}

func (p Plane) String() string {
	return fmt.Sprintf("{Normal:%v D:%g}", p.Normal, p.D)
}
