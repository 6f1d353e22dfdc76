package math

import "fmt"

// BoundingBox is an axis-aligned box with Min <= Max on every axis.
type BoundingBox struct {
	Min, Max Vec3
}

// BoundingBoxCornerCount is the number of corners returned by Corners.
const BoundingBoxCornerCount = 8

// NewBoundingBox returns a box with the given extremes.
func NewBoundingBox(min, max Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// BoundingBoxFromPoints returns the smallest box containing all points.
// An empty slice returns ErrNoPoints.
func BoundingBoxFromPoints(points []Vec3) (BoundingBox, error) {
	return BoundingBoxFromPointRange(points, 0, len(points))
}

// BoundingBoxFromPointRange returns the box around points[index:index+count].
func BoundingBoxFromPointRange(points []Vec3, index, count int) (BoundingBox, error) {
	if count <= 0 {
		return BoundingBox{}, ErrNoPoints
	}
	if index < 0 || index+count > len(points) {
		return BoundingBox{}, fmt.Errorf("%w: [%d:%d] of %d", ErrPointRange, index, index+count, len(points))
	}

	lo, hi := MaxVec3, MinVec3
	for _, p := range points[index : index+count] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return BoundingBox{Min: lo, Max: hi}, nil
}

// MergeBoundingBoxes returns the smallest box containing a and b.
func MergeBoundingBoxes(a, b BoundingBox) BoundingBox {
	return BoundingBox{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extents returns the half-size of the box on each axis.
func (b BoundingBox) Extents() Vec3 {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Size returns Max - Min.
func (b BoundingBox) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners: the Max.Z face clockwise from its
// top-left corner, then the Min.Z face in the same order.
func (b BoundingBox) Corners() [8]Vec3 {
	var c [8]Vec3
	b.CornersInto(&c)
	return c
}

// CornersInto writes the corners into dst, in the same order as Corners.
func (b BoundingBox) CornersInto(dst *[8]Vec3) {
	dst[0] = Vec3{b.Min.X, b.Max.Y, b.Max.Z}
	dst[1] = Vec3{b.Max.X, b.Max.Y, b.Max.Z}
	dst[2] = Vec3{b.Max.X, b.Min.Y, b.Max.Z}
	dst[3] = Vec3{b.Min.X, b.Min.Y, b.Max.Z}
	dst[4] = Vec3{b.Min.X, b.Max.Y, b.Min.Z}
	dst[5] = Vec3{b.Max.X, b.Max.Y, b.Min.Z}
	dst[6] = Vec3{b.Max.X, b.Min.Y, b.Min.Z}
	dst[7] = Vec3{b.Min.X, b.Min.Y, b.Min.Z}
}

// ContainsBox reports how o relates to b.
func (b BoundingBox) ContainsBox(o BoundingBox) ContainmentType {
	if o.Max.X < b.Min.X || o.Min.X > b.Max.X ||
		o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y ||
		o.Max.Z < b.Min.Z || o.Min.Z > b.Max.Z {
		return Disjoint
	}

	if o.Min.X >= b.Min.X && o.Max.X <= b.Max.X &&
		o.Min.Y >= b.Min.Y && o.Max.Y <= b.Max.Y &&
		o.Min.Z >= b.Min.Z && o.Max.Z <= b.Max.Z {
		return Contains
	}

	return Intersects
}

// ContainsPoint returns Contains if p lies inside or on the box, Disjoint otherwise.
func (b BoundingBox) ContainsPoint(p Vec3) ContainmentType {
	if p.X < b.Min.X || p.X > b.Max.X ||
		p.Y < b.Min.Y || p.Y > b.Max.Y ||
		p.Z < b.Min.Z || p.Z > b.Max.Z {
		return Disjoint
	}
	return Contains
}

// ContainsSphere reports how s relates to b.
func (b BoundingBox) ContainsSphere(s BoundingSphere) ContainmentType {
	if !b.IntersectsSphere(s) {
		return Disjoint
	}

	c, r := s.Center, s.Radius
	if c.X-b.Min.X >= r && c.Y-b.Min.Y >= r && c.Z-b.Min.Z >= r &&
		b.Max.X-c.X >= r && b.Max.Y-c.Y >= r && b.Max.Z-c.Z >= r {
		return Contains
	}
	return Intersects
}

// IntersectsBox reports whether the boxes overlap or touch.
func (b BoundingBox) IntersectsBox(o BoundingBox) bool {
	if b.Max.X < o.Min.X || b.Min.X > o.Max.X {
		return false
	}
	if b.Max.Y < o.Min.Y || b.Min.Y > o.Max.Y {
		return false
	}
	return b.Max.Z >= o.Min.Z && b.Min.Z <= o.Max.Z
}

// IntersectsSphere reports whether s overlaps or touches the box.
func (b BoundingBox) IntersectsSphere(s BoundingSphere) bool {
	nearest := s.Center.Clamp(b.Min, b.Max)
	return s.Center.DistanceSquared(nearest) <= s.Radius*s.Radius
}

// IntersectsPlane classifies the box against p using its nearest and
// farthest corners along the plane normal.
func (b BoundingBox) IntersectsPlane(p Plane) PlaneIntersectionType {
	var pos, neg Vec3

	if p.Normal.X >= 0 {
		pos.X, neg.X = b.Max.X, b.Min.X
	} else {
		pos.X, neg.X = b.Min.X, b.Max.X
	}
	if p.Normal.Y >= 0 {
		pos.Y, neg.Y = b.Max.Y, b.Min.Y
	} else {
		pos.Y, neg.Y = b.Min.Y, b.Max.Y
	}
	if p.Normal.Z >= 0 {
		pos.Z, neg.Z = b.Max.Z, b.Min.Z
	} else {
		pos.Z, neg.Z = b.Min.Z, b.Max.Z
	}

	if p.DotCoordinate(neg) > 0 {
		return Front
	}
	if p.DotCoordinate(pos) < 0 {
		return Back
	}
	return Intersecting
}

// IntersectsFrustum reports whether the box overlaps f.
func (b BoundingBox) IntersectsFrustum(f *BoundingFrustum) bool {
	return f.IntersectsBox(b)
}

// IntersectsRay returns the distance along r to the box.
func (b BoundingBox) IntersectsRay(r Ray) (float32, bool) {
	return r.IntersectsBox(b)
}

// Transform returns the axis-aligned box around the eight transformed corners.
func (b BoundingBox) Transform(m Mat4) BoundingBox {
	var c [8]Vec3
	b.CornersInto(&c)
	TransformVec3s(c[:], c[:], m)

	lo, hi := MaxVec3, MinVec3
	for _, p := range c {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return BoundingBox{Min: lo, Max: hi}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("{Min:%v Max:%v}", b.Min, b.Max)
}
