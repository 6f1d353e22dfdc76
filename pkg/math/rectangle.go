package math

import "fmt"

// Rectangle is an integer rectangle with its origin at the top-left corner.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// RectangleFromPoints builds a rectangle from a location and a size.
func RectangleFromPoints(location, size Point) Rectangle {
	return Rectangle{X: location.X, Y: location.Y, Width: size.X, Height: size.Y}
}

// Left returns X.
func (r Rectangle) Left() int { return r.X }

// Right returns X + Width.
func (r Rectangle) Right() int { return r.X + r.Width }

// Top returns Y.
func (r Rectangle) Top() int { return r.Y }

// Bottom returns Y + Height.
func (r Rectangle) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether all fields are zero.
func (r Rectangle) IsEmpty() bool {
	return r == Rectangle{}
}

// Location returns the top-left corner.
func (r Rectangle) Location() Point { return Point{r.X, r.Y} }

// Size returns Width and Height as a point.
func (r Rectangle) Size() Point { return Point{r.Width, r.Height} }

// Center returns the integer center.
func (r Rectangle) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// ContainsXY reports whether (x, y) lies inside. Right and Bottom are exclusive.
func (r Rectangle) ContainsXY(x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}

// ContainsPoint reports whether p lies inside.
func (r Rectangle) ContainsPoint(p Point) bool {
	return r.ContainsXY(p.X, p.Y)
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	return r.X <= o.X && o.Right() <= r.Right() && r.Y <= o.Y && o.Bottom() <= r.Bottom()
}

// Intersects reports whether the rectangles overlap.
func (r Rectangle) Intersects(o Rectangle) bool {
	return o.Left() < r.Right() && r.Left() < o.Right() &&
		o.Top() < r.Bottom() && r.Top() < o.Bottom()
}

// Offset moves the rectangle by (dx, dy).
func (r Rectangle) Offset(dx, dy int) Rectangle {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows the rectangle by h on the left and right and by v on the top and bottom.
func (r Rectangle) Inflate(h, v int) Rectangle {
	r.X -= h
	r.Y -= v
	r.Width += 2 * h
	r.Height += 2 * v
	return r
}

func (r Rectangle) String() string {
	return fmt.Sprintf("{X:%d Y:%d Width:%d Height:%d}", r.X, r.Y, r.Width, r.Height)
}

// IntersectRectangles returns the overlapping area, or an empty rectangle.
func IntersectRectangles(a, b Rectangle) Rectangle {
	if !a.Intersects(b) {
		return Rectangle{}
	}
	left := max(a.X, b.X)
	top := max(a.Y, b.Y)
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// UnionRectangles returns the smallest rectangle containing a and b.
func UnionRectangles(a, b Rectangle) Rectangle {
	left := min(a.X, b.X)
	top := min(a.Y, b.Y)
	right := max(a.Right(), b.Right())
	bottom := max(a.Bottom(), b.Bottom())
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}
