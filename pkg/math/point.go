package math

import "fmt"

// Point is a 2D integer coordinate.
type Point struct {
	X, Y int
}

// PointZero is the origin.
var PointZero = Point{}

// NewPoint returns Point{x, y}.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// PointFromScalar returns Point{v, v}.
func PointFromScalar(v int) Point {
	return Point{X: v, Y: v}
}

// Add returns p + o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p - o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Mul multiplies componentwise.
func (p Point) Mul(o Point) Point { return Point{p.X * o.X, p.Y * o.Y} }

// Div divides componentwise. It panics on a zero component in o.
func (p Point) Div(o Point) Point { return Point{p.X / o.X, p.Y / o.Y} }

// ToVec2 converts to a float vector.
func (p Point) ToVec2() Vec2 {
	return Vec2{float32(p.X), float32(p.Y)}
}

// Deconstruct returns the components.
func (p Point) Deconstruct() (x, y int) {
	return p.X, p.Y
}

func (p Point) String() string {
	return fmt.Sprintf("{X:%d Y:%d}", p.X, p.Y)
}
