// Package math provides math types and functions for game development.
package math

import (
	"fmt"
	gomath "math"

	"github.com/chewxy/math32"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

var (
	Vec2Zero  = Vec2{0, 0}
	Vec2One   = Vec2{1, 1}
	Vec2UnitX = Vec2{1, 0}
	Vec2UnitY = Vec2{0, 1}
)

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul returns the componentwise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns the componentwise quotient. Division by zero yields ±Inf.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// DivScalar returns v / s. Division by zero yields ±Inf.
func (v Vec2) DivScalar(s float32) Vec2 {
	inv := 1 / s
	return Vec2{v.X * inv, v.Y * inv}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero reports whether every component is zero.
func (v Vec2) IsZero() bool {
	return v == Vec2{}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance to another point.
func (v Vec2) DistanceSquared(other Vec2) float32 {
	return v.Sub(other).LengthSquared()
}

// Min returns the componentwise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// Max returns the componentwise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// Clamp restricts each component to [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

// Floor rounds each component down.
func (v Vec2) Floor() Vec2 {
	return Vec2{math32.Floor(v.X), math32.Floor(v.Y)}
}

// Ceiling rounds each component up.
func (v Vec2) Ceiling() Vec2 {
	return Vec2{math32.Ceil(v.X), math32.Ceil(v.Y)}
}

// Round rounds each component to the nearest integer, halves away from zero.
func (v Vec2) Round() Vec2 {
	return Vec2{round(v.X), round(v.Y)}
}

// Lerp linearly interpolates between v and other.
func (v Vec2) Lerp(other Vec2, amount float32) Vec2 {
	return Vec2{Lerp(v.X, other.X, amount), Lerp(v.Y, other.Y, amount)}
}

// LerpPrecise is Lerp using the LerpPrecise formula.
func (v Vec2) LerpPrecise(other Vec2, amount float32) Vec2 {
	return Vec2{LerpPrecise(v.X, other.X, amount), LerpPrecise(v.Y, other.Y, amount)}
}

// Reflect reflects v off a surface with the given normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	d := 2 * v.Dot(normal)
	return Vec2{v.X - normal.X*d, v.Y - normal.Y*d}
}

// TransformMat4 transforms v as a point (z = 0, w = 1).
func (v Vec2) TransformMat4(m Mat4) Vec2 {
	return Vec2{
		v.X*m.M11 + v.Y*m.M21 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// TransformNormal transforms v as a direction, ignoring translation.
func (v Vec2) TransformNormal(m Mat4) Vec2 {
	return Vec2{
		v.X*m.M11 + v.Y*m.M21,
		v.X*m.M12 + v.Y*m.M22,
	}
}

// TransformQuat rotates v by q.
func (v Vec2) TransformQuat(q Quat) Vec2 {
	r := Vec3{v.X, v.Y, 0}.TransformQuat(q)
	return Vec2{r.X, r.Y}
}

// ToPoint truncates the components toward zero.
func (v Vec2) ToPoint() Point {
	return Point{int(v.X), int(v.Y)}
}

func (v Vec2) String() string {
	return fmt.Sprintf("{X:%g Y:%g}", v.X, v.Y)
}

// BarycentricVec2 applies Barycentric to each component.
func BarycentricVec2(value1, value2, value3 Vec2, amount1, amount2 float32) Vec2 {
	return Vec2{
		Barycentric(value1.X, value2.X, value3.X, amount1, amount2),
		Barycentric(value1.Y, value2.Y, value3.Y, amount1, amount2),
	}
}

// CatmullRomVec2 applies CatmullRom to each component.
func CatmullRomVec2(value1, value2, value3, value4 Vec2, amount float32) Vec2 {
	return Vec2{
		CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount),
	}
}

// HermiteVec2 applies Hermite to each component.
func HermiteVec2(value1, tangent1, value2, tangent2 Vec2, amount float32) Vec2 {
	return Vec2{
		Hermite(value1.X, tangent1.X, value2.X, tangent2.X, amount),
		Hermite(value1.Y, tangent1.Y, value2.Y, tangent2.Y, amount),
	}
}

// SmoothStepVec2 applies SmoothStep to each component.
func SmoothStepVec2(value1, value2 Vec2, amount float32) Vec2 {
	return Vec2{
		SmoothStep(value1.X, value2.X, amount),
		SmoothStep(value1.Y, value2.Y, amount),
	}
}

// round rounds half away from zero.
func round(x float32) float32 {
	return float32(gomath.Round(float64(x)))
}
