// Package math provides math types and functions for game development.
package math

import (
	"fmt"
	gomath "math"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Named directions. Forward is -Z (right-handed).
var (
	Vec3Zero     = Vec3{0, 0, 0}
	Vec3One      = Vec3{1, 1, 1}
	Vec3UnitX    = Vec3{1, 0, 0}
	Vec3UnitY    = Vec3{0, 1, 0}
	Vec3UnitZ    = Vec3{0, 0, 1}
	Vec3Up       = Vec3{0, 1, 0}
	Vec3Down     = Vec3{0, -1, 0}
	Vec3Right    = Vec3{1, 0, 0}
	Vec3Left     = Vec3{-1, 0, 0}
	Vec3Forward  = Vec3{0, 0, -1}
	Vec3Backward = Vec3{0, 0, 1}
)

// MaxVec3 and MinVec3 seed min/max accumulation over point sets.
var (
	MaxVec3 = Vec3{gomath.MaxFloat32, gomath.MaxFloat32, gomath.MaxFloat32}
	MinVec3 = Vec3{-gomath.MaxFloat32, -gomath.MaxFloat32, -gomath.MaxFloat32}
)

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the componentwise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the componentwise quotient. Division by zero yields ±Inf.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar returns v / s. Division by zero yields ±Inf.
func (v Vec3) DivScalar(s float32) Vec3 {
	inv := 1 / s
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude.
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// IsZero reports whether every component is zero.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance to another point.
func (v Vec3) DistanceSquared(other Vec3) float32 {
	return v.Sub(other).LengthSquared()
}

// Min returns the componentwise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

// Max returns the componentwise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

// Clamp restricts each component to [lo, hi].
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
	}
}

// Floor rounds each component down.
func (v Vec3) Floor() Vec3 {
	return Vec3{math32.Floor(v.X), math32.Floor(v.Y), math32.Floor(v.Z)}
}

// Ceiling rounds each component up.
func (v Vec3) Ceiling() Vec3 {
	return Vec3{math32.Ceil(v.X), math32.Ceil(v.Y), math32.Ceil(v.Z)}
}

// Round rounds each component to the nearest integer, halves away from zero.
func (v Vec3) Round() Vec3 {
	return Vec3{round(v.X), round(v.Y), round(v.Z)}
}

// Lerp linearly interpolates between v and other.
func (v Vec3) Lerp(other Vec3, amount float32) Vec3 {
	return Vec3{
		Lerp(v.X, other.X, amount),
		Lerp(v.Y, other.Y, amount),
		Lerp(v.Z, other.Z, amount),
	}
}

// LerpPrecise is Lerp using the LerpPrecise formula.
func (v Vec3) LerpPrecise(other Vec3, amount float32) Vec3 {
	return Vec3{
		LerpPrecise(v.X, other.X, amount),
		LerpPrecise(v.Y, other.Y, amount),
		LerpPrecise(v.Z, other.Z, amount),
	}
}

// Reflect reflects v off a surface with the given normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	d := 2 * v.Dot(normal)
	return v.Sub(normal.Scale(d))
}

// TransformMat4 transforms v as a point (w = 1). The resulting w is dropped;
// use TransformVec3ToVec4 when the projective component matters.
func (v Vec3) TransformMat4(m Mat4) Vec3 {
	return Vec3{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformCoordinate transforms v as a point and divides by the resulting w.
func (v Vec3) TransformCoordinate(m Mat4) Vec3 {
	r := TransformVec3ToVec4(v, m)
	if r.W == 0 || r.W == 1 {
		return Vec3{r.X, r.Y, r.Z}
	}
	return Vec3{r.X / r.W, r.Y / r.W, r.Z / r.W}
}

// TransformNormal transforms v as a direction, ignoring translation.
func (v Vec3) TransformNormal(m Mat4) Vec3 {
	return Vec3{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// TransformQuat rotates v by q.
func (v Vec3) TransformQuat(q Quat) Vec3 {
	x := 2 * (q.Y*v.Z - q.Z*v.Y)
	y := 2 * (q.Z*v.X - q.X*v.Z)
	z := 2 * (q.X*v.Y - q.Y*v.X)

	return Vec3{
		v.X + x*q.W + (q.Y*z - q.Z*y),
		v.Y + y*q.W + (q.Z*x - q.X*z),
		v.Z + z*q.W + (q.X*y - q.Y*x),
	}
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{X:%g Y:%g Z:%g}", v.X, v.Y, v.Z)
}

// TransformVec3s transforms src as points into dst, which must be at least as long as src.
func TransformVec3s(dst, src []Vec3, m Mat4) {
	for i, v := range src {
		dst[i] = v.TransformMat4(m)
	}
}

// TransformNormals transforms src as directions into dst.
func TransformNormals(dst, src []Vec3, m Mat4) {
	for i, v := range src {
		dst[i] = v.TransformNormal(m)
	}
}

// BarycentricVec3 applies Barycentric to each component.
func BarycentricVec3(value1, value2, value3 Vec3, amount1, amount2 float32) Vec3 {
	return Vec3{
		Barycentric(value1.X, value2.X, value3.X, amount1, amount2),
		Barycentric(value1.Y, value2.Y, value3.Y, amount1, amount2),
		Barycentric(value1.Z, value2.Z, value3.Z, amount1, amount2),
	}
}

// CatmullRomVec3 applies CatmullRom to each component.
func CatmullRomVec3(value1, value2, value3, value4 Vec3, amount float32) Vec3 {
	return Vec3{
		CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount),
		CatmullRom(value1.Z, value2.Z, value3.Z, value4.Z, amount),
	}
}

// HermiteVec3 applies Hermite to each component.
func HermiteVec3(value1, tangent1, value2, tangent2 Vec3, amount float32) Vec3 {
	return Vec3{
		Hermite(value1.X, tangent1.X, value2.X, tangent2.X, amount),
		Hermite(value1.Y, tangent1.Y, value2.Y, tangent2.Y, amount),
		Hermite(value1.Z, tangent1.Z, value2.Z, tangent2.Z, amount),
	}
}

// SmoothStepVec3 applies SmoothStep to each component.
func SmoothStepVec3(value1, value2 Vec3, amount float32) Vec3 {
	return Vec3{
		SmoothStep(value1.X, value2.X, amount),
		SmoothStep(value1.Y, value2.Y, amount),
		SmoothStep(value1.Z, value2.Z, amount),
	}
}
