package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a 4-component vector.
// Equality is Go struct equality: two vectors are equal iff all four components are.
type Vec4 struct {
	X, Y, Z, W float32
}

var (
	Vec4Zero  = Vec4{0, 0, 0, 0}
	Vec4One   = Vec4{1, 1, 1, 1}
	Vec4UnitX = Vec4{1, 0, 0, 0}
	Vec4UnitY = Vec4{0, 1, 0, 0}
	Vec4UnitZ = Vec4{0, 0, 1, 0}
	Vec4UnitW = Vec4{0, 0, 0, 1}
)

// Vec4FromVec3 extends v with the given w.
func Vec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul returns the componentwise product.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns the componentwise quotient. Division by zero yields ±Inf.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar returns v / s. Division by zero yields ±Inf.
func (v Vec4) DivScalar(s float32) Vec4 {
	inv := 1 / s
	return Vec4{v.X * inv, v.Y * inv, v.Z * inv, v.W * inv}
}

// Negate returns -v.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude.
func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return v.Scale(1 / l)
}

// IsZero reports whether every component is zero.
func (v Vec4) IsZero() bool {
	return v == Vec4{}
}

// Distance returns the distance to another point.
func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance to another point.
func (v Vec4) DistanceSquared(other Vec4) float32 {
	return v.Sub(other).LengthSquared()
}

// Min returns the componentwise minimum.
func (v Vec4) Min(other Vec4) Vec4 {
	return Vec4{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z), Min(v.W, other.W)}
}

// Max returns the componentwise maximum.
func (v Vec4) Max(other Vec4) Vec4 {
	return Vec4{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z), Max(v.W, other.W)}
}

// Clamp restricts each component to [lo, hi].
func (v Vec4) Clamp(lo, hi Vec4) Vec4 {
	return Vec4{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
		Clamp(v.W, lo.W, hi.W),
	}
}

// Floor rounds each component down.
func (v Vec4) Floor() Vec4 {
	return Vec4{math32.Floor(v.X), math32.Floor(v.Y), math32.Floor(v.Z), math32.Floor(v.W)}
}

// Ceiling rounds each component up.
func (v Vec4) Ceiling() Vec4 {
	return Vec4{math32.Ceil(v.X), math32.Ceil(v.Y), math32.Ceil(v.Z), math32.Ceil(v.W)}
}

// Round rounds each component to the nearest integer, halves away from zero.
func (v Vec4) Round() Vec4 {
	return Vec4{round(v.X), round(v.Y), round(v.Z), round(v.W)}
}

// Lerp linearly interpolates between v and other.
func (v Vec4) Lerp(other Vec4, amount float32) Vec4 {
	return Vec4{
		Lerp(v.X, other.X, amount),
		Lerp(v.Y, other.Y, amount),
		Lerp(v.Z, other.Z, amount),
		Lerp(v.W, other.W, amount),
	}
}

// LerpPrecise is Lerp using the LerpPrecise formula.
func (v Vec4) LerpPrecise(other Vec4, amount float32) Vec4 {
	return Vec4{
		LerpPrecise(v.X, other.X, amount),
		LerpPrecise(v.Y, other.Y, amount),
		LerpPrecise(v.Z, other.Z, amount),
		LerpPrecise(v.W, other.W, amount),
	}
}

// Reflect reflects v off a surface with the given normal.
func (v Vec4) Reflect(normal Vec4) Vec4 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// TransformMat4 returns v * m.
func (v Vec4) TransformMat4(m Mat4) Vec4 {
	return Vec4{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// TransformQuat rotates the xyz part by q and keeps w.
func (v Vec4) TransformQuat(q Quat) Vec4 {
	return Vec4FromVec3(v.XYZ().TransformQuat(q), v.W)
}

func (v Vec4) String() string {
	return fmt.Sprintf("{X:%g Y:%g Z:%g W:%g}", v.X, v.Y, v.Z, v.W)
}

// TransformVec2ToVec4 transforms (x, y, 0, 1) by m.
func TransformVec2ToVec4(v Vec2, m Mat4) Vec4 {
	return Vec4{v.X, v.Y, 0, 1}.TransformMat4(m)
}

// TransformVec3ToVec4 transforms (x, y, z, 1) by m.
func TransformVec3ToVec4(v Vec3, m Mat4) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}.TransformMat4(m)
}

// RotateVec2ToVec4 rotates (x, y, 0) by q and sets w to 1.
func RotateVec2ToVec4(v Vec2, q Quat) Vec4 {
	return Vec4FromVec3(Vec3{v.X, v.Y, 0}.TransformQuat(q), 1)
}

// RotateVec3ToVec4 rotates v by q and sets w to 1.
func RotateVec3ToVec4(v Vec3, q Quat) Vec4 {
	return Vec4FromVec3(v.TransformQuat(q), 1)
}

// TransformVec4s transforms src into dst, which must be at least as long as src.
func TransformVec4s(dst, src []Vec4, m Mat4) {
	for i, v := range src {
		dst[i] = v.TransformMat4(m)
	}
}

// RotateVec4s rotates src into dst.
func RotateVec4s(dst, src []Vec4, q Quat) {
	for i, v := range src {
		dst[i] = v.TransformQuat(q)
	}
}

// BarycentricVec4 applies Barycentric to each component.
func BarycentricVec4(value1, value2, value3 Vec4, amount1, amount2 float32) Vec4 {
	return Vec4{
		Barycentric(value1.X, value2.X, value3.X, amount1, amount2),
		Barycentric(value1.Y, value2.Y, value3.Y, amount1, amount2),
		Barycentric(value1.Z, value2.Z, value3.Z, amount1, amount2),
		Barycentric(value1.W, value2.W, value3.W, amount1, amount2),
	}
}

// CatmullRomVec4 applies CatmullRom to each component.
func CatmullRomVec4(value1, value2, value3, value4 Vec4, amount float32) Vec4 {
	return Vec4{
		CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount),
		CatmullRom(value1.Z, value2.Z, value3.Z, value4.Z, amount),
		CatmullRom(value1.W, value2.W, value3.W, value4.W, amount),
	}
}

// HermiteVec4 applies Hermite to each component.
func HermiteVec4(value1, tangent1, value2, tangent2 Vec4, amount float32) Vec4 {
	return Vec4{
		Hermite(value1.X, tangent1.X, value2.X, tangent2.X, amount),
		Hermite(value1.Y, tangent1.Y, value2.Y, tangent2.Y, amount),
		Hermite(value1.Z, tangent1.Z, value2.Z, tangent2.Z, amount),
		Hermite(value1.W, tangent1.W, value2.W, tangent2.W, amount),
	}
}

// SmoothStepVec4 applies SmoothStep to each component.
func SmoothStepVec4(value1, value2 Vec4, amount float32) Vec4 {
	return Vec4{
		SmoothStep(value1.X, value2.X, amount),
		SmoothStep(value1.Y, value2.Y, amount),
		SmoothStep(value1.Z, value2.Z, amount),
		SmoothStep(value1.W, value2.W, amount),
	}
}
