package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix in row-major order. Vectors are rows and are
// transformed as v * M, so the translation lives in M41..M43.
//
// The field order matches the memory layout OpenGL expects for a
// column-major matrix, so &m.M11 can be uploaded without transposing.
type Mat4 struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// Mat4FromArray builds a matrix from 16 values in row-major order.
func Mat4FromArray(a [16]float32) Mat4 {
	return Mat4{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
}

// ToFloatArray returns the 16 elements in row-major order.
func (m Mat4) ToFloatArray() [16]float32 {
	return [16]float32{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// Ptr returns a pointer to the first element for graphics API upload.
func (m *Mat4) Ptr() *float32 {
	return &m.M11
}

// Right returns the first row.
func (m Mat4) Right() Vec3 { return Vec3{m.M11, m.M12, m.M13} }

// Left returns the negated first row.
func (m Mat4) Left() Vec3 { return Vec3{-m.M11, -m.M12, -m.M13} }

// Up returns the second row.
func (m Mat4) Up() Vec3 { return Vec3{m.M21, m.M22, m.M23} }

// Down returns the negated second row.
func (m Mat4) Down() Vec3 { return Vec3{-m.M21, -m.M22, -m.M23} }

// Backward returns the third row.
func (m Mat4) Backward() Vec3 { return Vec3{m.M31, m.M32, m.M33} }

// Forward returns the negated third row.
func (m Mat4) Forward() Vec3 { return Vec3{-m.M31, -m.M32, -m.M33} }

// Translation returns the fourth row.
func (m Mat4) Translation() Vec3 { return Vec3{m.M41, m.M42, m.M43} }

// SetRight sets the first row.
func (m *Mat4) SetRight(v Vec3) { m.M11, m.M12, m.M13 = v.X, v.Y, v.Z }

// SetLeft sets the first row to -v.
func (m *Mat4) SetLeft(v Vec3) { m.M11, m.M12, m.M13 = -v.X, -v.Y, -v.Z }

// SetUp sets the second row.
func (m *Mat4) SetUp(v Vec3) { m.M21, m.M22, m.M23 = v.X, v.Y, v.Z }

// SetDown sets the second row to -v.
func (m *Mat4) SetDown(v Vec3) { m.M21, m.M22, m.M23 = -v.X, -v.Y, -v.Z }

// SetBackward sets the third row.
func (m *Mat4) SetBackward(v Vec3) { m.M31, m.M32, m.M33 = v.X, v.Y, v.Z }

// SetForward sets the third row to -v.
func (m *Mat4) SetForward(v Vec3) { m.M31, m.M32, m.M33 = -v.X, -v.Y, -v.Z }

// SetTranslation sets the fourth row.
func (m *Mat4) SetTranslation(v Vec3) { m.M41, m.M42, m.M43 = v.X, v.Y, v.Z }

// Mul multiplies two matrices (m * other).
// The result applies m first, then other.
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mat4{
		M11: m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31 + m.M14*o.M41,
		M12: m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32 + m.M14*o.M42,
		M13: m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33 + m.M14*o.M43,
		M14: m.M11*o.M14 + m.M12*o.M24 + m.M13*o.M34 + m.M14*o.M44,

		M21: m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31 + m.M24*o.M41,
		M22: m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32 + m.M24*o.M42,
		M23: m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33 + m.M24*o.M43,
		M24: m.M21*o.M14 + m.M22*o.M24 + m.M23*o.M34 + m.M24*o.M44,

		M31: m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31 + m.M34*o.M41,
		M32: m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32 + m.M34*o.M42,
		M33: m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33 + m.M34*o.M43,
		M34: m.M31*o.M14 + m.M32*o.M24 + m.M33*o.M34 + m.M34*o.M44,

		M41: m.M41*o.M11 + m.M42*o.M21 + m.M43*o.M31 + m.M44*o.M41,
		M42: m.M41*o.M12 + m.M42*o.M22 + m.M43*o.M32 + m.M44*o.M42,
		M43: m.M41*o.M13 + m.M42*o.M23 + m.M43*o.M33 + m.M44*o.M43,
		M44: m.M41*o.M14 + m.M42*o.M24 + m.M43*o.M34 + m.M44*o.M44,
	}
}

func (m Mat4) zip(o Mat4, f func(a, b float32) float32) Mat4 {
	a, b := m.ToFloatArray(), o.ToFloatArray()
	for i := range a {
		a[i] = f(a[i], b[i])
	}
	return Mat4FromArray(a)
}

func (m Mat4) each(f func(a float32) float32) Mat4 {
	a := m.ToFloatArray()
	for i := range a {
		a[i] = f(a[i])
	}
	return Mat4FromArray(a)
}

// Add returns the elementwise sum.
func (m Mat4) Add(o Mat4) Mat4 {
	return m.zip(o, func(a, b float32) float32 { return a + b })
}

// Sub returns the elementwise difference.
func (m Mat4) Sub(o Mat4) Mat4 {
	return m.zip(o, func(a, b float32) float32 { return a - b })
}

// Div divides elementwise. Zero elements in o produce ±Inf or NaN.
func (m Mat4) Div(o Mat4) Mat4 {
	return m.zip(o, func(a, b float32) float32 { return a / b })
}

// MulScalar multiplies every element by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	return m.each(func(a float32) float32 { return a * s })
}

// DivScalar divides every element by s. Dividing by zero follows IEEE rules.
func (m Mat4) DivScalar(s float32) Mat4 {
	inv := 1 / s
	return m.each(func(a float32) float32 { return a * inv })
}

// Negate negates every element.
func (m Mat4) Negate() Mat4 {
	return m.each(func(a float32) float32 { return -a })
}

// Lerp interpolates elementwise between m and o.
func (m Mat4) Lerp(o Mat4, amount float32) Mat4 {
	return m.zip(o, func(a, b float32) float32 { return a + (b-a)*amount })
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// minors holds the 2x2 sub-determinants of the top and bottom row pairs.
type minors struct {
	s0, s1, s2, s3, s4, s5 float64
	c0, c1, c2, c3, c4, c5 float64
}

func (m Mat4) minors() (a [16]float64, mi minors) {
	f := m.ToFloatArray()
	for i, v := range f {
		a[i] = float64(v)
	}
	mi.s0 = a[0]*a[5] - a[1]*a[4]
	mi.s1 = a[0]*a[6] - a[2]*a[4]
	mi.s2 = a[0]*a[7] - a[3]*a[4]
	mi.s3 = a[1]*a[6] - a[2]*a[5]
	mi.s4 = a[1]*a[7] - a[3]*a[5]
	mi.s5 = a[2]*a[7] - a[3]*a[6]

	mi.c5 = a[10]*a[15] - a[11]*a[14]
	mi.c4 = a[9]*a[15] - a[11]*a[13]
	mi.c3 = a[9]*a[14] - a[10]*a[13]
	mi.c2 = a[8]*a[15] - a[11]*a[12]
	mi.c1 = a[8]*a[14] - a[10]*a[12]
	mi.c0 = a[8]*a[13] - a[9]*a[12]
	return a, mi
}

func (mi minors) det() float64 {
	return mi.s0*mi.c5 - mi.s1*mi.c4 + mi.s2*mi.c3 + mi.s3*mi.c2 - mi.s4*mi.c1 + mi.s5*mi.c0
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float32 {
	_, mi := m.minors()
	return float32(mi.det())
}

// Invert returns the inverse of the matrix.
// A zero determinant returns ErrSingularMatrix and the identity.
func (m Mat4) Invert() (Mat4, error) {
	a, mi := m.minors()
	det := mi.det()
	if det == 0 {
		return Identity(), ErrSingularMatrix
	}
	inv := 1 / det

	r := [16]float64{
		(a[5]*mi.c5 - a[6]*mi.c4 + a[7]*mi.c3),
		(-a[1]*mi.c5 + a[2]*mi.c4 - a[3]*mi.c3),
		(a[13]*mi.s5 - a[14]*mi.s4 + a[15]*mi.s3),
		(-a[9]*mi.s5 + a[10]*mi.s4 - a[11]*mi.s3),

		(-a[4]*mi.c5 + a[6]*mi.c2 - a[7]*mi.c1),
		(a[0]*mi.c5 - a[2]*mi.c2 + a[3]*mi.c1),
		(-a[12]*mi.s5 + a[14]*mi.s2 - a[15]*mi.s1),
		(a[8]*mi.s5 - a[10]*mi.s2 + a[11]*mi.s1),

		(a[4]*mi.c4 - a[5]*mi.c2 + a[7]*mi.c0),
		(-a[0]*mi.c4 + a[1]*mi.c2 - a[3]*mi.c0),
		(a[12]*mi.s4 - a[13]*mi.s2 + a[15]*mi.s0),
		(-a[8]*mi.s4 + a[9]*mi.s2 - a[11]*mi.s0),

		(-a[4]*mi.c3 + a[5]*mi.c1 - a[6]*mi.c0),
		(a[0]*mi.c3 - a[1]*mi.c1 + a[2]*mi.c0),
		(-a[12]*mi.s3 + a[13]*mi.s1 - a[14]*mi.s0),
		(a[8]*mi.s3 - a[9]*mi.s1 + a[10]*mi.s0),
	}

	var out [16]float32
	for i, v := range r {
		out[i] = float32(v * inv)
	}
	return Mat4FromArray(out), nil
}

// Decompose splits an affine matrix into scale, rotation and translation.
// Each scale component carries the sign of the product of its row.
// A zero scale on any axis returns the identity rotation and ErrSingularMatrix.
func (m Mat4) Decompose() (scale Vec3, rotation Quat, translation Vec3, err error) {
	translation = m.Translation()

	xs := rowSign(m.M11, m.M12, m.M13, m.M14)
	ys := rowSign(m.M21, m.M22, m.M23, m.M24)
	zs := rowSign(m.M31, m.M32, m.M33, m.M34)

	scale = Vec3{
		X: xs * math32.Sqrt(m.M11*m.M11+m.M12*m.M12+m.M13*m.M13),
		Y: ys * math32.Sqrt(m.M21*m.M21+m.M22*m.M22+m.M23*m.M23),
		Z: zs * math32.Sqrt(m.M31*m.M31+m.M32*m.M32+m.M33*m.M33),
	}

	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return scale, QuatIdentity(), translation, ErrSingularMatrix
	}

	rot := Mat4{
		M11: m.M11 / scale.X, M12: m.M12 / scale.X, M13: m.M13 / scale.X,
		M21: m.M21 / scale.Y, M22: m.M22 / scale.Y, M23: m.M23 / scale.Y,
		M31: m.M31 / scale.Z, M32: m.M32 / scale.Z, M33: m.M33 / scale.Z,
		M44: 1,
	}
	return scale, QuatFromMat4(rot), translation, nil
}

func rowSign(a, b, c, d float32) float32 {
	if a*b*c*d < 0 {
		return -1
	}
	return 1
}

// TransformPoint transforms a point (w = 1) by this matrix.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return p.TransformMat4(m)
}

// TransformDirection transforms a direction (w = 0), ignoring translation.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return d.TransformNormal(m)
}

func (m Mat4) String() string {
	return fmt.Sprintf("{{M11:%g M12:%g M13:%g M14:%g} {M21:%g M22:%g M23:%g M24:%g} {M31:%g M32:%g M33:%g M34:%g} {M41:%g M42:%g M43:%g M44:%g}}",
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44)
}
