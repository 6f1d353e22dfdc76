package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromVec3 builds a quaternion from a vector part and a scalar part.
func QuatFromVec3(v Vec3, w float32) Quat {
	return Quat{v.X, v.Y, v.Z, w}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	half := angle * 0.5
	s := math32.Sin(half)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math32.Cos(half),
	}
}

// QuatFromYawPitchRoll creates a quaternion from yaw (around Y),
// pitch (around X) and roll (around Z), in radians.
func QuatFromYawPitchRoll(yaw, pitch, roll float32) Quat {
	sr, cr := math32.Sin(roll*0.5), math32.Cos(roll*0.5)
	sp, cp := math32.Sin(pitch*0.5), math32.Cos(pitch*0.5)
	sy, cy := math32.Sin(yaw*0.5), math32.Cos(yaw*0.5)

	return Quat{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuatFromMat4 extracts the rotation of the upper 3x3 part of m.
// m is expected to be a pure rotation; scale must be removed first.
func QuatFromMat4(m Mat4) Quat {
	trace := m.M11 + m.M22 + m.M33

	if trace > 0 {
		s := math32.Sqrt(trace + 1)
		w := s * 0.5
		s = 0.5 / s
		return Quat{
			X: (m.M23 - m.M32) * s,
			Y: (m.M31 - m.M13) * s,
			Z: (m.M12 - m.M21) * s,
			W: w,
		}
	}
	if m.M11 >= m.M22 && m.M11 >= m.M33 {
		s := math32.Sqrt(1 + m.M11 - m.M22 - m.M33)
		half := 0.5 / s
		return Quat{
			X: 0.5 * s,
			Y: (m.M12 + m.M21) * half,
			Z: (m.M13 + m.M31) * half,
			W: (m.M23 - m.M32) * half,
		}
	}
	if m.M22 > m.M33 {
		s := math32.Sqrt(1 + m.M22 - m.M11 - m.M33)
		half := 0.5 / s
		return Quat{
			X: (m.M21 + m.M12) * half,
			Y: 0.5 * s,
			Z: (m.M32 + m.M23) * half,
			W: (m.M31 - m.M13) * half,
		}
	}
	s := math32.Sqrt(1 + m.M33 - m.M11 - m.M22)
	half := 0.5 / s
	return Quat{
		X: (m.M31 + m.M13) * half,
		Y: (m.M32 + m.M23) * half,
		Z: 0.5 * s,
		W: (m.M12 - m.M21) * half,
	}
}

// Add returns the componentwise sum.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Sub returns the componentwise difference.
func (q Quat) Sub(other Quat) Quat {
	return Quat{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// Scale multiplies every component by s.
func (q Quat) Scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Negate returns -q.
func (q Quat) Negate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

// Conjugate negates the vector part.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the multiplicative inverse. The zero quaternion stays zero.
func (q Quat) Inverse() Quat {
	ls := q.LengthSquared()
	if ls == 0 {
		return Quat{}
	}
	inv := 1 / ls
	return Quat{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the magnitude.
func (q Quat) Length() float32 {
	return math32.Sqrt(q.LengthSquared())
}

// LengthSquared returns the squared magnitude.
func (q Quat) LengthSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Normalize returns a unit quaternion. The zero quaternion stays zero.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		return Quat{}
	}
	inv := 1 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Mul returns the Hamilton product q * other.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.X*other.W + other.X*q.W + (q.Y*other.Z - q.Z*other.Y),
		Y: q.Y*other.W + other.Y*q.W + (q.Z*other.X - q.X*other.Z),
		Z: q.Z*other.W + other.Z*q.W + (q.X*other.Y - q.Y*other.X),
		W: q.W*other.W - (q.X*other.X + q.Y*other.Y + q.Z*other.Z),
	}
}

// Div returns q * other⁻¹.
func (q Quat) Div(other Quat) Quat {
	return q.Mul(other.Inverse())
}

// ConcatenateQuats returns the rotation a followed by b, i.e. b * a.
func ConcatenateQuats(a, b Quat) Quat {
	return b.Mul(a)
}

// Lerp interpolates linearly along the shorter arc and normalizes the result.
func (q Quat) Lerp(other Quat, amount float32) Quat {
	inv := 1 - amount
	if q.Dot(other) < 0 {
		amount = -amount
	}
	return Quat{
		X: inv*q.X + amount*other.X,
		Y: inv*q.Y + amount*other.Y,
		Z: inv*q.Z + amount*other.Z,
		W: inv*q.W + amount*other.W,
	}.Normalize()
}

// Slerp performs spherical linear interpolation along the shorter arc.
func (q Quat) Slerp(other Quat, amount float32) Quat {
	cos := q.Dot(other)
	flip := false
	if cos < 0 {
		flip = true
		cos = -cos
	}

	var s1, s2 float32
	if cos > 0.999999 {
		// nearly parallel: sin(theta) underflows
		s1 = 1 - amount
		s2 = amount
	} else {
		theta := math32.Acos(cos)
		invSin := float32(1 / float64(math32.Sin(theta)))
		s1 = math32.Sin((1-amount)*theta) * invSin
		s2 = math32.Sin(amount*theta) * invSin
	}
	if flip {
		s2 = -s2
	}

	return Quat{
		X: s1*q.X + s2*other.X,
		Y: s1*q.Y + s2*other.Y,
		Z: s1*q.Z + s2*other.Z,
		W: s1*q.W + s2*other.W,
	}
}

// ToMat4 converts the quaternion to a rotation matrix.
// q is used as given; normalize it first if it may have drifted.
func (q Quat) ToMat4() Mat4 {
	return Mat4FromQuat(q)
}

func (q Quat) String() string {
	return fmt.Sprintf("{X:%g Y:%g Z:%g W:%g}", q.X, q.Y, q.Z, q.W)
}
