package math

import (
	gomath "math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar constants, rounded to float32.
const (
	E       = float32(gomath.E)
	Log10E  = float32(0.4342945)
	Log2E   = float32(1.442695)
	Pi      = float32(3.14159274)
	PiOver2 = Pi / 2
	PiOver4 = Pi / 4
	TwoPi   = Pi * 2
	Tau     = TwoPi
)

// Number is any integer or float type accepted by the generic helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Barycentric returns the Cartesian coordinate for one axis of a point
// given in barycentric coordinates relative to a triangle.
func Barycentric(value1, value2, value3, amount1, amount2 float32) float32 {
	return value1 + (value2-value1)*amount1 + (value3-value1)*amount2
}

// CatmullRom performs a Catmull-Rom interpolation between value2 and value3.
func CatmullRom(value1, value2, value3, value4, amount float32) float32 {
	// float64 keeps the cubic term stable for amounts near 1
	v1, v2, v3, v4 := float64(value1), float64(value2), float64(value3), float64(value4)
	s := float64(amount)
	s2 := s * s
	s3 := s2 * s
	return float32(0.5 * (2.0*v2 +
		(v3-v1)*s +
		(2.0*v1-5.0*v2+4.0*v3-v4)*s2 +
		(3.0*v2-v1-3.0*v3+v4)*s3))
}

// Clamp restricts value to [lo, hi]. The upper bound is applied first.
func Clamp[T Number](value, lo, hi T) T {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}

// ClampInt is Clamp for int.
func ClampInt(value, lo, hi int) int {
	return Clamp(value, lo, hi)
}

// Distance returns the absolute difference between two values.
func Distance(value1, value2 float32) float32 {
	return math32.Abs(value1 - value2)
}

// Hermite performs a Hermite spline interpolation.
// Amounts of exactly 0 and 1 return the end points unchanged.
func Hermite(value1, tangent1, value2, tangent2, amount float32) float32 {
	switch amount {
	case 0:
		return value1
	case 1:
		return value2
	}
	v1, v2, t1, t2, s := float64(value1), float64(value2), float64(tangent1), float64(tangent2), float64(amount)
	s2 := s * s
	s3 := s2 * s
	return float32((2*v1-2*v2+t2+t1)*s3 +
		(3*v2-3*v1-2*t1-t2)*s2 +
		t1*s +
		v1)
}

// Lerp linearly interpolates between two values.
func Lerp(value1, value2, amount float32) float32 {
	return value1 + (value2-value1)*amount
}

// LerpPrecise is Lerp with less floating point error when the
// magnitudes of the inputs differ widely.
func LerpPrecise(value1, value2, amount float32) float32 {
	return (1-amount)*value1 + value2*amount
}

// Max returns the greater of two values.
func Max[T Number](value1, value2 T) T {
	if value1 > value2 {
		return value1
	}
	return value2
}

// Min returns the lesser of two values.
func Min[T Number](value1, value2 T) T {
	if value1 < value2 {
		return value1
	}
	return value2
}

// SmoothStep interpolates between two values with a cubic ease in and out.
func SmoothStep(value1, value2, amount float32) float32 {
	return Hermite(value1, 0, value2, 0, Clamp(amount, 0, 1))
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float32) float32 {
	return float32(float64(radians) * 57.295779513082320876798154814105)
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float32) float32 {
	return float32(float64(degrees) * 0.017453292519943295769236907684886)
}

// WrapAngle reduces an angle to the range (-Pi, Pi].
func WrapAngle(angle float32) float32 {
	if angle > -Pi && angle <= Pi {
		return angle
	}
	angle = math32.Mod(angle, TwoPi)
	if angle <= -Pi {
		return angle + TwoPi
	}
	if angle > Pi {
		return angle - TwoPi
	}
	return angle
}

// IsPowerOfTwo reports whether value is a positive power of two.
func IsPowerOfTwo(value int) bool {
	return value > 0 && value&(value-1) == 0
}
