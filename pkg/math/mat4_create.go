package math

import (
	gomath "math"

	"github.com/chewxy/math32"
)

// billboardEpsilon is the squared distance under which the camera is
// treated as sitting on the object.
const billboardEpsilon = 1e-4

// constrainedThreshold is cos(~3.4°): axes closer than this are treated as parallel.
const constrainedThreshold = 0.9982547

// Billboard returns a matrix that rotates an object around its position to face the camera.
// cameraForward is used when the camera sits on the object; nil means Vec3Forward.
func Billboard(objectPos, cameraPos, cameraUp Vec3, cameraForward *Vec3) Mat4 {
	dir := objectPos.Sub(cameraPos)
	if dir.LengthSquared() < billboardEpsilon {
		dir = Vec3Forward
		if cameraForward != nil {
			dir = cameraForward.Negate()
		}
	} else {
		dir = dir.Normalize()
	}

	right := cameraUp.Cross(dir).Normalize()
	up := dir.Cross(right)

	m := Mat4{M44: 1}
	m.SetRight(right)
	m.SetUp(up)
	m.SetBackward(dir)
	m.SetTranslation(objectPos)
	return m
}

// ConstrainedBillboard returns a billboard that may only rotate around rotateAxis.
// cameraForward and objectForward are optional and resolve degenerate cases.
func ConstrainedBillboard(objectPos, cameraPos, rotateAxis Vec3, cameraForward, objectForward *Vec3) Mat4 {
	dir := objectPos.Sub(cameraPos)
	if dir.LengthSquared() < billboardEpsilon {
		dir = Vec3Forward
		if cameraForward != nil {
			dir = cameraForward.Negate()
		}
	} else {
		dir = dir.Normalize()
	}

	var right, forward Vec3
	if math32.Abs(rotateAxis.Dot(dir)) > constrainedThreshold {
		forward = fallbackForward(rotateAxis)
		if objectForward != nil && math32.Abs(rotateAxis.Dot(*objectForward)) <= constrainedThreshold {
			forward = *objectForward
		}
		right = rotateAxis.Cross(forward).Normalize()
		forward = right.Cross(rotateAxis).Normalize()
	} else {
		right = rotateAxis.Cross(dir).Normalize()
		forward = right.Cross(rotateAxis).Normalize()
	}

	m := Mat4{M44: 1}
	m.SetRight(right)
	m.SetUp(rotateAxis)
	m.SetBackward(forward)
	m.SetTranslation(objectPos)
	return m
}

func fallbackForward(axis Vec3) Vec3 {
	if math32.Abs(axis.Dot(Vec3Forward)) > constrainedThreshold {
		return Vec3Right
	}
	return Vec3Forward
}

// Mat4FromAxisAngle returns a rotation of angle radians around a normalized axis.
func Mat4FromAxisAngle(axis Vec3, angle float32) Mat4 {
	x, y, z := axis.X, axis.Y, axis.Z
	s, c := math32.Sin(angle), math32.Cos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	return Mat4{
		M11: xx + c*(1-xx),
		M12: xy - c*xy + s*z,
		M13: xz - c*xz - s*y,
		M21: xy - c*xy - s*z,
		M22: yy + c*(1-yy),
		M23: yz - c*yz + s*x,
		M31: xz - c*xz + s*y,
		M32: yz - c*yz - s*x,
		M33: zz + c*(1-zz),
		M44: 1,
	}
}

// Mat4FromQuat returns the rotation matrix of q.
func Mat4FromQuat(q Quat) Mat4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, zw := q.X*q.Y, q.Z*q.W
	zx, yw := q.Z*q.X, q.Y*q.W
	yz, xw := q.Y*q.Z, q.X*q.W

	return Mat4{
		M11: 1 - 2*(yy+zz),
		M12: 2 * (xy + zw),
		M13: 2 * (zx - yw),
		M21: 2 * (xy - zw),
		M22: 1 - 2*(zz+xx),
		M23: 2 * (yz + xw),
		M31: 2 * (zx + yw),
		M32: 2 * (yz - xw),
		M33: 1 - 2*(yy+xx),
		M44: 1,
	}
}

// Mat4FromYawPitchRoll returns a rotation from yaw, pitch and roll in radians.
func Mat4FromYawPitchRoll(yaw, pitch, roll float32) Mat4 {
	return Mat4FromQuat(QuatFromYawPitchRoll(yaw, pitch, roll))
}

// RotationX returns a rotation around the X axis.
func RotationX(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m.M22, m.M23 = c, s
	m.M32, m.M33 = -s, c
	return m
}

// RotationY returns a rotation around the Y axis.
func RotationY(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m.M11, m.M13 = c, -s
	m.M31, m.M33 = s, c
	return m
}

// RotationZ returns a rotation around the Z axis.
func RotationZ(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m.M11, m.M12 = c, s
	m.M21, m.M22 = -s, c
	return m
}

// LookAt returns a view matrix for a camera at position looking at target.
func LookAt(position, target, up Vec3) Mat4 {
	z := position.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4{
		M11: x.X, M12: y.X, M13: z.X,
		M21: x.Y, M22: y.Y, M23: z.Y,
		M31: x.Z, M32: y.Z, M33: z.Z,
		M41: -x.Dot(position),
		M42: -y.Dot(position),
		M43: -z.Dot(position),
		M44: 1,
	}
}

// World returns a world matrix placing an object at position facing forward.
func World(position, forward, up Vec3) Mat4 {
	z := forward.Normalize()
	x := forward.Cross(up).Normalize()
	y := x.Cross(forward).Normalize()

	m := Identity()
	m.SetRight(x)
	m.SetUp(y)
	m.SetForward(z)
	m.SetTranslation(position)
	return m
}

// Orthographic returns an orthographic projection centered on the view axis.
func Orthographic(width, height, near, far float32) Mat4 {
	return Mat4{
		M11: 2 / width,
		M22: 2 / height,
		M33: 1 / (near - far),
		M43: near / (near - far),
		M44: 1,
	}
}

// OrthographicOffCenter returns an orthographic projection for the given volume.
func OrthographicOffCenter(left, right, bottom, top, near, far float32) Mat4 {
	l, r := float64(left), float64(right)
	b, t := float64(bottom), float64(top)
	n, f := float64(near), float64(far)

	return Mat4{
		M11: float32(2 / (r - l)),
		M22: float32(2 / (t - b)),
		M33: float32(1 / (n - f)),
		M41: float32((l + r) / (l - r)),
		M42: float32((t + b) / (b - t)),
		M43: float32(n / (n - f)),
		M44: 1,
	}
}

// OrthographicOffCenterRect is OrthographicOffCenter for a screen rectangle
// with Y growing downwards.
func OrthographicOffCenterRect(r Rectangle, near, far float32) Mat4 {
	return OrthographicOffCenter(float32(r.Left()), float32(r.Right()), float32(r.Bottom()), float32(r.Top()), near, far)
}

// negFarRange is the M33 term of a perspective projection.
// An infinite far plane maps to -1.
func negFarRange(near, far float32) float32 {
	if gomath.IsInf(float64(far), 1) {
		return -1
	}
	return far / (near - far)
}

// Perspective returns a perspective projection for a view volume of the given size at the near plane.
func Perspective(width, height, near, far float32) Mat4 {
	nfr := negFarRange(near, far)
	return Mat4{
		M11: 2 * near / width,
		M22: 2 * near / height,
		M33: nfr,
		M34: -1,
		M43: near * nfr,
	}
}

// PerspectiveFieldOfView returns a perspective projection.
// fov is the vertical field of view in radians, aspect is width/height.
func PerspectiveFieldOfView(fov, aspect, near, far float32) Mat4 {
	yScale := 1 / math32.Tan(fov*0.5)
	xScale := yScale / aspect
	nfr := negFarRange(near, far)
	return Mat4{
		M11: xScale,
		M22: yScale,
		M33: nfr,
		M34: -1,
		M43: near * nfr,
	}
}

// PerspectiveOffCenter returns a perspective projection for an asymmetric volume.
func PerspectiveOffCenter(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		M11: 2 * near / (right - left),
		M22: 2 * near / (top - bottom),
		M31: (left + right) / (right - left),
		M32: (top + bottom) / (top - bottom),
		M33: far / (near - far),
		M34: -1,
		M43: near * far / (near - far),
	}
}

// PerspectiveOffCenterRect is PerspectiveOffCenter for a screen rectangle.
func PerspectiveOffCenterRect(r Rectangle, near, far float32) Mat4 {
	return PerspectiveOffCenter(float32(r.Left()), float32(r.Right()), float32(r.Bottom()), float32(r.Top()), near, far)
}

// Scale returns a non-uniform scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{M11: x, M22: y, M33: z, M44: 1}
}

// ScaleUniform returns a uniform scale matrix.
func ScaleUniform(s float32) Mat4 {
	return Scale(s, s, s)
}

// ScaleVec3 returns a scale matrix from a vector.
func ScaleVec3(v Vec3) Mat4 {
	return Scale(v.X, v.Y, v.Z)
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m.M41, m.M42, m.M43 = x, y, z
	return m
}

// TranslateVec3 returns a translation matrix from a vector.
func TranslateVec3(v Vec3) Mat4 {
	return Translate(v.X, v.Y, v.Z)
}
