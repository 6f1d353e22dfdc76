package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", got)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero", got)
	}
	if got := (Vec4{}).Normalize(); got != (Vec4{}) {
		t.Errorf("Vec4{}.Normalize() = %v, want zero", got)
	}
}

func TestVec2Round(t *testing.T) {
	got := Vec2{2.5, -2.5}.Round()
	want := Vec2{3, -3}
	if got != want {
		t.Errorf("Vec2.Round() = %v, want %v", got, want)
	}
}

func TestVec2ToPoint(t *testing.T) {
	got := Vec2{1.9, -1.9}.ToPoint()
	want := Point{1, -1}
	if got != want {
		t.Errorf("Vec2.ToPoint() = %v, want %v", got, want)
	}
}

func TestVec3Reflect(t *testing.T) {
	got := Vec3{1, -1, 0}.Reflect(Vec3{0, 1, 0})
	want := Vec3{1, 1, 0}
	if got != want {
		t.Errorf("Vec3.Reflect() = %v, want %v", got, want)
	}
}

func TestVec3Clamp(t *testing.T) {
	got := Vec3{-5, 0.5, 5}.Clamp(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	want := Vec3{0, 0.5, 1}
	if got != want {
		t.Errorf("Vec3.Clamp() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a, b := Vec3{0, 0, 0}, Vec3{10, 20, 30}
	if got := a.Lerp(b, 0.5); got != (Vec3{5, 10, 15}) {
		t.Errorf("Vec3.Lerp() = %v, want (5, 10, 15)", got)
	}
	if got := a.LerpPrecise(b, 1); got != b {
		t.Errorf("Vec3.LerpPrecise(1) = %v, want %v", got, b)
	}
}

func TestVec3TransformCoordinate(t *testing.T) {
	// w = 2 after the transform halves the result
	m := Identity()
	m.M44 = 2
	got := Vec3{2, 4, 6}.TransformCoordinate(m)
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Vec3.TransformCoordinate() = %v, want %v", got, want)
	}
}

func TestTransformVec3s(t *testing.T) {
	src := []Vec3{{0, 0, 0}, {1, 1, 1}}
	dst := make([]Vec3, len(src))
	TransformVec3s(dst, src, Translate(1, 2, 3))

	if dst[0] != (Vec3{1, 2, 3}) || dst[1] != (Vec3{2, 3, 4}) {
		t.Errorf("TransformVec3s() = %v", dst)
	}

	TransformVec3s(nil, nil, Identity())
}

func TestVec4Equality(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{1, 2, 3, 5}
	if a == b {
		t.Error("Vec4 differing only in W should not be equal")
	}
	if a != (Vec4{1, 2, 3, 4}) {
		t.Error("identical Vec4 should be equal")
	}
}

func TestVec4TransformMat4(t *testing.T) {
	got := Vec4{1, 2, 3, 1}.TransformMat4(Translate(1, 1, 1))
	want := Vec4{2, 3, 4, 1}
	if got != want {
		t.Errorf("Vec4.TransformMat4() = %v, want %v", got, want)
	}

	// w = 0 is a direction and ignores translation
	got = Vec4{1, 2, 3, 0}.TransformMat4(Translate(1, 1, 1))
	want = Vec4{1, 2, 3, 0}
	if got != want {
		t.Errorf("Vec4.TransformMat4() direction = %v, want %v", got, want)
	}
}

func TestVec4TransformQuatKeepsW(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, PiOver2)
	got := Vec4{1, 0, 0, 7}.TransformQuat(q)
	if !near(got.X, 0, 1e-6) || !near(got.Y, 1, 1e-6) || got.W != 7 {
		t.Errorf("Vec4.TransformQuat() = %v, want (0, 1, 0, 7)", got)
	}
}

func TestHermiteVec3Endpoints(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{4, 5, 6}
	ta, tb := Vec3{1, 0, 0}, Vec3{0, 1, 0}

	if got := HermiteVec3(a, ta, b, tb, 0); got != a {
		t.Errorf("HermiteVec3(0) = %v, want %v", got, a)
	}
	if got := HermiteVec3(a, ta, b, tb, 1); got != b {
		t.Errorf("HermiteVec3(1) = %v, want %v", got, b)
	}
}

func TestSmoothStepVec2(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{10, 20}
	if got := SmoothStepVec2(a, b, 0.5); got != (Vec2{5, 10}) {
		t.Errorf("SmoothStepVec2(0.5) = %v, want (5, 10)", got)
	}
	if got := SmoothStepVec2(a, b, 2); got != b {
		t.Errorf("SmoothStepVec2(2) = %v, want %v", got, b)
	}
}

func TestVecString(t *testing.T) {
	if got := (Vec3{1, 2.5, -3}).String(); got != "{X:1 Y:2.5 Z:-3}" {
		t.Errorf("Vec3.String() = %q", got)
	}
	if got := (Vec2{1, 2}).String(); got != "{X:1 Y:2}" {
		t.Errorf("Vec2.String() = %q", got)
	}
}
