package math

import "testing"

func TestRayIntersectsBox(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		wantOK bool
		want   float32
	}{
		{"head on", Ray{Vec3{0, 0, -5}, Vec3{0, 0, 1}}, true, 4},
		{"pointing away", Ray{Vec3{0, 0, -5}, Vec3{0, 0, -1}}, false, 0},
		{"from inside", Ray{Vec3{0, 0, 0}, Vec3{1, 0, 0}}, true, 0},
		{"parallel outside slab", Ray{Vec3{0, 2, -5}, Vec3{0, 0, 1}}, false, 0},
		{"parallel inside slab", Ray{Vec3{0, 0.5, -5}, Vec3{0, 0, 1}}, true, 4},
		{"diagonal miss", Ray{Vec3{-5, 0, -5}, Vec3{1, 0, -1}.Normalize()}, false, 0},
		{"unnormalized direction", Ray{Vec3{-5, 0, 0}, Vec3{2, 0, 0}}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectsBox(unitBox)
			if ok != tt.wantOK {
				t.Fatalf("IntersectsBox() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !near(got, tt.want, 1e-5) {
				t.Errorf("IntersectsBox() = %v, want %v", got, tt.want)
			}

			bgot, bok := unitBox.IntersectsRay(tt.ray)
			if bok != ok || bgot != got {
				t.Errorf("BoundingBox.IntersectsRay() = (%v, %v), want (%v, %v)", bgot, bok, got, ok)
			}
		})
	}
}

func TestRayIntersectsSphere(t *testing.T) {
	s := BoundingSphere{Vec3{0, 0, -10}, 2}

	d, ok := Ray{Vec3{0, 0, 0}, Vec3{0, 0, -1}}.IntersectsSphere(s)
	if !ok || !near(d, 8, 1e-5) {
		t.Errorf("head on = (%v, %v), want (8, true)", d, ok)
	}

	if _, ok := (Ray{Vec3{0, 0, 0}, Vec3{0, 0, 1}}).IntersectsSphere(s); ok {
		t.Error("pointing away should miss")
	}
	if _, ok := (Ray{Vec3{3, 0, 0}, Vec3{0, 0, -1}}).IntersectsSphere(s); ok {
		t.Error("passing beside should miss")
	}

	d, ok = Ray{Vec3{0, 0, -10}, Vec3{1, 0, 0}}.IntersectsSphere(s)
	if !ok || d != 0 {
		t.Errorf("from inside = (%v, %v), want (0, true)", d, ok)
	}
}

func TestRayIntersectsPlane(t *testing.T) {
	ground := Plane{Vec3{0, 1, 0}, 0}

	d, ok := Ray{Vec3{0, 10, 0}, Vec3{0, -1, 0}}.IntersectsPlane(ground)
	if !ok || d != 10 {
		t.Errorf("straight down = (%v, %v), want (10, true)", d, ok)
	}

	if _, ok := (Ray{Vec3{0, 10, 0}, Vec3{1, 0, 0}}).IntersectsPlane(ground); ok {
		t.Error("parallel ray should miss")
	}
	if _, ok := (Ray{Vec3{0, 10, 0}, Vec3{0, 1, 0}}).IntersectsPlane(ground); ok {
		t.Error("ray pointing away should miss")
	}

	// Rounding just below the plane clamps to zero
	d, ok = Ray{Vec3{0, -1e-6, 0}, Vec3{0, -1, 0}}.IntersectsPlane(ground)
	if !ok || d != 0 {
		t.Errorf("start on plane = (%v, %v), want (0, true)", d, ok)
	}

	pd, pok := ground.IntersectsRay(Ray{Vec3{0, 10, 0}, Vec3{0, -1, 0}})
	if !pok || pd != 10 {
		t.Errorf("Plane.IntersectsRay() = (%v, %v), want (10, true)", pd, pok)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Vec3{1, 2, 3}, Vec3{0, 0, -2}}
	if got := r.At(1.5); got != (Vec3{1, 2, 0}) {
		t.Errorf("At(1.5) = %v, want (1, 2, 0)", got)
	}
}
