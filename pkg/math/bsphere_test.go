package math

import (
	"errors"
	"testing"
)

func TestBoundingSphereFromBox(t *testing.T) {
	s := BoundingSphereFromBox(BoundingBox{Vec3{0, 0, 0}, Vec3{2, 2, 2}})
	if s.Center != (Vec3{1, 1, 1}) {
		t.Errorf("Center = %v, want (1, 1, 1)", s.Center)
	}
	if !near(s.Radius, 1.7320508, 1e-6) {
		t.Errorf("Radius = %v, want sqrt(3)", s.Radius)
	}
}

func TestBoundingSphereFromPoints(t *testing.T) {
	points := []Vec3{
		{0, 0, 0}, {10, 0, 0}, {5, 4, 0}, {5, -4, 0}, {5, 0, 4.5}, {3, 3, 3},
	}
	s, err := BoundingSphereFromPoints(points)
	if err != nil {
		t.Fatalf("BoundingSphereFromPoints() error = %v", err)
	}
	for _, p := range points {
		if d := p.Distance(s.Center); d > s.Radius+1e-4 {
			t.Errorf("point %v is %v from center, radius %v", p, d, s.Radius)
		}
	}

	if _, err := BoundingSphereFromPoints(nil); !errors.Is(err, ErrNoPoints) {
		t.Errorf("empty: err = %v, want ErrNoPoints", err)
	}
}

func TestMergeBoundingSpheres(t *testing.T) {
	tests := []struct {
		name string
		a, b BoundingSphere
	}{
		{"apart", BoundingSphere{Vec3{0, 0, 0}, 1}, BoundingSphere{Vec3{10, 0, 0}, 1}},
		{"overlapping", BoundingSphere{Vec3{0, 0, 0}, 2}, BoundingSphere{Vec3{1, 1, 0}, 2}},
		{"different sizes", BoundingSphere{Vec3{-3, 2, 1}, 0.5}, BoundingSphere{Vec3{4, -1, 2}, 3}},
	}

	dirs := []Vec3{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		Vec3{1, 1, 1}.Normalize(), Vec3{-1, 1, -1}.Normalize(), Vec3{1, -2, 0.5}.Normalize(),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MergeBoundingSpheres(tt.a, tt.b)
			for _, s := range []BoundingSphere{tt.a, tt.b} {
				for _, d := range dirs {
					p := s.Center.Add(d.Scale(s.Radius))
					if dist := p.Distance(m.Center); dist > m.Radius+1e-4 {
						t.Errorf("surface point %v of %v is outside merged %v", p, s, m)
					}
				}
			}
		})
	}

	// apart case has an exact answer
	m := MergeBoundingSpheres(tests[0].a, tests[0].b)
	if !vec3Near(m.Center, Vec3{5, 0, 0}, 1e-6) || !near(m.Radius, 6, 1e-6) {
		t.Errorf("apart merge = %v, want center (5, 0, 0) radius 6", m)
	}
}

func TestMergeBoundingSpheresNested(t *testing.T) {
	big := BoundingSphere{Vec3{0, 0, 0}, 5}
	small := BoundingSphere{Vec3{1, 0, 0}, 1}

	if got := MergeBoundingSpheres(big, small); got != big {
		t.Errorf("merge(big, small) = %v, want %v", got, big)
	}
	if got := MergeBoundingSpheres(small, big); got != big {
		t.Errorf("merge(small, big) = %v, want %v", got, big)
	}
	if got := MergeBoundingSpheres(big, big); got != big {
		t.Errorf("merge(big, big) = %v, want %v", got, big)
	}
}

func TestBoundingSphereIntersectsPlane(t *testing.T) {
	s := BoundingSphere{Vec3{0, 0, 0}, 1}
	tests := []struct {
		plane Plane
		want  PlaneIntersectionType
	}{
		{Plane{Vec3{0, 1, 0}, 0}, Intersecting},
		{Plane{Vec3{0, 1, 0}, 2}, Front},
		{Plane{Vec3{0, 1, 0}, -2}, Back},
		{Plane{Vec3{0, 1, 0}, 1}, Intersecting},
	}
	for _, tt := range tests {
		if got := s.IntersectsPlane(tt.plane); got != tt.want {
			t.Errorf("IntersectsPlane(%v) = %v, want %v", tt.plane, got, tt.want)
		}
	}
}

func TestBoundingSphereContains(t *testing.T) {
	s := BoundingSphere{Vec3{0, 0, 0}, 2}

	if got := s.ContainsPoint(Vec3{1, 0, 0}); got != Contains {
		t.Errorf("ContainsPoint inside = %v", got)
	}
	if got := s.ContainsPoint(Vec3{2, 0, 0}); got != Intersects {
		t.Errorf("ContainsPoint on surface = %v", got)
	}
	if got := s.ContainsPoint(Vec3{3, 0, 0}); got != Disjoint {
		t.Errorf("ContainsPoint outside = %v", got)
	}

	if got := s.ContainsSphere(BoundingSphere{Vec3{0.5, 0, 0}, 1}); got != Contains {
		t.Errorf("ContainsSphere nested = %v", got)
	}
	if got := s.ContainsSphere(BoundingSphere{Vec3{2.5, 0, 0}, 1}); got != Intersects {
		t.Errorf("ContainsSphere overlapping = %v", got)
	}
	if got := s.ContainsSphere(BoundingSphere{Vec3{5, 0, 0}, 1}); got != Disjoint {
		t.Errorf("ContainsSphere apart = %v", got)
	}

	if got := s.ContainsBox(BoundingBox{Vec3{-1, -1, -1}, Vec3{1, 1, 1}}); got != Contains {
		t.Errorf("ContainsBox inner = %v", got)
	}
	if got := s.ContainsBox(BoundingBox{Vec3{-2, -2, -2}, Vec3{2, 2, 2}}); got != Intersects {
		t.Errorf("ContainsBox outer = %v", got)
	}
	if got := s.ContainsBox(BoundingBox{Vec3{3, 3, 3}, Vec3{4, 4, 4}}); got != Disjoint {
		t.Errorf("ContainsBox apart = %v", got)
	}
}

func TestBoundingSphereTransform(t *testing.T) {
	s := BoundingSphere{Vec3{1, 0, 0}, 1}
	got := s.Transform(Scale(1, 3, 2).Mul(Translate(0, 5, 0)))

	if got.Center != (Vec3{1, 5, 0}) {
		t.Errorf("Center = %v, want (1, 5, 0)", got.Center)
	}
	if got.Radius != 3 {
		t.Errorf("Radius = %v, want 3", got.Radius)
	}
}
