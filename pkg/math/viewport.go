package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Viewport is a 2D render target region with a depth range.
type Viewport struct {
	X, Y          int
	Width, Height int
	MinDepth      float32
	MaxDepth      float32
}

// NewViewport returns a viewport with the default [0, 1] depth range.
func NewViewport(x, y, width, height int) Viewport {
	return Viewport{X: x, Y: y, Width: width, Height: height, MinDepth: 0, MaxDepth: 1}
}

// AspectRatio returns Width/Height, or 0 for an empty viewport.
func (v Viewport) AspectRatio() float32 {
	if v.Width == 0 || v.Height == 0 {
		return 0
	}
	return float32(v.Width) / float32(v.Height)
}

// Bounds returns the viewport rectangle.
func (v Viewport) Bounds() Rectangle {
	return Rectangle{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// TitleSafeArea returns the region guaranteed visible. It is Bounds on desktop.
func (v Viewport) TitleSafeArea() Rectangle {
	return v.Bounds()
}

// Project maps an object-space point to screen space. Z is mapped into
// [MinDepth, MaxDepth].
func (v Viewport) Project(source Vec3, projection, view, world Mat4) Vec3 {
	m := world.Mul(view).Mul(projection)
	r := TransformVec3ToVec4(source, m)
	w := r.W
	if !withinEpsilon(w, 1) {
		r.X /= w
		r.Y /= w
		r.Z /= w
	}

	return Vec3{
		X: (r.X+1)*0.5*float32(v.Width) + float32(v.X),
		Y: (-r.Y+1)*0.5*float32(v.Height) + float32(v.Y),
		Z: r.Z*(v.MaxDepth-v.MinDepth) + v.MinDepth,
	}
}

// Unproject maps a screen-space point back to object space.
// It returns ErrSingularMatrix when world*view*projection cannot be inverted.
func (v Viewport) Unproject(source Vec3, projection, view, world Mat4) (Vec3, error) {
	inv, err := world.Mul(view).Mul(projection).Invert()
	if err != nil {
		return Vec3{}, fmt.Errorf("unproject: %w", err)
	}

	ndc := Vec3{
		X: (source.X-float32(v.X))/float32(v.Width)*2 - 1,
		Y: -((source.Y-float32(v.Y))/float32(v.Height)*2 - 1),
		Z: (source.Z - v.MinDepth) / (v.MaxDepth - v.MinDepth),
	}

	r := TransformVec3ToVec4(ndc, inv)
	if !withinEpsilon(r.W, 1) {
		return Vec3{r.X / r.W, r.Y / r.W, r.Z / r.W}, nil
	}
	return Vec3{r.X, r.Y, r.Z}, nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("{X:%d Y:%d Width:%d Height:%d MinDepth:%g MaxDepth:%g}",
		v.X, v.Y, v.Width, v.Height, v.MinDepth, v.MaxDepth)
}

func withinEpsilon(a, b float32) bool {
	return math32.Abs(a-b) <= 1.401298e-45
}
