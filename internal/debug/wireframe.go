// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/midgard-math/pkg/math"

// WireframeVertexCount is the number of vertices for a box or frustum wireframe (12 edges × 2).
const WireframeVertexCount = 24

// DefaultBoxPadding is the default padding for selection boxes.
const DefaultBoxPadding = 1.0

// edges lists corner index pairs for the corner order shared by
// BoundingBox and BoundingFrustum: one face clockwise, then the opposite face.
var edges = [12][2]int{
	// First face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// Opposite face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// Connecting edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxWireframe creates line vertices for a wireframe bounding box.
// Returns 24 vertices, format: [x, y, z] per vertex.
// padding expands the box by the given amount on all sides.
func BoxWireframe(box math.BoundingBox, padding float32) []float32 {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	box = math.NewBoundingBox(box.Min.Sub(pad), box.Max.Add(pad))
	return lines(box.Corners())
}

// FrustumWireframe creates line vertices outlining f.
func FrustumWireframe(f *math.BoundingFrustum) []float32 {
	return lines(f.Corners())
}

func lines(corners [8]math.Vec3) []float32 {
	out := make([]float32, 0, WireframeVertexCount*3)
	for _, e := range edges {
		a, b := corners[e[0]], corners[e[1]]
		out = append(out, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return out
}
