// Package shadow computes light-space matrices for directional shadow maps.
package shadow

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-math/pkg/math"
)

// lightUp picks an up vector that is not parallel to the light direction.
func lightUp(lightDir math.Vec3) math.Vec3 {
	if math32.Abs(lightDir.Y) > 0.99 {
		return math.Vec3UnitZ
	}
	return math.Vec3Up
}

// DirectionalLightMatrix computes view-projection for a shadow map covering scene.
// lightDir is the direction TO the light (sun direction).
func DirectionalLightMatrix(lightDir math.Vec3, scene math.BoundingBox) math.Mat4 {
	lightDir = lightDir.Normalize()
	sphere := math.BoundingSphereFromBox(scene)
	radius := sphere.Radius

	// Position light far enough to encompass entire scene
	lightDistance := radius * 2.0
	lightPos := sphere.Center.Add(lightDir.Scale(lightDistance))

	view := math.LookAt(lightPos, sphere.Center, lightUp(lightDir))

	// Padding avoids edge artifacts
	padding := radius * 0.1
	halfSize := radius + padding
	near := float32(0.1)
	far := lightDistance + radius + padding

	proj := math.OrthographicOffCenter(-halfSize, halfSize, -halfSize, halfSize, near, far)

	return view.Mul(proj)
}

// FitLightToFrustum computes a light matrix that tightly encloses the
// camera frustum f as seen from the light.
func FitLightToFrustum(lightDir math.Vec3, f *math.BoundingFrustum) math.Mat4 {
	lightDir = lightDir.Normalize()
	corners := f.Corners()

	var center math.Vec3
	for _, c := range corners {
		center = center.Add(c)
	}
	center = center.DivScalar(math.FrustumCornerCount)

	view := math.LookAt(center, center.Sub(lightDir), lightUp(lightDir))

	var lightSpace [math.FrustumCornerCount]math.Vec3
	for i, c := range corners {
		lightSpace[i] = c.TransformCoordinate(view)
	}
	// Eight corners, never empty.
	box, _ := math.BoundingBoxFromPoints(lightSpace[:])

	// The light looks down -Z, so the nearest corner has the largest Z.
	proj := math.OrthographicOffCenter(box.Min.X, box.Max.X, box.Min.Y, box.Max.Y, -box.Max.Z, -box.Min.Z)

	return view.Mul(proj)
}
