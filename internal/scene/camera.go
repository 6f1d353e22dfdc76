package scene

import (
	"github.com/Faultbox/midgard-math/internal/config"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position [3]float32 `yaml:"position" toml:"position"`
	Target   [3]float32 `yaml:"target" toml:"target"`
	Up       [3]float32 `yaml:"up" toml:"up"`
	FOV      float32    `yaml:"fov" toml:"fov"` // Vertical field of view in degrees
	Near     float32    `yaml:"near" toml:"near"`
	Far      float32    `yaml:"far" toml:"far"`
}

// CameraFromConfig converts the configured default camera.
func CameraFromConfig(c config.CameraConfig) Camera {
	return Camera{
		Position: c.Position,
		Target:   c.Target,
		Up:       c.Up,
		FOV:      c.FOV,
		Near:     c.Near,
		Far:      c.Far,
	}
}

// View returns the view matrix.
func (c Camera) View() math.Mat4 {
	return math.LookAt(vec3(c.Position), vec3(c.Target), vec3(c.Up))
}

// Projection returns the perspective projection for the given aspect ratio.
func (c Camera) Projection(aspect float32) math.Mat4 {
	return math.PerspectiveFieldOfView(math.ToRadians(c.FOV), aspect, c.Near, c.Far)
}

// Frustum returns the view frustum for the given aspect ratio.
func (c Camera) Frustum(aspect float32) *math.BoundingFrustum {
	return math.NewBoundingFrustum(c.View().Mul(c.Projection(aspect)))
}
