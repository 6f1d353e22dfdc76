// Package scene describes a set of bounded objects seen by a camera.
//
// Scenes are stored as YAML or TOML and are the input of the culling and
// picking commands.
package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Faultbox/midgard-math/internal/config"
	"github.com/Faultbox/midgard-math/internal/meshbounds"
	"github.com/Faultbox/midgard-math/pkg/math"
)

var (
	// ErrUnknownFormat is returned for scene files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("scene: unknown format")

	// ErrInvalidScene is returned by Validate.
	ErrInvalidScene = errors.New("scene: invalid")

	// ErrUnresolvedMesh is returned when a mesh object's bounds were never loaded.
	ErrUnresolvedMesh = errors.New("scene: mesh bounds not resolved")
)

// Kind is the bounding shape of an object.
type Kind string

// Object kinds.
const (
	KindBox    Kind = "box"
	KindSphere Kind = "sphere"
	KindMesh   Kind = "mesh"
)

// Scene is a camera, a viewport and the objects they look at.
type Scene struct {
	Camera   Camera   `yaml:"camera" toml:"camera"`
	Viewport Viewport `yaml:"viewport" toml:"viewport"`
	Objects  []Object `yaml:"objects" toml:"objects"`
}

// Viewport is the screen the scene is rendered to.
type Viewport struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Math returns the viewport as a math.Viewport at the origin.
func (v Viewport) Math() math.Viewport {
	return math.NewViewport(0, 0, v.Width, v.Height)
}

// AspectRatio returns Width/Height.
func (v Viewport) AspectRatio() float32 {
	return v.Math().AspectRatio()
}

// Object is a named bounding volume placed in the world.
//
// Box objects use Min/Max, sphere objects Center/Radius and mesh objects
// the bounds of the glTF file in Model. Position and Scale move the local
// volume into world space; a zero Scale means no scaling.
type Object struct {
	ID       string     `yaml:"id" toml:"id"`
	Name     string     `yaml:"name" toml:"name"`
	Kind     Kind       `yaml:"kind" toml:"kind"`
	Min      [3]float32 `yaml:"min" toml:"min"`
	Max      [3]float32 `yaml:"max" toml:"max"`
	Center   [3]float32 `yaml:"center" toml:"center"`
	Radius   float32    `yaml:"radius" toml:"radius"`
	Model    string     `yaml:"model" toml:"model"`
	Position [3]float32 `yaml:"position" toml:"position"`
	Scale    [3]float32 `yaml:"scale" toml:"scale"`

	mesh *meshbounds.Bounds
}

// New returns an empty scene using the camera and viewport from cfg.
func New(cfg *config.Config) *Scene {
	s := &Scene{}
	s.ApplyDefaults(cfg)
	return s
}

// ApplyDefaults fills a missing camera or viewport from cfg.
func (s *Scene) ApplyDefaults(cfg *config.Config) {
	if s.Camera.FOV == 0 {
		s.Camera = CameraFromConfig(cfg.Camera)
	}
	if s.Camera.Up == ([3]float32{}) {
		s.Camera.Up = [3]float32{0, 1, 0}
	}
	if s.Viewport.Width == 0 || s.Viewport.Height == 0 {
		s.Viewport = Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	}
}

// assignIDs gives every object without an ID a random one.
func (s *Scene) assignIDs() {
	for i := range s.Objects {
		if s.Objects[i].ID == "" {
			s.Objects[i].ID = uuid.NewString()
		}
	}
}

// Validate reports objects whose shape cannot be built.
func (s *Scene) Validate() error {
	seen := make(map[string]bool, len(s.Objects))

	for i := range s.Objects {
		o := &s.Objects[i]
		if err := o.validate(); err != nil {
			return fmt.Errorf("%w: object %d (%s): %v", ErrInvalidScene, i, o.Name, err)
		}
		if o.ID != "" {
			if seen[o.ID] {
				return fmt.Errorf("%w: duplicate object id %s", ErrInvalidScene, o.ID)
			}
			seen[o.ID] = true
		}
	}
	return nil
}

func (o *Object) validate() error {
	switch o.Kind {
	case KindBox:
		if o.Min[0] > o.Max[0] || o.Min[1] > o.Max[1] || o.Min[2] > o.Max[2] {
			return fmt.Errorf("min %v exceeds max %v", o.Min, o.Max)
		}
	case KindSphere:
		if o.Radius < 0 {
			return fmt.Errorf("negative radius %g", o.Radius)
		}
	case KindMesh:
		if o.Model == "" {
			return errors.New("mesh without model")
		}
	default:
		return fmt.Errorf("unknown kind %q", o.Kind)
	}
	return nil
}

// Find returns the object with the given ID or name.
func (s *Scene) Find(key string) (*Object, bool) {
	for i := range s.Objects {
		if s.Objects[i].ID == key || s.Objects[i].Name == key {
			return &s.Objects[i], true
		}
	}
	return nil, false
}

// Label returns the name of the object, or its ID when unnamed.
func (o *Object) Label() string {
	if o.Name != "" {
		return o.Name
	}
	return o.ID
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
