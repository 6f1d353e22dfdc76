package scene

import (
	"fmt"
	"path/filepath"

	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-math/internal/meshbounds"
	"github.com/Faultbox/midgard-math/internal/picking"
	"github.com/Faultbox/midgard-math/pkg/math"
)

func (o *Object) scale() math.Vec3 {
	if o.Scale == ([3]float32{}) {
		return math.Vec3One
	}
	return vec3(o.Scale)
}

// localBox returns the object's box before Position and Scale apply.
func (o *Object) localBox() (math.BoundingBox, error) {
	switch o.Kind {
	case KindBox:
		return math.NewBoundingBox(vec3(o.Min), vec3(o.Max)), nil
	case KindSphere:
		r := math.Vec3{X: o.Radius, Y: o.Radius, Z: o.Radius}
		c := vec3(o.Center)
		return math.NewBoundingBox(c.Sub(r), c.Add(r)), nil
	case KindMesh:
		if o.mesh == nil {
			return math.BoundingBox{}, fmt.Errorf("%s: %w", o.Model, ErrUnresolvedMesh)
		}
		return o.mesh.Box, nil
	}
	return math.BoundingBox{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidScene, o.Kind)
}

// WorldBox returns the object's axis-aligned box in world space.
func (o *Object) WorldBox() (math.BoundingBox, error) {
	local, err := o.localBox()
	if err != nil {
		return math.BoundingBox{}, err
	}
	return picking.TransformBox(local, vec3(o.Position), o.scale()), nil
}

// WorldSphere returns the object's bounding sphere in world space.
// Non-uniform scales grow the radius by the largest axis.
func (o *Object) WorldSphere() (math.BoundingSphere, error) {
	var local math.BoundingSphere
	switch o.Kind {
	case KindSphere:
		local = math.NewBoundingSphere(vec3(o.Center), o.Radius)
	case KindMesh:
		if o.mesh == nil {
			return math.BoundingSphere{}, fmt.Errorf("%s: %w", o.Model, ErrUnresolvedMesh)
		}
		local = o.mesh.Sphere
	default:
		box, err := o.WorldBox()
		if err != nil {
			return math.BoundingSphere{}, err
		}
		return math.BoundingSphereFromBox(box), nil
	}

	s := o.scale()
	maxScale := max(math32.Abs(s.X), math32.Abs(s.Y), math32.Abs(s.Z))
	return math.NewBoundingSphere(
		local.Center.Mul(s).Add(vec3(o.Position)),
		local.Radius*maxScale,
	), nil
}

// ResolveMeshes loads the bounds of every mesh object. Relative model
// paths are resolved against baseDir. Each model file is read once.
func (s *Scene) ResolveMeshes(baseDir string) error {
	cache := make(map[string]meshbounds.Bounds)

	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Kind != KindMesh {
			continue
		}

		path := o.Model
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		b, ok := cache[path]
		if !ok {
			var err error
			if b, err = meshbounds.Load(path); err != nil {
				return fmt.Errorf("object %s: %w", o.Label(), err)
			}
			cache[path] = b
		}
		o.mesh = &b
	}
	return nil
}

// SetMeshBounds attaches precomputed bounds to a mesh object.
func (o *Object) SetMeshBounds(b meshbounds.Bounds) {
	o.mesh = &b
}

// Bounds returns the box enclosing the world bounds of every object.
func (s *Scene) Bounds() (math.BoundingBox, error) {
	if len(s.Objects) == 0 {
		return math.BoundingBox{}, fmt.Errorf("scene bounds: %w", math.ErrNoPoints)
	}

	var out math.BoundingBox
	for i := range s.Objects {
		box, err := s.Objects[i].WorldBox()
		if err != nil {
			return math.BoundingBox{}, err
		}
		if i == 0 {
			out = box
			continue
		}
		out = math.MergeBoundingBoxes(out, box)
	}
	return out, nil
}
