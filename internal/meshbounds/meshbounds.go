// Package meshbounds computes bounding volumes for glTF models.
package meshbounds

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-math/internal/logger"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// ErrNoGeometry is returned for documents without any POSITION data.
var ErrNoGeometry = errors.New("meshbounds: no geometry")

// Bounds holds the mesh-space bounding volumes of a model.
type Bounds struct {
	Box      math.BoundingBox
	Sphere   math.BoundingSphere
	Vertices int
}

// Load opens a .gltf or .glb file and computes its bounds.
// Node transforms are ignored; bounds are in mesh space.
func Load(path string) (Bounds, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Bounds{}, fmt.Errorf("open gltf: %w", err)
	}

	b, err := FromDocument(doc)
	if err != nil {
		return Bounds{}, fmt.Errorf("%s: %w", path, err)
	}

	logger.Named("meshbounds").Debug("computed model bounds",
		zap.String("path", path),
		zap.Int("vertices", b.Vertices),
		zap.Stringer("box", b.Box),
	)
	return b, nil
}

// FromDocument computes bounds over the POSITION accessors of every mesh primitive.
func FromDocument(doc *gltf.Document) (Bounds, error) {
	var positions [][3]float32

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if posIdx < 0 || posIdx >= len(doc.Accessors) {
				return Bounds{}, fmt.Errorf("mesh %q: position accessor %d out of range", m.Name, posIdx)
			}

			read, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return Bounds{}, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}
			positions = append(positions, read...)
		}
	}

	return FromPositions(positions)
}

// FromPositions computes bounds over raw vertex positions.
func FromPositions(positions [][3]float32) (Bounds, error) {
	if len(positions) == 0 {
		return Bounds{}, ErrNoGeometry
	}

	points := make([]math.Vec3, len(positions))
	for i, p := range positions {
		points[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}

	box, err := math.BoundingBoxFromPoints(points)
	if err != nil {
		return Bounds{}, err
	}
	sphere, err := math.BoundingSphereFromPoints(points)
	if err != nil {
		return Bounds{}, err
	}

	return Bounds{Box: box, Sphere: sphere, Vertices: len(points)}, nil
}
