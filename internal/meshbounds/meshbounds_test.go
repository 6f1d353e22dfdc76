package meshbounds

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/midgard-math/pkg/math"
)

var cubeCorners = [][3]float32{
	{-1, -2, -3}, {1, -2, -3}, {1, 2, -3}, {-1, 2, -3},
	{-1, -2, 3}, {1, -2, 3}, {1, 2, 3}, {-1, 2, 3},
}

func writeModel(t *testing.T, meshes ...[][3]float32) string {
	t.Helper()

	doc := gltf.NewDocument()
	for i, positions := range meshes {
		idx := modeler.WritePosition(doc, positions)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: "mesh" + string(rune('A'+i)),
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: idx},
			}},
		})
	}

	path := filepath.Join(t.TempDir(), "model.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("save model: %v", err)
	}
	return path
}

func TestFromPositions(t *testing.T) {
	b, err := FromPositions(cubeCorners)
	if err != nil {
		t.Fatalf("FromPositions: %v", err)
	}

	if b.Box.Min != (math.Vec3{X: -1, Y: -2, Z: -3}) || b.Box.Max != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("box: got %v", b.Box)
	}
	if b.Vertices != 8 {
		t.Errorf("vertices: got %d, want 8", b.Vertices)
	}
	for _, p := range cubeCorners {
		v := math.Vec3{X: p[0], Y: p[1], Z: p[2]}
		if b.Sphere.ContainsPoint(v) == math.Disjoint {
			t.Errorf("sphere %v does not contain %v", b.Sphere, v)
		}
	}
}

func TestFromPositionsEmpty(t *testing.T) {
	if _, err := FromPositions(nil); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("expected ErrNoGeometry, got %v", err)
	}
}

func TestLoadMergesMeshes(t *testing.T) {
	offset := [][3]float32{{10, 0, 0}, {12, 1, 1}}
	path := writeModel(t, cubeCorners, offset)

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if b.Vertices != 10 {
		t.Errorf("vertices: got %d, want 10", b.Vertices)
	}
	if b.Box.Max != (math.Vec3{X: 12, Y: 2, Z: 3}) {
		t.Errorf("box max: got %v", b.Box.Max)
	}
}

func TestLoadNoGeometry(t *testing.T) {
	path := writeModel(t)

	if _, err := Load(path); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("expected ErrNoGeometry, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("expected error for missing file")
	}
}
