package culling

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-math/internal/config"
	"github.com/Faultbox/midgard-math/internal/scene"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// testFrustum looks down -Z from the origin with a 90 degree field of view.
func testFrustum() *math.BoundingFrustum {
	view := math.LookAt(math.Vec3Zero, math.Vec3Forward, math.Vec3Up)
	proj := math.PerspectiveFieldOfView(math.PiOver2, 1, 1, 100)
	return math.NewBoundingFrustum(view.Mul(proj))
}

func boxItem(name string, center math.Vec3, half float32) Item {
	h := math.Vec3{X: half, Y: half, Z: half}
	box := math.NewBoundingBox(center.Sub(h), center.Add(h))
	return Item{Name: name, Box: box, Sphere: math.BoundingSphereFromBox(box)}
}

func testItems() []Item {
	return []Item{
		boxItem("inside", math.Vec3{X: 0, Y: 0, Z: -10}, 1),
		boxItem("behind", math.Vec3{X: 0, Y: 0, Z: 10}, 1),
		boxItem("edge", math.Vec3{X: 10, Y: 0, Z: -10}, 1),
		boxItem("beyond far", math.Vec3{X: 0, Y: 0, Z: -200}, 1),
	}
}

func TestCullBoxes(t *testing.T) {
	c := &Culler{Workers: 2, Kind: BoundsBox}

	results, err := c.Cull(context.Background(), testFrustum(), testItems())
	require.NoError(t, err)
	require.Len(t, results, 4)

	want := []math.ContainmentType{math.Contains, math.Disjoint, math.Intersects, math.Disjoint}
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, want[i], r.Verdict, r.Name)
	}

	s := Summarize(results)
	assert.Equal(t, Summary{Disjoint: 2, Intersects: 1, Contains: 1}, s)
	assert.Equal(t, 4, s.Total())
	assert.Equal(t, 2, s.Visible())
}

func TestCullSpheresWithPadding(t *testing.T) {
	items := []Item{boxItem("inside", math.Vec3{X: 0, Y: 0, Z: -10}, 1)}

	c := &Culler{Workers: 1, Kind: BoundsSphere}
	results, err := c.Cull(context.Background(), testFrustum(), items)
	require.NoError(t, err)
	assert.Equal(t, math.Contains, results[0].Verdict)

	c.Padding = 20
	results, err = c.Cull(context.Background(), testFrustum(), items)
	require.NoError(t, err)
	assert.Equal(t, math.Intersects, results[0].Verdict)
}

func TestCullPreservesOrder(t *testing.T) {
	var items []Item
	for i := range 1000 {
		z := float32(-5)
		if i%3 == 0 {
			z = 50
		}
		items = append(items, boxItem(fmt.Sprint(i), math.Vec3{X: 0, Y: 0, Z: z}, 0.5))
	}

	c := &Culler{Workers: 7, Kind: BoundsBox}
	results, err := c.Cull(context.Background(), testFrustum(), items)
	require.NoError(t, err)
	require.Len(t, results, len(items))

	for i, r := range results {
		require.Equal(t, fmt.Sprint(i), r.Name)
		if i%3 == 0 {
			require.Equal(t, math.Disjoint, r.Verdict, i)
		} else {
			require.Equal(t, math.Contains, r.Verdict, i)
		}
	}
}

func TestCullEmpty(t *testing.T) {
	c := &Culler{Workers: 4, Kind: BoundsBox}
	results, err := c.Cull(context.Background(), testFrustum(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCullCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Culler{Workers: 2, Kind: BoundsBox}
	_, err := c.Cull(ctx, testFrustum(), testItems())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCullUnknownKind(t *testing.T) {
	c := &Culler{Workers: 1, Kind: "capsule"}
	_, err := c.Cull(context.Background(), testFrustum(), testItems())
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default().Culling
	cfg.Workers = 3
	cfg.Bounds = config.BoundsSphere

	c := New(cfg)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, BoundsSphere, c.Kind)
	assert.NotNil(t, c.Log)
}

func TestItemsFromScene(t *testing.T) {
	const doc = `
objects:
  - name: crate
    kind: box
    min: [-1, -1, -1]
    max: [1, 1, 1]
    position: [0, 0, -10]
  - name: ball
    kind: sphere
    radius: 2
    position: [0, 0, 10]
`
	s, err := scene.Decode(strings.NewReader(doc), scene.FormatYAML)
	require.NoError(t, err)

	items, err := ItemsFromScene(s)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "crate", items[0].Name)
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 10}, items[1].Sphere.Center)

	c := &Culler{Workers: 1, Kind: BoundsBox}
	results, err := c.Cull(context.Background(), testFrustum(), items)
	require.NoError(t, err)
	assert.Equal(t, math.Contains, results[0].Verdict)
	assert.Equal(t, math.Disjoint, results[1].Verdict)
}

func TestItemsFromSceneUnresolvedMesh(t *testing.T) {
	s := &scene.Scene{Objects: []scene.Object{{Name: "m", Kind: scene.KindMesh, Model: "m.glb"}}}

	_, err := ItemsFromScene(s)
	assert.ErrorIs(t, err, scene.ErrUnresolvedMesh)
}

func BenchmarkCull(b *testing.B) {
	items := make([]Item, 10000)
	for i := range items {
		items[i] = boxItem("", math.Vec3{X: float32(i%50 - 25), Y: 0, Z: -float32(i % 120)}, 1)
	}
	f := testFrustum()
	c := &Culler{Workers: 4, Kind: BoundsBox}

	for b.Loop() {
		if _, err := c.Cull(context.Background(), f, items); err != nil {
			b.Fatal(err)
		}
	}
}
