// Package culling classifies bounded items against a view frustum in parallel.
package culling

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/midgard-math/internal/config"
	"github.com/Faultbox/midgard-math/internal/logger"
	"github.com/Faultbox/midgard-math/internal/scene"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// BoundsKind selects which volume of an item is tested.
type BoundsKind string

// Bounds kinds.
const (
	BoundsBox    BoundsKind = config.BoundsBox
	BoundsSphere BoundsKind = config.BoundsSphere
)

// cancelCheckInterval is how many items a worker classifies between context checks.
const cancelCheckInterval = 256

// Item is a named object with both of its world-space bounds.
type Item struct {
	ID     string
	Name   string
	Box    math.BoundingBox
	Sphere math.BoundingSphere
}

// Result is the verdict for the item at Index of the input slice.
type Result struct {
	Index   int
	Name    string
	Verdict math.ContainmentType
}

// Culler tests items against a frustum using a fixed number of workers.
type Culler struct {
	Workers int
	Kind    BoundsKind
	Padding float32 // Grows every bound before testing
	Log     *zap.Logger
}

// New returns a culler configured from the culling section.
func New(cfg config.CullingConfig) *Culler {
	return &Culler{
		Workers: cfg.Workers,
		Kind:    BoundsKind(cfg.Bounds),
		Padding: cfg.Padding,
		Log:     logger.Named("culling"),
	}
}

// Cull classifies every item against f. Results keep the input order.
// It stops early and returns ctx.Err() when ctx is cancelled.
func (c *Culler) Cull(ctx context.Context, f *math.BoundingFrustum, items []Item) ([]Result, error) {
	if c.Kind != BoundsBox && c.Kind != BoundsSphere {
		return nil, fmt.Errorf("culling: unknown bounds kind %q", c.Kind)
	}

	workers := c.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, max(len(items), 1))
	chunk := (len(items) + workers - 1) / workers

	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}

	results := make([]Result, len(items))
	g, ctx := errgroup.WithContext(ctx)

	for start := 0; start < len(items); start += chunk {
		end := min(start+chunk, len(items))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				results[i] = Result{Index: i, Name: items[i].Name, Verdict: c.classify(f, items[i])}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug("culled items",
		zap.Int("items", len(items)),
		zap.Int("workers", workers),
		zap.String("bounds", string(c.Kind)),
	)
	return results, nil
}

func (c *Culler) classify(f *math.BoundingFrustum, item Item) math.ContainmentType {
	if c.Kind == BoundsSphere {
		s := item.Sphere
		s.Radius += c.Padding
		return f.ContainsSphere(s)
	}

	box := item.Box
	if c.Padding != 0 {
		pad := math.Vec3{X: c.Padding, Y: c.Padding, Z: c.Padding}
		box = math.NewBoundingBox(box.Min.Sub(pad), box.Max.Add(pad))
	}
	return f.ContainsBox(box)
}

// Summary counts results per verdict.
type Summary struct {
	Disjoint   int
	Intersects int
	Contains   int
}

// Total returns the number of results counted.
func (s Summary) Total() int {
	return s.Disjoint + s.Intersects + s.Contains
}

// Visible returns the number of items at least partly inside the frustum.
func (s Summary) Visible() int {
	return s.Intersects + s.Contains
}

func (s Summary) String() string {
	return fmt.Sprintf("%d items: %d contained, %d intersecting, %d culled",
		s.Total(), s.Contains, s.Intersects, s.Disjoint)
}

// Summarize counts verdicts.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Verdict {
		case math.Disjoint:
			s.Disjoint++
		case math.Intersects:
			s.Intersects++
		case math.Contains:
			s.Contains++
		}
	}
	return s
}

// ItemsFromScene builds cull items from the world bounds of every scene
// object. Mesh objects must have been resolved.
func ItemsFromScene(s *scene.Scene) ([]Item, error) {
	items := make([]Item, len(s.Objects))
	for i := range s.Objects {
		o := &s.Objects[i]

		box, err := o.WorldBox()
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", o.Label(), err)
		}
		sphere, err := o.WorldSphere()
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", o.Label(), err)
		}

		items[i] = Item{ID: o.ID, Name: o.Label(), Box: box, Sphere: sphere}
	}
	return items, nil
}
