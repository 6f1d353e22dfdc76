package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/midgard-math/internal/picking"
	"github.com/Faultbox/midgard-math/internal/scene"
)

func (a *app) newPickCmd() *cobra.Command {
	var x, y float32
	var ground bool

	cmd := &cobra.Command{
		Use:   "pick <scene>",
		Short: "Report the nearest object under a screen position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadScene(args[0])
			if err != nil {
				return err
			}

			vp := s.Viewport.Math()
			vp.MinDepth, vp.MaxDepth = a.cfg.Viewport.MinDepth, a.cfg.Viewport.MaxDepth

			ray, err := picking.ScreenToRay(x, y, vp, s.Camera.View(), s.Camera.Projection(vp.AspectRatio()))
			if err != nil {
				return err
			}

			targets, err := pickTargets(s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ray: %v\n", ray)

			if hit, ok := picking.Nearest(ray, targets); ok {
				fmt.Fprintf(out, "hit: %s at distance %g, point %v\n", hit.Name, hit.Distance, hit.Point)
			} else {
				fmt.Fprintln(out, "hit: none")
			}

			if ground {
				if p, ok := picking.IntersectPlaneY(ray, 0); ok {
					fmt.Fprintf(out, "ground: %v\n", p)
				} else {
					fmt.Fprintln(out, "ground: none")
				}
			}
			return nil
		},
	}

	cmd.Flags().Float32Var(&x, "x", 0, "Screen X in pixels")
	cmd.Flags().Float32Var(&y, "y", 0, "Screen Y in pixels")
	cmd.Flags().BoolVar(&ground, "ground", false, "Also intersect the ray with the Y=0 plane")
	return cmd
}

// pickTargets uses spheres for sphere objects and boxes for the rest.
func pickTargets(s *scene.Scene) ([]picking.Target, error) {
	targets := make([]picking.Target, 0, len(s.Objects))
	for i := range s.Objects {
		o := &s.Objects[i]
		t := picking.Target{Name: o.Label()}

		if o.Kind == scene.KindSphere {
			sphere, err := o.WorldSphere()
			if err != nil {
				return nil, err
			}
			t.Sphere = &sphere
		} else {
			box, err := o.WorldBox()
			if err != nil {
				return nil, err
			}
			t.Box = box
		}
		targets = append(targets, t)
	}
	return targets, nil
}
