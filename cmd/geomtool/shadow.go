package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/midgard-math/internal/shadow"
	"github.com/Faultbox/midgard-math/pkg/math"
)

func (a *app) newShadowCmd() *cobra.Command {
	var light []float32
	var tight bool

	cmd := &cobra.Command{
		Use:   "shadow <scene>",
		Short: "Print the light view-projection matrix for a directional light",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(light) != 3 {
				return fmt.Errorf("--light needs 3 components, got %d", len(light))
			}
			dir := math.Vec3{X: light[0], Y: light[1], Z: light[2]}
			if dir.IsZero() {
				return fmt.Errorf("--light: %w", math.ErrDegenerate)
			}

			s, err := a.loadScene(args[0])
			if err != nil {
				return err
			}

			var m math.Mat4
			if tight {
				m = shadow.FitLightToFrustum(dir, s.Camera.Frustum(s.Viewport.AspectRatio()))
			} else {
				bounds, err := s.Bounds()
				if err != nil {
					return err
				}
				m = shadow.DirectionalLightMatrix(dir, bounds)
			}

			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}

	cmd.Flags().Float32SliceVar(&light, "light", []float32{0.5, 1, 0.3}, "Direction to the light as x,y,z")
	cmd.Flags().BoolVar(&tight, "tight", false, "Fit the camera frustum instead of the whole scene")
	return cmd
}
