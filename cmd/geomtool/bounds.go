package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/midgard-math/internal/camera"
	"github.com/Faultbox/midgard-math/internal/debug"
	"github.com/Faultbox/midgard-math/internal/meshbounds"
)

func (a *app) newBoundsCmd() *cobra.Command {
	var wireframe, fit bool

	cmd := &cobra.Command{
		Use:   "bounds <model.glb>",
		Short: "Print the bounding box and sphere of a glTF model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := meshbounds.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d\n", b.Vertices)
			fmt.Fprintf(out, "box:      %v\n", b.Box)
			fmt.Fprintf(out, "size:     %v\n", b.Box.Size())
			fmt.Fprintf(out, "sphere:   %v\n", b.Sphere)

			if fit {
				cam := camera.NewOrbitCamera()
				cam.FOV = a.fovRadians()
				cam.FitToBounds(b.Box)
				fmt.Fprintf(out, "camera:   position %v, distance %g\n", cam.Position(), cam.Distance)
			}

			if wireframe {
				verts := debug.BoxWireframe(b.Box, 0)
				for i := 0; i < len(verts); i += 6 {
					fmt.Fprintf(out, "%g %g %g -> %g %g %g\n",
						verts[i], verts[i+1], verts[i+2], verts[i+3], verts[i+4], verts[i+5])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "Print the box wireframe as line vertices")
	cmd.Flags().BoolVar(&fit, "fit", false, "Print an orbit camera framing the model")
	return cmd
}
