package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Faultbox/midgard-math/internal/culling"
	"github.com/Faultbox/midgard-math/internal/debug"
)

func (a *app) newCullCmd() *cobra.Command {
	var showFrustum bool

	cmd := &cobra.Command{
		Use:   "cull <scene>",
		Short: "Classify scene objects against the camera frustum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runCull(cmd.Context(), cmd.OutOrStdout(), args[0]); err != nil {
				return err
			}
			if showFrustum {
				return a.printFrustum(cmd.OutOrStdout(), args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFrustum, "frustum", false, "Also print the frustum wireframe as line vertices")
	return cmd
}

// runCull loads the scene at path, culls it and prints one line per object.
func (a *app) runCull(ctx context.Context, w io.Writer, path string) error {
	s, err := a.loadScene(path)
	if err != nil {
		return err
	}

	items, err := culling.ItemsFromScene(s)
	if err != nil {
		return err
	}

	f := s.Camera.Frustum(s.Viewport.AspectRatio())
	results, err := a.newCuller().Cull(ctx, f, items)
	if err != nil {
		return fmt.Errorf("cull %s: %w", path, err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERDICT")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Verdict)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, culling.Summarize(results))
	return nil
}

func (a *app) printFrustum(w io.Writer, path string) error {
	s, err := a.loadScene(path)
	if err != nil {
		return err
	}

	verts := debug.FrustumWireframe(s.Camera.Frustum(s.Viewport.AspectRatio()))
	for i := 0; i < len(verts); i += 6 {
		fmt.Fprintf(w, "%g %g %g -> %g %g %g\n",
			verts[i], verts[i+1], verts[i+2], verts[i+3], verts[i+4], verts[i+5])
	}
	return nil
}
