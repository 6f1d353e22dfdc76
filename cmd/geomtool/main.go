// geomtool culls, picks and measures scenes built from bounding volumes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/midgard-math/internal/config"
	"github.com/Faultbox/midgard-math/internal/logger"
)

// app holds state shared by all subcommands once the root command has run.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "geomtool",
		Short: "Frustum culling and picking over bounding-volume scenes",
		Long: `geomtool loads scenes of boxes, spheres and glTF meshes described in
YAML or TOML and answers visibility and picking questions about them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			if err := logger.InitFromConfig(cfg.Logging); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger.Debug("config loaded")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.newCullCmd(),
		a.newPickCmd(),
		a.newBoundsCmd(),
		a.newShadowCmd(),
		a.newWatchCmd(),
		a.newConfigCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
