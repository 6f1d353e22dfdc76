package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-math/internal/logger"
	"github.com/Faultbox/midgard-math/internal/scene"
	"github.com/Faultbox/midgard-math/internal/watcher"
)

func (a *app) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <scene>",
		Short: "Re-run cull whenever the scene or its models change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runWatch(ctx, cmd, args[0])
		},
	}
	return cmd
}

func (a *app) runWatch(ctx context.Context, cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	log := logger.Named("watch")

	// Callbacks fire from timer goroutines; keep runs from interleaving.
	var mu sync.Mutex
	rerun := func(changed string) {
		mu.Lock()
		defer mu.Unlock()

		log.Info("change detected", zap.String("path", changed))
		fmt.Fprintf(out, "\n--- %s changed ---\n", changed)
		if err := a.runCull(ctx, out, path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	// A broken scene on startup is fatal; later edits only report errors.
	if err := a.runCull(ctx, out, path); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	files := []string{path}
	if s, err := scene.Load(path); err == nil {
		files = append(files, modelPaths(s, path)...)
	}
	if err := fw.Watch(files, rerun); err != nil {
		return err
	}
	fw.Start(ctx)

	log.Info("watching", zap.Strings("files", files))
	<-ctx.Done()
	return nil
}
