package main

import (
	"path/filepath"

	"github.com/Faultbox/midgard-math/internal/culling"
	"github.com/Faultbox/midgard-math/internal/scene"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// loadScene reads a scene, fills camera and viewport gaps from the config
// and loads mesh bounds relative to the scene file.
func (a *app) loadScene(path string) (*scene.Scene, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	s.ApplyDefaults(a.cfg)

	if err := s.ResolveMeshes(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return s, nil
}

// modelPaths returns the model files a scene depends on.
func modelPaths(s *scene.Scene, scenePath string) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, o := range s.Objects {
		if o.Kind != scene.KindMesh {
			continue
		}
		p := o.Model
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(scenePath), p)
		}
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	return paths
}

func (a *app) newCuller() *culling.Culler {
	return culling.New(a.cfg.Culling)
}

func (a *app) fovRadians() float32 {
	return math.ToRadians(a.cfg.Camera.FOV)
}
