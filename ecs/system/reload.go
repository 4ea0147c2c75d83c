package system

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/prefabs"
)

// ReloadSystem applies prefab and script edits reported by a watcher.
type ReloadSystem struct {
	poll     func() []string
	scene    *Scene
	scenario *ScenarioSystem
}

// NewReloadSystem reloads from the changed paths returned by poll.
func NewReloadSystem(poll func() []string, scene *Scene, scenario *ScenarioSystem) *ReloadSystem {
	return &ReloadSystem{poll: poll, scene: scene, scenario: scenario}
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if r == nil || r.poll == nil {
		return
	}
	for _, path := range r.poll() {
		r.apply(path)
	}
}

func (r *ReloadSystem) apply(path string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tengo":
		if r.scenario == nil || filepath.Base(path) != filepath.Base(r.scenario.ScriptPath()) {
			return
		}
		if err := r.scenario.Reload(); err != nil {
			log.Printf("reload: %v", err)
			return
		}
		log.Printf("reload: scenario %s", r.scenario.ScriptPath())
	case ".yaml", ".yml":
		if r.scene == nil {
			return
		}
		name := r.scene.SoldierPrefab()
		if filepath.Base(prefabs.Name(path)) != filepath.Base(name) {
			log.Printf("reload: %s changed; only %s reloads live, restart to apply", prefabs.Name(path), name)
			return
		}
		spec, err := prefabs.LoadSoldierSpec(name)
		if err != nil {
			// keep the last good spec
			log.Printf("reload: %v", err)
			return
		}
		n := r.scene.ApplySoldierSpec(spec)
		log.Printf("reload: %s applied to %d soldiers", name, n)
	}
}
