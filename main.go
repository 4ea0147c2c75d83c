package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritesim/assets"
	"github.com/milk9111/spritesim/common"
	"github.com/milk9111/spritesim/ecs/entity"
	"github.com/milk9111/spritesim/ecs/render"
	"github.com/milk9111/spritesim/ecs/system"
	"github.com/milk9111/spritesim/prefabs"
	"github.com/milk9111/spritesim/settings"
)

func main() {
	sceneName := flag.String("scene", "", "scene prefab, warehouse.yaml or wolfenstein.yaml (default: last used)")
	prefabName := flag.String("prefab", "", "soldier prefab overriding the scene's")
	prefabDir := flag.String("prefabs", "prefabs", "on-disk prefab directory checked before the embedded copies")
	assetDir := flag.String("assets", "assets", "directory holding sprite sheets and sounds")
	scriptName := flag.String("script", "", "scenario script overriding the scene's")
	soldiers := flag.Int("soldiers", -1, "initial soldier count (-1 uses the scene's)")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	mute := flag.Bool("mute", false, "do not load sounds")
	volume := flag.Float64("volume", -1, "master volume 0..1 (-1 keeps the saved volume)")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	prefabs.SetDir(*prefabDir)
	assets.SetDir(*assetDir)

	store, err := settings.Open(settings.AppName)
	if err != nil {
		log.Printf("main: settings not persisted: %v", err)
	}
	prefs, err := store.Load()
	if err != nil {
		log.Printf("main: %v", err)
	}
	if *sceneName != "" {
		prefs.Scene = *sceneName
	}
	if *volume >= 0 {
		prefs.Volume = *volume
	}
	if *mute {
		prefs.Muted = true
	}

	sceneSpec, err := prefabs.LoadSceneSpec(prefs.Scene)
	if err != nil {
		log.Fatal(err)
	}
	if *prefabName != "" {
		sceneSpec.Soldier = *prefabName
	}
	if *scriptName != "" {
		sceneSpec.Script = *scriptName
	}
	if *soldiers >= 0 {
		sceneSpec.Count = *soldiers
	}

	soldierSpec, err := prefabs.LoadSoldierSpec(sceneSpec.Soldier)
	if err != nil {
		log.Fatal(err)
	}
	sheet, err := render.LoadSheet(sceneSpec.Soldier, soldierSpec)
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	if *debug {
		log.Printf("main: seed %d", s)
	}

	var players entity.PlayerLoader
	if !prefs.Muted {
		players = entity.DefaultPlayerLoader
	}

	opts := system.SceneOptions{
		Spec:          sceneSpec,
		SoldierPrefab: sceneSpec.Soldier,
		Soldier:       soldierSpec,
		Sheet:         sheet,
		Rand:          rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
		Players:       players,
		Volume:        prefs.Volume,
		Debug:         *debug,
	}

	if *watch {
		dirs := []string{*prefabDir}
		if info, err := os.Stat(filepath.Join(*prefabDir, "scripts")); err == nil && info.IsDir() {
			dirs = append(dirs, filepath.Join(*prefabDir, "scripts"))
		}
		watcher, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("main: watch disabled: %v", err)
		} else {
			defer watcher.Close()
			opts.Watch = watcher.Poll
		}
	}

	scene, err := system.NewScene(opts)
	if err != nil {
		log.Fatal(err)
	}
	scene.SetCameraAngle(prefs.CameraAngle)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("spritesim - " + sceneSpec.Name)
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(NewGame(scene, *debug)); err != nil {
		log.Fatal(err)
	}

	prefs.CameraAngle = scene.CameraAngle()
	if err := store.Save(prefs); err != nil {
		log.Printf("main: %v", err)
	}
}
