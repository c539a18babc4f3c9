package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/voidwalk/revenant/assets"
	"github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/scenes"
	"github.com/voidwalk/revenant/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "path to a tuning override YAML file (watched for changes)")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Revenant")

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()

	// Baseline tuning ships embedded; an external file layers on top and
	// is hot reloaded while the game runs. Without a flag, the file from
	// the previous run is reused.
	if err := config.ApplyTuningBytes(assets.DefaultTuning); err != nil {
		log.Fatalf("embedded tuning is broken: %v", err)
	}
	path := *tuningPath
	if path == "" && saved != nil {
		path = saved.TuningPath
	}
	var watcher *config.Watcher
	if path != "" {
		systems.SetTuningPath(path)
		if err := config.LoadTuningFile(path); err != nil {
			log.Printf("Warning: %v", err)
		} else if abs, err := filepath.Abs(path); err == nil {
			w, err := config.NewWatcher(filepath.Dir(abs))
			if err != nil {
				log.Printf("Warning: could not watch tuning file: %v", err)
			} else {
				watcher = w
			}
		}
		if saved == nil || saved.TuningPath != path {
			merged := systems.SavedSettings{TuningPath: path}
			if saved != nil {
				merged.Debug = saved.Debug
				merged.CameraInvert = saved.CameraInvert
			}
			_ = systems.SaveSettings(&merged)
		}
	}

	g := &Game{}
	g.scene = scenes.NewArenaScene(g, watcher, saved)

	if err := ebiten.RunGame(g); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
