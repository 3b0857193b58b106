package main

import (
	"flag"
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/pollo/assets"
	"github.com/automoto/pollo/config"
	"github.com/automoto/pollo/fonts"
	"github.com/automoto/pollo/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
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

func NewGame(shared *scenes.Shared) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, shared)
	return g
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
	assetDir := flag.String("assets", "assets", "directory holding images/ and audio/")
	tuning := flag.String("tuning", "", "YAML tuning file, reloaded when it changes")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadOverridesFile(*tuning); err != nil {
			log.Fatal(err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}

	fsys := os.DirFS(*assetDir)
	images := assets.NewImages(fsys)
	missing := images.Preload(config.AllImages())
	if missing > 0 {
		log.Printf("Warning: %d images missing under %s, drawing placeholders", missing, *assetDir)
	}

	sounds := assets.NewSounds(audio.NewContext(config.Audio.SampleRate), fsys)
	sounds.Preload()

	prefs := scenes.OpenPreferences("pollo")
	sounds.SetMuted(prefs.Settings.Muted)

	shared := &scenes.Shared{
		Images:       images,
		Placeholders: missing > 0,
		Sounds:       sounds,
		Prefs:        prefs,
	}

	if *tuning != "" {
		w, err := config.NewWatcher(*tuning)
		if err != nil {
			log.Printf("Warning: tuning changes will not be reloaded: %v", err)
		} else {
			defer w.Close()
			shared.Tuning = w
		}
	}

	ebiten.SetTPS(int(time.Second / config.Timing.Frame))
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(shared)); err != nil {
		log.Fatal(err)
	}
}
