package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/fonts"
	"github.com/automoto/pollo/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayScene runs one game from level start until it halts.
type PlayScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	game         *game.Game
	once         sync.Once
	ended        bool
	outcome      cfg.GameStateID
}

func NewPlayScene(sc SceneChanger, shared *Shared) *PlayScene {
	return &PlayScene{sceneChanger: sc, shared: shared}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	if ps.game == nil {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.shared))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		ps.shared.ToggleMute()
	}
	ps.shared.ApplyTuning()

	ps.game.Update(cfg.Timing.Frame)

	if ps.ended {
		ps.sceneChanger.ChangeScene(NewEndScene(ps.sceneChanger, ps.shared, ps.game))
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Level.BackgroundSkyColor)

	if ps.game == nil {
		return
	}
	drawGame(screen, ps.shared, ps.game)
}

func (ps *PlayScene) configure() {
	level, err := game.LoadLevel()
	if err != nil {
		log.Printf("Warning: could not load level: %v", err)
		return
	}

	g, err := game.New(level,
		game.WithSound(ps.shared.Sounds),
		game.WithInput(keyboard{}),
		game.WithImages(ps.shared.ImageCache()),
		game.WithOnEnd(func(outcome cfg.GameStateID) {
			ps.ended = true
			ps.outcome = outcome
		}),
	)
	if err != nil {
		log.Printf("Warning: could not start game: %v", err)
		return
	}
	ps.game = g
}

func drawGame(screen *ebiten.Image, shared *Shared, g *game.Game) {
	g.Draw(&screenSink{
		screen: screen,
		images: shared.Images,
		face:   fonts.HUD.Get(),
	})
}
