package scenes

import (
	"sync"

	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/game"
	"github.com/automoto/pollo/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EndScene shows the outcome over the halted game.
type EndScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	game         *game.Game
	endUI        *ui.EndUI
	once         sync.Once
	next         interface{}
}

func NewEndScene(sc SceneChanger, shared *Shared, g *game.Game) *EndScene {
	return &EndScene{sceneChanger: sc, shared: shared, game: g}
}

func (es *EndScene) Update() {
	es.once.Do(es.configure)

	// The halted game still delivers its last sounds
	es.game.Update(cfg.Timing.Frame)
	es.endUI.Update()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		es.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		es.menu()
	}

	if es.next != nil {
		if es.shared.Sounds != nil {
			es.shared.Sounds.StopAll()
		}
		es.sceneChanger.ChangeScene(es.next)
	}
}

func (es *EndScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Level.BackgroundSkyColor)
	drawGame(screen, es.shared, es.game)

	if es.endUI == nil {
		return
	}
	es.endUI.UI.Draw(screen)
}

func (es *EndScene) configure() {
	stats := es.game.Stats()
	es.endUI = ui.NewEndUI(ui.EndResult{
		Victory: es.game.IsVictory(),
		Energy:  stats.Energy,
		Coins:   stats.Coins,
		Bottles: stats.Bottles,
	}, es.restart, es.menu)
}

func (es *EndScene) restart() {
	es.next = NewPlayScene(es.sceneChanger, es.shared)
}

func (es *EndScene) menu() {
	es.next = NewMenuScene(es.sceneChanger, es.shared)
}
