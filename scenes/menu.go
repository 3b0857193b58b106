package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pollo/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the start menu
type MenuScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	menuUI       *ui.MenuUI
	once         sync.Once
	start        bool
}

func NewMenuScene(sc SceneChanger, shared *Shared) *MenuScene {
	return &MenuScene{sceneChanger: sc, shared: shared}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		ms.menuUI.SetMuted(ms.shared.ToggleMute())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ms.start = true
	}

	if ms.start {
		ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger, ms.shared))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		ms.shared.Prefs.Settings.Muted,
		func() { ms.start = true },
		ms.shared.ToggleMute,
	)
}
