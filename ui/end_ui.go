package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
)

// EndResult is what the end screen reports.
type EndResult struct {
	Victory bool
	Energy  int
	Coins   int
	Bottles int
}

// EndUI is shown after the game halts, on game over and on victory alike.
type EndUI struct {
	UI *ebitenui.UI

	OnRestart func()
	OnMenu    func()

	faces faces
}

func NewEndUI(result EndResult, onRestart, onMenu func()) *EndUI {
	ui := &EndUI{
		OnRestart: onRestart,
		OnMenu:    onMenu,
		faces:     loadFaces(),
	}
	ui.buildUI(result)
	return ui
}

func (ui *EndUI) buildUI(result EndResult) {
	title, bg := "Game Over", color.RGBA{30, 10, 10, 230}
	if result.Victory {
		title, bg = "You Won!", color.RGBA{20, 40, 20, 230}
	}

	root := rootContainer(bg)
	content := centeredColumn()

	content.AddChild(label(title, &ui.faces.title, color.RGBA{255, 220, 120, 255}))
	content.AddChild(label(Summary(result), &ui.faces.small, color.RGBA{220, 220, 220, 255}))

	content.AddChild(button("Restart", &ui.faces.normal, func() {
		if ui.OnRestart != nil {
			ui.OnRestart()
		}
	}))
	content.AddChild(button("Menu", &ui.faces.normal, func() {
		if ui.OnMenu != nil {
			ui.OnMenu()
		}
	}))

	root.AddChild(content)
	ui.UI = &ebitenui.UI{Container: root}
}

func (ui *EndUI) Update() {
	ui.UI.Update()
}

// Summary is the one-line stats text under the title.
func Summary(r EndResult) string {
	return fmt.Sprintf("Energy %d   Coins %d   Bottles %d", r.Energy, r.Coins, r.Bottles)
}
