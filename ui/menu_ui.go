package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// MenuUI is the start screen: title, controls help, Start and a mute toggle.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart      func()
	OnToggleMute func() bool

	muteBtn *widget.Button
	faces   faces
}

func NewMenuUI(muted bool, onStart func(), onToggleMute func() bool) *MenuUI {
	ui := &MenuUI{
		OnStart:      onStart,
		OnToggleMute: onToggleMute,
		faces:        loadFaces(),
	}
	ui.buildUI(muted)
	return ui
}

func (ui *MenuUI) buildUI(muted bool) {
	root := rootContainer(color.RGBA{250, 225, 170, 255})
	content := centeredColumn()

	content.AddChild(label("El Pollo Loco", &ui.faces.title, color.RGBA{120, 40, 10, 255}))
	content.AddChild(label("Arrows move, Space jumps, D throws, M mutes", &ui.faces.small, color.RGBA{60, 40, 20, 255}))

	content.AddChild(button("Start", &ui.faces.normal, func() {
		if ui.OnStart != nil {
			ui.OnStart()
		}
	}))

	ui.muteBtn = button(muteText(muted), &ui.faces.normal, func() {
		if ui.OnToggleMute != nil {
			ui.SetMuted(ui.OnToggleMute())
		}
	})
	content.AddChild(ui.muteBtn)

	root.AddChild(content)
	ui.UI = &ebitenui.UI{Container: root}
}

func (ui *MenuUI) SetMuted(muted bool) {
	if ui.muteBtn == nil {
		return
	}
	if textWidget := ui.muteBtn.Text(); textWidget != nil {
		textWidget.Label = muteText(muted)
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func muteText(muted bool) string {
	if muted {
		return "Sound: off"
	}
	return "Sound: on"
}
