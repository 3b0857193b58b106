package scenes

import (
	"github.com/automoto/pollo/engine"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyboard polls the arrow keys, Space and D.
type keyboard struct{}

func (keyboard) Poll() engine.InputState {
	return engine.InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Throw: ebiten.IsKeyPressed(ebiten.KeyD),
	}
}
