package components

import (
	"github.com/automoto/pollo/engine"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's control state.
type InputData struct {
	Current  engine.InputState
	Previous engine.InputState
}

var Input = donburi.NewComponentType[InputData]()
